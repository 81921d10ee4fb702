package cli

import (
	"fmt"
	"strings"
)

type TitleListCmd struct {
	All bool `help:"Include locked titles."`
}

func (c *TitleListCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	stats := svc.Stats()
	fmt.Println("Heroic titles:")
	for _, t := range svc.Titles() {
		unlocked := stats.HasTitle(t.ID)
		if !unlocked && !c.All {
			continue
		}

		mark := " "
		if t.ID == stats.SelectedTitleID {
			mark = "★"
		} else if !unlocked {
			mark = "🔒"
		}
		fmt.Printf("  %s %-24s %-10s %s\n", mark, t.Name, t.Rarity, t.Description)
	}
	if !c.All {
		fmt.Println("\nShow locked titles with --all")
	}

	return ctx.save(svc, pending)
}

type TitleSelectCmd struct {
	Title string `arg:"" help:"Title id or name."`
}

func (c *TitleSelectCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	id := c.Title
	for _, t := range svc.Titles() {
		if strings.EqualFold(t.Name, c.Title) {
			id = t.ID
			break
		}
	}

	if !svc.SelectTitle(id) {
		return fmt.Errorf("title %q is locked or unknown", c.Title)
	}

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Now wearing: %s\n", svc.SelectedTitle().Name)
	return nil
}
