package cli

import (
	"fmt"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

type ChallengeAddCmd struct {
	Title      string `arg:"" help:"Challenge title."`
	Days       int    `short:"n" help:"Length in days." default:"7"`
	Difficulty string `short:"d" help:"Difficulty (easy|medium|hard|heroic)." default:"medium"`
	Icon       string `help:"Emoji shown next to the challenge." default:"🏆"`
	Color      string `help:"Accent color name." default:"indigo"`
	Desc       string `help:"Longer description."`
}

func (c *ChallengeAddCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *ChallengeAddCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}

	ch := svc.AddChallenge(models.Challenge{
		Title:       c.Title,
		Description: c.Desc,
		Icon:        c.Icon,
		Color:       c.Color,
		Difficulty:  difficulty,
		Duration:    c.Days,
	})

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Added challenge: %s %s (%d days, ID: %s)\n", ch.Icon, ch.Title, ch.Duration, ch.ID)
	return nil
}

type ChallengeLibraryCmd struct{}

func (c *ChallengeLibraryCmd) Run(ctx *Context) error {
	fmt.Println("Challenge library:")
	for i, tpl := range engine.ChallengeLibrary() {
		fmt.Printf("  %2d. %s %-20s %3d days, %s\n", i+1, tpl.Icon, tpl.Title, tpl.Duration, tpl.Difficulty)
		fmt.Printf("      %s\n", tpl.Description)
	}
	fmt.Println("\nStart one with: lumen challenge start <number>")
	return nil
}

type ChallengeStartCmd struct {
	Number int `arg:"" help:"Library entry number (see 'challenge library')."`
}

func (c *ChallengeStartCmd) Run(ctx *Context) error {
	library := engine.ChallengeLibrary()
	if c.Number < 1 || c.Number > len(library) {
		return fmt.Errorf("library entry must be between 1 and %d", len(library))
	}

	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	ch := svc.AddChallenge(library[c.Number-1])
	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Started challenge: %s %s (%d days)\n", ch.Icon, ch.Title, ch.Duration)
	return nil
}
