package cli

import (
	"fmt"
	"time"
)

type NotificationsCmd struct {
	Unread bool `help:"Show only unread entries."`
}

func (c *NotificationsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetNotifications()
	if err != nil {
		return err
	}

	shown := 0
	for _, n := range entries {
		if c.Unread && n.Read {
			continue
		}
		mark := " "
		if !n.Read {
			mark = "•"
		}
		when := time.Unix(n.Timestamp, 0).Format("2006-01-02 15:04")
		fmt.Printf("%s %s  %-20s %s\n", mark, when, n.Title, n.Message)
		shown++
	}
	if shown == 0 {
		fmt.Println("No notifications")
		return nil
	}

	// Viewing the feed marks everything read.
	changed := false
	for i := range entries {
		if !entries[i].Read {
			entries[i].Read = true
			changed = true
		}
	}
	if changed {
		return ctx.Store.SaveNotifications(entries)
	}
	return nil
}
