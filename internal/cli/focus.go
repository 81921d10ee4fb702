package cli

import (
	"fmt"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
)

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

type FocusStartCmd struct {
	Minutes int `arg:"" optional:"" help:"Session length in minutes." default:"25"`
}

func (c *FocusStartCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	session, started := svc.StartFocus(c.Minutes)
	if !started {
		remaining, _ := svc.FocusRemaining()
		return fmt.Errorf("a focus session is already running (%s left)", formatDuration(remaining))
	}

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Focus session started: %d minutes, ends at %s\n",
		session.DurationMin, session.EndTime.Format("15:04"))
	return nil
}

// FocusStatusCmd reports the running session. An expired session is credited
// here, so checking status after the timer runs out is how minutes land in
// the stats.
type FocusStatusCmd struct{}

func (c *FocusStatusCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	remaining, active := svc.FocusRemaining()
	if !active {
		fmt.Println("No focus session running")
		fmt.Printf("Start one with: lumen focus start [minutes] (default %d)\n", engine.DefaultFocusMinutes)
		return ctx.save(svc, pending)
	}

	if remaining == 0 {
		minutes := svc.Stats().ActiveFocus.DurationMin
		events := svc.CompleteFocus()
		if err := ctx.save(svc, append(pending, events...)); err != nil {
			return err
		}
		fmt.Printf("🎉 Focus session complete: %d minutes credited\n", minutes)
		return nil
	}

	fmt.Printf("Focusing: %s remaining\n", formatDuration(remaining))
	return ctx.save(svc, pending)
}

type FocusCancelCmd struct{}

func (c *FocusCancelCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	if !svc.CancelFocus() {
		fmt.Println("No focus session running")
		return ctx.save(svc, pending)
	}

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Println("Focus session cancelled (no minutes credited)")
	return nil
}
