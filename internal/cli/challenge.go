package cli

import (
	"fmt"
)

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	challenges := svc.Challenges()
	if len(challenges) == 0 {
		fmt.Println("No challenges running")
		fmt.Println("Browse templates with: lumen challenge library")
		return ctx.save(svc, pending)
	}

	fmt.Println("Challenges:")
	for _, ch := range challenges {
		status := fmt.Sprintf("day %d/%d", ch.CurrentDay, ch.Duration)
		if ch.Finished() {
			status = "complete"
		} else if ch.LastCompletedDate == svc.Today() {
			status += ", checked in today"
		}
		fmt.Printf("  %s %-24s %s (%s)\n", ch.Icon, ch.Title, status, ch.Difficulty)
	}

	return ctx.save(svc, pending)
}

type ChallengeCheckinCmd struct {
	Challenge string `arg:"" help:"Challenge id, id prefix, or title."`
}

func (c *ChallengeCheckinCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	ch, err := resolveChallenge(svc, c.Challenge)
	if err != nil {
		return err
	}
	if ch.Finished() {
		return fmt.Errorf("%s is already complete", ch.Title)
	}
	if ch.LastCompletedDate == svc.Today() {
		fmt.Printf("%s is already checked in for today (day %d/%d)\n", ch.Title, ch.CurrentDay, ch.Duration)
		return ctx.save(svc, pending)
	}

	events := svc.CheckInChallenge(ch.ID, svc.Today())
	if err := ctx.save(svc, append(pending, events...)); err != nil {
		return err
	}

	ch, _ = svc.Challenge(ch.ID)
	if ch.Finished() {
		fmt.Printf("🏆 %s complete! All %d days checked in.\n", ch.Title, ch.Duration)
	} else {
		fmt.Printf("✓ %s: day %d/%d\n", ch.Title, ch.CurrentDay, ch.Duration)
	}
	return nil
}

type ChallengeDeleteCmd struct {
	Challenge string `arg:"" help:"Challenge id, id prefix, or title."`
}

func (c *ChallengeDeleteCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	ch, err := resolveChallenge(svc, c.Challenge)
	if err != nil {
		return err
	}
	svc.DeleteChallenge(ch.ID)

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Deleted challenge: %s\n", ch.Title)
	return nil
}
