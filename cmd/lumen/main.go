package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lumen-app/lumen/internal/cli"
	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db or .json)." type:"path" default:"~/.config/lumen/lumen.db"`

	Init  cli.InitCmd `cmd:"" help:"Initialize lumen storage with starter content."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit struct {
		Add       cli.HabitAddCmd       `cmd:"" help:"Add a new habit."`
		List      cli.HabitListCmd      `cmd:"" help:"List habits due today."`
		Done      cli.HabitDoneCmd      `cmd:"" help:"Toggle a habit's completion."`
		Delete    cli.HabitDeleteCmd    `cmd:"" help:"Delete a habit."`
		Duplicate cli.HabitDuplicateCmd `cmd:"" help:"Duplicate a habit with a clean slate."`
	} `cmd:"" help:"Manage habits."`
	Challenge struct {
		Add     cli.ChallengeAddCmd     `cmd:"" help:"Add a custom challenge."`
		List    cli.ChallengeListCmd    `cmd:"" help:"List running challenges."`
		Checkin cli.ChallengeCheckinCmd `cmd:"" help:"Check in today's challenge day."`
		Delete  cli.ChallengeDeleteCmd  `cmd:"" help:"Delete a challenge."`
		Library cli.ChallengeLibraryCmd `cmd:"" help:"Browse the challenge template library."`
		Start   cli.ChallengeStartCmd   `cmd:"" help:"Start a challenge from the library."`
	} `cmd:"" help:"Manage challenges."`
	Title struct {
		List   cli.TitleListCmd   `cmd:"" help:"List heroic titles."`
		Select cli.TitleSelectCmd `cmd:"" help:"Wear an unlocked title."`
	} `cmd:"" help:"Manage heroic titles."`
	Focus struct {
		Start  cli.FocusStartCmd  `cmd:"" help:"Start a focus session."`
		Status cli.FocusStatusCmd `cmd:"" help:"Show (and credit) the focus session."`
		Cancel cli.FocusCancelCmd `cmd:"" help:"Cancel the focus session."`
	} `cmd:"" help:"Focus timer."`
	Stats         cli.StatsCmd         `cmd:"" help:"Show progression stats."`
	Mood          cli.MoodCmd          `cmd:"" help:"Log today's mood and energy."`
	Tip           cli.TipCmd           `cmd:"" help:"Show the daily wellness tip."`
	Notifications cli.NotificationsCmd `cmd:"" help:"Show the notification feed."`
	Backup        struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lumen"),
		kong.Description("Gamified habit tracker / daily quest companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Tips:  engine.StaticTips{},
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
