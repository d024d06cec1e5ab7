package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dishpanda/nicar-scheduler/internal/cli"
	"github.com/dishpanda/nicar-scheduler/internal/schedule"
)

var CLI struct {
	Version  kong.VersionFlag
	Schedule string `help:"Schedule feed path (.json or .db). Defaults to the bundled feed." type:"path"`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive scheduler." default:"1"`
	List   cli.ListCmd   `cmd:"" help:"Print the session listing."`
	Show   cli.ShowCmd   `cmd:"" help:"Show one session in full."`
	Export cli.ExportCmd `cmd:"" help:"Export sessions to an iCalendar file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nicarsched"),
		kong.Description("NICAR 2025 workshop schedule browser and personal calendar builder"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Pick the catalog source from the feed's file extension
	var src schedule.Source
	if strings.HasSuffix(CLI.Schedule, ".db") || strings.HasSuffix(CLI.Schedule, ".sqlite") {
		src = schedule.NewSQLiteSource(CLI.Schedule)
	} else {
		src = schedule.NewJSONSource(CLI.Schedule)
	}

	store, err := schedule.NewStore(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{Store: store}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
