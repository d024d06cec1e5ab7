package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dishpanda/nicar-scheduler/internal/ics"
	"github.com/dishpanda/nicar-scheduler/internal/models"
)

type ExportCmd struct {
	IDs    []int  `arg:"" help:"Session ids to export."`
	Output string `short:"o" help:"Output file." default:"nicar-2025-schedule.ics"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if len(c.IDs) == 0 {
		return fmt.Errorf("no session ids given")
	}

	wanted := make(map[int]bool, len(c.IDs))
	for _, id := range c.IDs {
		if _, ok := ctx.Store.ByID(id); !ok {
			return fmt.Errorf("no session with id %d", id)
		}
		wanted[id] = true
	}

	// Catalog order, not the order the ids were given in.
	var sessions []models.Session
	for _, sess := range ctx.Store.All() {
		if wanted[sess.ID] {
			sessions = append(sessions, sess)
		}
	}

	data := ics.Serialize(sessions, time.Now())
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}

	fmt.Printf("Wrote %d event(s) to %s\n", len(sessions), c.Output)
	return nil
}
