package cli

import (
	"fmt"

	"github.com/dishpanda/nicar-scheduler/internal/projection"
)

type ShowCmd struct {
	ID int `arg:"" help:"Session id to show."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	sess, ok := ctx.Store.ByID(c.ID)
	if !ok {
		return fmt.Errorf("no session with id %d", c.ID)
	}

	fmt.Printf("%s\n", sess.Title)
	if bool(sess.Canceled) {
		fmt.Println("CANCELED")
	}
	fmt.Printf("%s %s–%s (%s)\n", sess.Day,
		projection.FormatClock(sess.StartTime),
		projection.FormatClock(sess.EndTime),
		sess.DurationFormatted)
	fmt.Printf("Room: %s\n", sess.Location())
	if sess.SkillLevel != "" {
		fmt.Printf("Skill level: %s\n", sess.SkillLevel)
	}
	if sess.SessionType != "" {
		fmt.Printf("Type: %s\n", sess.SessionType)
	}
	if list := sess.SpeakerList(); list != "" {
		fmt.Printf("Speakers: %s\n", list)
	}
	if sess.Description != "" {
		fmt.Printf("\n%s\n", sess.Description)
	}
	return nil
}
