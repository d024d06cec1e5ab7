package cli

import (
	"fmt"

	"github.com/dishpanda/nicar-scheduler/internal/projection"
	"github.com/dishpanda/nicar-scheduler/internal/schedule"
)

type ListCmd struct {
	Day   string `help:"Filter by day." default:"all"`
	Skill string `help:"Filter by skill level." default:"all"`
	Type  string `help:"Filter by session type." default:"all"`
}

func (c *ListCmd) Run(ctx *Context) error {
	filter := schedule.Filter{Day: c.Day, SkillLevel: c.Skill, SessionType: c.Type}
	filtered := filter.Apply(ctx.Store.All())

	if len(filtered) == 0 {
		fmt.Println("No sessions match the given filters.")
		return nil
	}

	groups := projection.GroupByDayAndStart(filtered)
	for _, dg := range groups {
		fmt.Printf("%s\n", dg.Day)
		for _, tg := range dg.Times {
			plural := "s"
			if len(tg.Sessions) == 1 {
				plural = ""
			}
			fmt.Printf("  %s (%d session%s)\n", tg.Label, len(tg.Sessions), plural)
			for _, sess := range tg.Sessions {
				marker := ""
				if bool(sess.Canceled) {
					marker = "  [CANCELED]"
				}
				fmt.Printf("    %-5d %s%s\n", sess.ID, sess.Title, marker)
				fmt.Printf("          %s", sess.Location())
				if sess.SkillLevel != "" {
					fmt.Printf(" | %s", sess.SkillLevel)
				}
				if sess.SessionType != "" {
					fmt.Printf(" | %s", sess.SessionType)
				}
				fmt.Println()
			}
		}
		fmt.Println()
	}
	return nil
}
