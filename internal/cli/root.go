package cli

import (
	"github.com/dishpanda/nicar-scheduler/internal/schedule"
)

// Context carries the loaded session catalog into every command.
type Context struct {
	Store *schedule.Store
}
