package cycle

import (
	"fmt"
	"math"
	"time"

	"github.com/robfig/cron/v3"
)

// CronCycle ends every phase on the next fire time of a cron schedule, so
// several lights sharing an expression flip on the same wall-clock boundary.
type CronCycle struct {
	expr     string
	schedule cron.Schedule
}

// NewCronCycle returns a new CronCycle.
func NewCronCycle(expr string) (*CronCycle, error) {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron expression: %w", err)
	}

	return &CronCycle{expr: expr, schedule: schedule}, nil
}

// Duration returns the time left from start to the next fire time.
func (c *CronCycle) Duration(start time.Time) time.Duration {
	next := c.schedule.Next(start)
	if next.IsZero() {
		// the schedule can never fire again, hold the phase for good
		return time.Duration(math.MaxInt64)
	}
	return next.Sub(start)
}

// Description returns a CronCycle description.
func (c *CronCycle) Description() string {
	return fmt.Sprintf("CronCycle with the expression %q.", c.expr)
}
