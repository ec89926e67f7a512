package cycle_test

import (
	"testing"
	"time"

	"github.com/quintans/go-trafficlight/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronCycle(t *testing.T) {
	tests := []struct {
		expr  string
		start time.Time
		want  time.Duration
	}{
		{
			expr:  "*/5 * * * * *",
			start: time.Date(2019, time.April, 15, 18, 0, 3, 0, time.UTC),
			want:  2 * time.Second,
		},
		{
			expr:  "*/5 * * * * *",
			start: time.Date(2019, time.April, 15, 18, 0, 5, 0, time.UTC),
			want:  5 * time.Second,
		},
		{
			expr:  "0 */2 * * * *",
			start: time.Date(2019, time.April, 15, 18, 1, 30, 0, time.UTC),
			want:  30 * time.Second,
		},
		{
			expr:  "@hourly",
			start: time.Date(2019, time.April, 15, 18, 15, 0, 0, time.UTC),
			want:  45 * time.Minute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			c, err := cycle.NewCronCycle(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Duration(tt.start))
		})
	}
}

func TestCronCycleChainsOnBoundaries(t *testing.T) {
	c, err := cycle.NewCronCycle("*/5 * * * * *")
	require.NoError(t, err)
	c.Description()

	start := time.Date(2019, time.April, 15, 18, 0, 1, 0, time.UTC)
	for range 10 {
		start = start.Add(c.Duration(start))
		require.Zero(t, start.Second()%5)
	}
	assert.Equal(t, time.Date(2019, time.April, 15, 18, 0, 50, 0, time.UTC), start)
}

func TestCronCycleInvalidExpression(t *testing.T) {
	expression := "0 5,7 14 1 * Sun *"
	_, err := cycle.NewCronCycle(expression)
	require.Error(t, err, "%s should fail", expression)
}
