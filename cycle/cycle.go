package cycle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

var ErrInvalidRange = errors.New("invalid cycle range")

const (
	DefaultMin = 4000 * time.Millisecond
	DefaultMax = 6000 * time.Millisecond
)

// Cycle is the phase-duration policy.
// A light asks its Cycle how long a phase lasts every time it enters one.
type Cycle interface {
	// Duration returns how long the phase entered at start lasts.
	Duration(start time.Time) time.Duration

	// Description returns a Cycle description.
	Description() string
}

// UniformCycle draws every phase duration uniformly from [Min, Max] with
// millisecond granularity, both ends included.
type UniformCycle struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

type UniformCycleOption func(*UniformCycle)

// SeedOption makes the draws reproducible.
func SeedOption(seed uint64) UniformCycleOption {
	return func(c *UniformCycle) {
		c.rnd = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewUniformCycle returns a new UniformCycle.
func NewUniformCycle(lo, hi time.Duration, options ...UniformCycleOption) (*UniformCycle, error) {
	if lo <= 0 || hi < lo {
		return nil, fmt.Errorf("uniform cycle [%s, %s]: %w", lo, hi, ErrInvalidRange)
	}
	c := &UniformCycle{
		Min: lo.Truncate(time.Millisecond),
		Max: hi.Truncate(time.Millisecond),
	}
	for _, o := range options {
		o(c)
	}

	return c, nil
}

// Default returns the [4s, 6s] uniform cycle.
func Default() *UniformCycle {
	return &UniformCycle{Min: DefaultMin, Max: DefaultMax}
}

// Duration returns a fresh draw; start is ignored.
func (c *UniformCycle) Duration(time.Time) time.Duration {
	span := int64((c.Max-c.Min)/time.Millisecond) + 1

	var n int64
	c.mu.Lock()
	if c.rnd != nil {
		n = c.rnd.Int64N(span)
	} else {
		n = rand.Int64N(span)
	}
	c.mu.Unlock()

	return c.Min + time.Duration(n)*time.Millisecond
}

// Description returns a UniformCycle description.
func (c *UniformCycle) Description() string {
	return fmt.Sprintf("UniformCycle between %s and %s.", c.Min, c.Max)
}

// FixedCycle holds every phase for the same Interval.
type FixedCycle struct {
	Interval time.Duration
}

// NewFixedCycle returns a new FixedCycle.
func NewFixedCycle(interval time.Duration) *FixedCycle {
	return &FixedCycle{interval}
}

// Duration returns the interval.
func (c *FixedCycle) Duration(time.Time) time.Duration {
	return c.Interval
}

// Description returns a FixedCycle description.
func (c *FixedCycle) Description() string {
	return fmt.Sprintf("FixedCycle with the interval %s.", c.Interval)
}
