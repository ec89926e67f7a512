package trafficlight

import "time"

// Phase is the signal a light shows.
type Phase int32

const (
	Red Phase = iota
	Green
)

func (p Phase) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Valid reports whether p is Red or Green.
func (p Phase) Valid() bool {
	return p == Red || p == Green
}

// Opposite returns the phase a light flips to from p.
func (p Phase) Opposite() Phase {
	if p == Red {
		return Green
	}
	return Red
}

// Transition describes one flip of the light.
type Transition struct {
	From Phase
	To   Phase
	At   time.Time
	// Threshold is the duration drawn for the phase that just ended.
	Threshold time.Duration
	// Held is how long that phase actually lasted.
	Held time.Duration
}
