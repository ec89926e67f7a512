package trafficlight

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/quintans/go-trafficlight/cycle"
	"github.com/quintans/go-trafficlight/internal/lib"
	"github.com/quintans/go-trafficlight/queue"
)

// Recorder receives every transition made by a light.
type Recorder interface {
	Record(Transition)
}

// TrafficLight flips between Red and Green on the schedule of its Cycle and
// publishes its phase to a queue that WaitForGreen callers drain.
type TrafficLight struct {
	name     string
	phase    atomic.Int32
	queue    *queue.Queue[Phase]
	cycle    cycle.Cycle
	tick     time.Duration
	logger   Logger
	recorder Recorder
	changed  *lib.Waiter
}

type Option func(*TrafficLight)

func CycleOption(c cycle.Cycle) Option {
	return func(l *TrafficLight) {
		l.cycle = c
	}
}

// TickOption sets the pause between two iterations of the phase loop.
func TickOption(tick time.Duration) Option {
	return func(l *TrafficLight) {
		l.tick = tick
	}
}

// QueueOption replaces the phase queue the light publishes to.
func QueueOption(q *queue.Queue[Phase]) Option {
	return func(l *TrafficLight) {
		l.queue = q
	}
}

func LoggerOption(logger Logger) Option {
	return func(l *TrafficLight) {
		l.logger = logger
	}
}

func RecorderOption(r Recorder) Option {
	return func(l *TrafficLight) {
		l.recorder = r
	}
}

func NameOption(name string) Option {
	return func(l *TrafficLight) {
		l.name = name
	}
}

// New returns a red TrafficLight. Nothing moves until Simulate or Start.
func New(options ...Option) *TrafficLight {
	l := &TrafficLight{
		name:    "light-" + uuid.NewString()[:8],
		queue:   queue.New[Phase](),
		cycle:   cycle.Default(),
		tick:    time.Millisecond,
		logger:  myLogger{},
		changed: lib.NewWaiter(),
	}
	for _, f := range options {
		f(l)
	}
	l.phase.Store(int32(Red))

	return l
}

func (l *TrafficLight) Name() string {
	return l.name
}

// Simulate starts the phase loop for the lifetime of the process.
// Call it once: every call starts another loop.
func (l *TrafficLight) Simulate() {
	l.Start(context.Background())
}

// Start starts the phase loop; it exits when ctx is done.
func (l *TrafficLight) Start(ctx context.Context) {
	go l.cycleThroughPhases(ctx)
}

// CurrentPhase returns the phase as last written by the phase loop.
func (l *TrafficLight) CurrentPhase() Phase {
	return Phase(l.phase.Load())
}

// WaitForGreen blocks until a Green phase is taken from the queue.
func (l *TrafficLight) WaitForGreen() {
	for {
		if l.queue.Receive() == Green {
			return
		}
	}
}

// WaitForGreenContext is WaitForGreen that returns ctx.Err() if ctx ends first.
func (l *TrafficLight) WaitForGreenContext(ctx context.Context) error {
	for {
		p, err := l.queue.ReceiveContext(ctx)
		if err != nil {
			return err
		}
		if p == Green {
			return nil
		}
	}
}

// Changed returns a channel closed by the next transition.
func (l *TrafficLight) Changed() <-chan struct{} {
	return l.changed.Wait()
}

func (l *TrafficLight) cycleThroughPhases(ctx context.Context) {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	last := time.Now()
	threshold := l.cycle.Duration(last)
	for {
		now := time.Now()
		if held := now.Sub(last); held >= threshold {
			l.toggle(now, threshold, held)
			last = now
			threshold = l.cycle.Duration(now)
		}

		// published every tick, changed or not, so a late consumer always
		// finds the current phase on top of the queue
		l.queue.Send(l.CurrentPhase())

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (l *TrafficLight) toggle(now time.Time, threshold, held time.Duration) {
	from := l.CurrentPhase()
	to := from.Opposite()
	l.phase.Store(int32(to))

	l.logger.Info("light %s: changing to %s", l.name, to)
	if l.recorder != nil {
		l.recorder.Record(Transition{
			From:      from,
			To:        to,
			At:        now,
			Threshold: threshold,
			Held:      held,
		})
	}
	l.changed.Poke()
}
