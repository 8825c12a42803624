// Package schedule runs the portal's cosmetic timers: recurring callbacks
// like the clock tick and the idle safety-message replay, and the guided
// breathing cycle. Jobs stop when their context is cancelled or the owner
// is stopped, and stopping twice is harmless.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/engagement"
)

// Runner owns a set of recurring jobs.
type Runner struct {
	log    zerolog.Logger
	cancel context.CancelFunc
	ctx    context.Context
	wg     sync.WaitGroup
	once   sync.Once
}

// NewRunner creates a runner parented to ctx.
func NewRunner(ctx context.Context, log zerolog.Logger) *Runner {
	ctx, cancel := context.WithCancel(ctx)
	return &Runner{log: log, ctx: ctx, cancel: cancel}
}

// Every invokes fn at the given interval until the runner stops. The first
// call happens after one full interval, matching setInterval semantics.
func (r *Runner) Every(name string, interval time.Duration, fn func(now time.Time)) {
	if interval <= 0 {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				fn(now)
			case <-r.ctx.Done():
				r.log.Debug().Str("job", name).Msg("timer released")
				return
			}
		}
	}()
}

// Stop cancels all jobs and waits for them to unwind.
func (r *Runner) Stop() {
	r.once.Do(r.cancel)
	r.wg.Wait()
}

// Cycler drives the breathing exercise: it emits inhale → hold → exhale
// phases on its channel until stopped.
type Cycler struct {
	phases chan engagement.BreathingPhase
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartCycle begins a breathing cycle. The current phase is emitted
// immediately and then each successor after its hold duration. The channel
// closes when the cycle stops.
func StartCycle(ctx context.Context) *Cycler {
	ctx, cancel := context.WithCancel(ctx)
	c := &Cycler{
		phases: make(chan engagement.BreathingPhase, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.run(ctx)
	return c
}

func (c *Cycler) run(ctx context.Context) {
	defer close(c.done)
	defer close(c.phases)
	phase := engagement.PhaseInhale
	timer := time.NewTimer(0) // fire immediately for the first phase
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			select {
			case c.phases <- phase:
			case <-ctx.Done():
				return
			}
			timer.Reset(engagement.PhaseDuration(phase))
			phase = engagement.NextPhase(phase)
		case <-ctx.Done():
			return
		}
	}
}

// Phases is the stream of breathing phases.
func (c *Cycler) Phases() <-chan engagement.BreathingPhase { return c.phases }

// Stop ends the cycle. Safe to call from any goroutine, any number of
// times, including after the consumer has gone away.
func (c *Cycler) Stop() {
	c.once.Do(c.cancel)
	<-c.done
}
