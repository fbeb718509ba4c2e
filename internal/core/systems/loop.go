package systems

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zeusync/btree/internal/core/observability/log"
)

// DefaultStep is the delta time used when the loop ticks back to back.
const DefaultStep = time.Second / 60

// Loop is a fixed-step host loop. Systems are updated in registration order.
type Loop struct {
	interval time.Duration
	logger   log.Log
	systems  []System

	mu      sync.RWMutex
	ticks   uint64
	metrics map[string]*Metrics
}

// NewLoop creates a loop that ticks every interval. A zero interval ticks as
// fast as possible with DefaultStep as the delta.
func NewLoop(interval time.Duration, logger log.Log, systems ...System) *Loop {
	if logger == nil {
		logger = log.Nop()
	}
	l := &Loop{
		interval: interval,
		logger:   logger.With(log.String("component", "loop")),
		metrics:  make(map[string]*Metrics, len(systems)),
	}
	for _, s := range systems {
		if s == nil {
			continue
		}
		l.systems = append(l.systems, s)
		l.metrics[s.Name()] = &Metrics{}
	}
	return l
}

func (l *Loop) step() float64 {
	if l.interval <= 0 {
		return DefaultStep.Seconds()
	}
	return l.interval.Seconds()
}

// Tick updates every system once. Errors are collected and do not stop the
// remaining systems.
func (l *Loop) Tick() error {
	dt := l.step()
	var errs error

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.systems {
		start := time.Now()
		err := s.Update(dt)
		l.metrics[s.Name()].record(start, err)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("system %s: %w", s.Name(), err))
		}
	}
	l.ticks++
	return errs
}

// Run ticks until ctx is done or maxTicks ticks have run. maxTicks 0 means no
// limit. It returns ctx.Err() when cancelled and nil when the limit is hit.
func (l *Loop) Run(ctx context.Context, maxTicks uint64) error {
	l.logger.Info("loop started",
		log.Duration("interval", l.interval),
		log.Int("systems", len(l.systems)),
		log.Uint64("max_ticks", maxTicks),
	)
	defer func() {
		l.logger.Info("loop stopped", log.Uint64("ticks", l.Ticks()))
	}()

	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := uint64(0); maxTicks == 0 || n < maxTicks; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Tick(); err != nil {
			l.logger.Warn("tick failed", log.Uint64("tick", l.Ticks()), log.Error(err))
		}
	}
	return nil
}

func (l *Loop) Ticks() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ticks
}

// Metrics returns a snapshot of the metrics of the named system.
func (l *Loop) Metrics(name string) (Metrics, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.metrics[name]
	if !ok {
		return Metrics{}, false
	}
	return *m, true
}
