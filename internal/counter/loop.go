package counter

import (
	"context"
	"time"

	"topscreen-counter/internal/logger"

	"github.com/jonboulle/clockwork"
)

const Interval = time.Second

// AnchorSource yields the current anchor. Implementations must be safe for
// use from the loop goroutine.
type AnchorSource interface {
	Anchor() time.Time
}

// Loop recomputes the elapsed time once per Interval and hands the text to
// a sink. The sink is responsible for getting onto the UI goroutine.
type Loop struct {
	clock  clockwork.Clock
	source AnchorSource
	sink   func(string)
	logger logger.Logger
}

func NewLoop(clock clockwork.Clock, source AnchorSource, sink func(string), log logger.Logger) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loop{clock: clock, source: source, sink: sink, logger: log}
}

// Run paints immediately, then on every tick until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	ticker := l.clock.NewTicker(Interval)
	defer ticker.Stop()

	l.logger.Info("CounterLoop", "started", map[string]interface{}{
		"anchor": l.source.Anchor().Format(time.DateTime),
	})
	l.Tick()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("CounterLoop", "stopped", nil)
			return
		case <-ticker.Chan():
			l.Tick()
		}
	}
}

// Tick computes and publishes one value.
func (l *Loop) Tick() string {
	text := Elapsed(l.source.Anchor(), l.clock.Now())
	l.sink(text)
	return text
}
