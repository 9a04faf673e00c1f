package poller

import (
	"context"
	"log/slog"
	"time"
)

// Poller calls fetch once immediately and then on every tick until its context ends.
// Each tick is a full, independent refresh; ticks never overlap because fetch
// runs on the poller's own goroutine.
type Poller struct {
	interval time.Duration
	fetch    func(ctx context.Context) error
	logger   *slog.Logger
	name     string
}

func New(name string, interval time.Duration, fetch func(ctx context.Context) error, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{
		interval: interval,
		fetch:    fetch,
		logger:   logger,
		name:     name,
	}
}

// Run blocks until ctx is cancelled. Cancelling ctx is the teardown: the ticker is
// stopped and no further fetch starts.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug("poller_started", "name", p.name, "interval", p.interval.String())
	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("poller_stopped", "name", p.name)
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Start runs the poller in a goroutine and returns a stop function that
// waits for the loop to exit
func (p *Poller) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fetch(ctx); err != nil {
		p.logger.Warn("poll_failed", "name", p.name, "error", err)
	}
}
