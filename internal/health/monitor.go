// Package health runs a periodic database probe so the health endpoints can
// report connectivity without pinging inline on every request.
package health

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger is the slice of the store the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor probes the database on a schedule and remembers the last result.
type Monitor struct {
	pinger    Pinger
	cron      *cron.Cron
	logger    *slog.Logger
	connected atomic.Bool
}

// NewMonitor creates a monitor. A nil pinger (no database configured) keeps
// the status permanently disconnected.
func NewMonitor(pinger Pinger, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		pinger: pinger,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start probes once immediately, then every 30 seconds.
func (m *Monitor) Start() error {
	m.probe()

	_, err := m.cron.AddFunc("@every 30s", m.probe)
	if err != nil {
		return err
	}

	m.cron.Start()
	m.logger.Info("database health monitor started", "interval", "30s")
	return nil
}

// Stop waits for a running probe to finish and stops the schedule.
func (m *Monitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info("database health monitor stopped")
}

// Connected reports the result of the most recent probe.
func (m *Monitor) Connected() bool {
	return m.connected.Load()
}

func (m *Monitor) probe() {
	if m.pinger == nil {
		m.connected.Store(false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.pinger.Ping(ctx)
	was := m.connected.Swap(err == nil)

	switch {
	case err != nil && was:
		m.logger.Warn("database connection lost", "error", err)
	case err == nil && !was:
		m.logger.Info("database connected")
	}
}
