package ambient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tOgg1/tint/internal/logging"
)

// Monitor errors.
var (
	ErrMonitorAlreadyRunning = errors.New("monitor already running")
	ErrMonitorNotRunning     = errors.New("monitor not running")
)

// MonitorConfig contains configuration for the ambient monitor.
type MonitorConfig struct {
	// Interval is how often the detector chain is re-run.
	// Default: 5s
	Interval time.Duration

	// Detectors is the probe chain. Default: DefaultDetectors().
	Detectors []Detector
}

// DefaultMonitorConfig returns sensible defaults.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Interval:  5 * time.Second,
		Detectors: DefaultDetectors(),
	}
}

// Monitor is a Source that periodically re-runs a detector chain and
// notifies subscribers when the detected preference flips.
type Monitor struct {
	config MonitorConfig
	logger zerolog.Logger
	subs   *subscribers

	mu          sync.Mutex
	prefersDark bool
	running     bool
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewMonitor creates a Monitor and runs the detector chain once for the
// initial synchronous value.
func NewMonitor(config MonitorConfig) *Monitor {
	if config.Interval <= 0 {
		config.Interval = DefaultMonitorConfig().Interval
	}
	if config.Detectors == nil {
		config.Detectors = DefaultDetectors()
	}

	initial, source := Detect(config.Detectors)
	m := &Monitor{
		config:      config,
		logger:      logging.Component("ambient-monitor"),
		subs:        newSubscribers(),
		prefersDark: initial,
	}
	m.logger.Debug().
		Bool("prefers_dark", initial).
		Str("source", source).
		Msg("initial ambient preference detected")
	return m
}

// PrefersDark returns the most recently detected preference.
func (m *Monitor) PrefersDark() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefersDark
}

// Subscribe registers a change callback.
func (m *Monitor) Subscribe(fn func(prefersDark bool)) (cancel func()) {
	return m.subs.add(fn)
}

// Start begins the detection loop.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return ErrMonitorAlreadyRunning
	}

	ctx, m.cancel = context.WithCancel(ctx)
	m.running = true

	m.logger.Info().
		Dur("interval", m.config.Interval).
		Int("detectors", len(m.config.Detectors)).
		Msg("ambient monitor starting")

	m.wg.Add(1)
	go m.runLoop(ctx)

	return nil
}

// Stop halts the detection loop.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return ErrMonitorNotRunning
	}
	m.running = false
	cancel := m.cancel
	m.mu.Unlock()

	cancel()
	m.wg.Wait()

	m.logger.Info().Msg("ambient monitor stopped")
	return nil
}

func (m *Monitor) runLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh()
		}
	}
}

// refresh re-runs the detector chain and notifies on change.
func (m *Monitor) refresh() {
	detected, source := Detect(m.config.Detectors)

	m.mu.Lock()
	changed := detected != m.prefersDark
	m.prefersDark = detected
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Debug().
		Bool("prefers_dark", detected).
		Str("source", source).
		Msg("ambient preference changed")
	m.subs.notify(detected)
}
