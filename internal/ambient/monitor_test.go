package ambient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// flipDetector reports a value controlled by the test.
type flipDetector struct {
	mu    sync.Mutex
	value bool
}

func (d *flipDetector) Name() string    { return "flip" }
func (d *flipDetector) Available() bool { return true }

func (d *flipDetector) Detect() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value, true
}

func (d *flipDetector) set(v bool) {
	d.mu.Lock()
	d.value = v
	d.mu.Unlock()
}

func TestMonitorInitialValue(t *testing.T) {
	m := NewMonitor(MonitorConfig{Detectors: []Detector{&flipDetector{value: true}}})
	require.True(t, m.PrefersDark())
}

func TestMonitorRefreshNotifiesOnChange(t *testing.T) {
	detector := &flipDetector{}
	m := NewMonitor(MonitorConfig{Detectors: []Detector{detector}})

	var got []bool
	cancel := m.Subscribe(func(prefersDark bool) { got = append(got, prefersDark) })
	defer cancel()

	m.refresh() // unchanged, no callback
	detector.set(true)
	m.refresh()
	m.refresh() // unchanged again

	require.Equal(t, []bool{true}, got)
	require.True(t, m.PrefersDark())
}

func TestMonitorStartStop(t *testing.T) {
	detector := &flipDetector{}
	m := NewMonitor(MonitorConfig{
		Interval:  10 * time.Millisecond,
		Detectors: []Detector{detector},
	})

	require.NoError(t, m.Start(context.Background()))
	require.ErrorIs(t, m.Start(context.Background()), ErrMonitorAlreadyRunning)

	changes := make(chan bool, 1)
	cancel := m.Subscribe(func(prefersDark bool) {
		select {
		case changes <- prefersDark:
		default:
		}
	})
	defer cancel()

	detector.set(true)
	select {
	case v := <-changes:
		require.True(t, v)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ambient change notification")
	}

	require.NoError(t, m.Stop())
	require.ErrorIs(t, m.Stop(), ErrMonitorNotRunning)
}
