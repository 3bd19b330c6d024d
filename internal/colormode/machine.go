package colormode

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tOgg1/tint/internal/ambient"
	"github.com/tOgg1/tint/internal/logging"
)

// Listener is a callback invoked with the fully re-derived state after
// any input change.
type Listener func(State)

// MachineConfig contains the machine's tunable inputs.
type MachineConfig struct {
	// Mode is the initial color mode. Empty defaults to day.
	Mode Mode

	// DayScheme overrides the scheme used when polarity resolves to
	// day. Empty means the "light" default.
	DayScheme string

	// NightScheme overrides the scheme used when polarity resolves to
	// night. Empty means the "dark" default.
	NightScheme string

	// Ambient is the environment preference signal. Nil is treated as
	// a permanent light preference.
	Ambient ambient.Source
}

// Machine owns the current color mode and re-derives polarity and
// scheme name whenever the mode or the ambient signal changes. The
// ambient subscription stays live even in explicit day/night mode so a
// later switch to auto picks up the current preference immediately.
type Machine struct {
	logger zerolog.Logger

	mu            sync.Mutex
	mode          Mode
	dayScheme     string
	nightScheme   string
	prefersDark   bool
	listeners     map[string]Listener
	listenerOrder []string

	ambientCancel func()
	closeOnce     sync.Once
}

// NewMachine creates a Machine and subscribes it to the ambient signal.
// An invalid initial mode is rejected.
func NewMachine(cfg MachineConfig) (*Machine, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeDay
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	m := &Machine{
		logger:      logging.Component("colormode"),
		mode:        mode,
		dayScheme:   cfg.DayScheme,
		nightScheme: cfg.NightScheme,
		listeners:   make(map[string]Listener),
	}

	if cfg.Ambient != nil {
		m.prefersDark = cfg.Ambient.PrefersDark()
		m.ambientCancel = cfg.Ambient.Subscribe(m.onAmbientChange)
	}

	return m, nil
}

// State returns the current fully derived state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.derive()
}

// SetMode replaces the mode and re-derives. This is the only externally
// invocable transition; listeners observe the new state before SetMode
// returns.
func (m *Machine) SetMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	m.mu.Lock()
	before := m.derive()
	m.mode = mode
	after := m.derive()
	m.mu.Unlock()

	if after != before {
		m.logger.Debug().
			Str("mode", string(after.Mode)).
			Str("polarity", string(after.Polarity)).
			Str("scheme", after.Scheme).
			Msg("color mode changed")
		m.notify(after)
	}
	return nil
}

// Subscribe registers a listener for state changes. The returned cancel
// function releases the registration and is safe to call repeatedly.
func (m *Machine) Subscribe(fn Listener) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.listeners[id] = fn
	m.listenerOrder = append(m.listenerOrder, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.listeners, id)
			for i, existing := range m.listenerOrder {
				if existing == id {
					m.listenerOrder = append(m.listenerOrder[:i], m.listenerOrder[i+1:]...)
					break
				}
			}
		})
	}
}

// Close releases the ambient subscription. Idempotent.
func (m *Machine) Close() {
	m.closeOnce.Do(func() {
		if m.ambientCancel != nil {
			m.ambientCancel()
		}
	})
}

// onAmbientChange is the ambient subscription callback. It is an input
// event, not a transition: the mode is untouched, only the derived
// state may change.
func (m *Machine) onAmbientChange(prefersDark bool) {
	m.mu.Lock()
	before := m.derive()
	m.prefersDark = prefersDark
	after := m.derive()
	m.mu.Unlock()

	if after != before {
		m.logger.Debug().
			Bool("prefers_dark", prefersDark).
			Str("polarity", string(after.Polarity)).
			Str("scheme", after.Scheme).
			Msg("ambient preference applied")
		m.notify(after)
	}
}

// derive must be called with the lock held.
func (m *Machine) derive() State {
	return Derive(m.mode, m.prefersDark, m.dayScheme, m.nightScheme)
}

// notify invokes listeners in registration order, outside the lock.
func (m *Machine) notify(state State) {
	m.mu.Lock()
	callbacks := make([]Listener, 0, len(m.listenerOrder))
	for _, id := range m.listenerOrder {
		if fn, ok := m.listeners[id]; ok {
			callbacks = append(callbacks, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}
