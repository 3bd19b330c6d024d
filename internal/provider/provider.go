// Package provider establishes nested theming scopes: each scope
// resolves a theme from its inherited inputs and exposes the result,
// the color mode, and a mode setter to its descendants.
package provider

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tOgg1/tint/internal/ambient"
	"github.com/tOgg1/tint/internal/colormode"
	"github.com/tOgg1/tint/internal/logging"
	"github.com/tOgg1/tint/internal/theme"
)

// Options are the tunable inputs of a scope. Any zero-valued input is
// inherited from the enclosing scope, or falls back to the built-in
// defaults at the outermost scope (default theme, day mode, no scheme
// overrides).
type Options struct {
	// Theme is merged onto the inherited theme; it does not replace it.
	Theme theme.Theme

	// ColorMode seeds this scope's own mode state. Empty inherits the
	// enclosing scope's current mode.
	ColorMode colormode.Mode

	// DayScheme names the scheme used when polarity resolves to day.
	DayScheme string

	// NightScheme names the scheme used when polarity resolves to night.
	NightScheme string

	// Ambient is the environment preference signal. Nil inherits the
	// enclosing scope's source.
	Ambient ambient.Source
}

// Context is the propagation unit visible to consumers: a fully
// concrete theme plus the mode state of the nearest scope.
type Context struct {
	// Theme is resolved and concrete; the scheme table is stripped.
	Theme theme.Theme

	// Mode is the current intent (day, night, or auto).
	Mode colormode.Mode

	// Polarity is the concrete day/night value, never auto.
	Polarity colormode.Polarity

	// SetMode switches the nearest scope's mode. It never passes
	// through to an ancestor.
	SetMode func(colormode.Mode) error
}

// Scope is one instance of the propagation layer. Each scope owns its
// own color-mode machine, seeded from the inherited values, so mode
// changes and ambient reactions stay local to the layer they target.
type Scope struct {
	id     string
	logger zerolog.Logger

	ambientSrc  ambient.Source
	dayScheme   string
	nightScheme string

	// base is the merged, unresolved theme (scheme table intact); it
	// is what nested scopes inherit as their merge base.
	base theme.Theme

	machine       *colormode.Machine
	machineCancel func()

	mu            sync.Mutex
	resolved      theme.Theme
	state         colormode.State
	listeners     map[string]func(Context)
	listenerOrder []string

	closeOnce sync.Once
}

// New creates a scope nested under parent. A nil parent creates an
// outermost scope. An invalid color mode in opts is rejected.
func New(parent *Scope, opts Options) (*Scope, error) {
	if opts.ColorMode != "" {
		if _, err := colormode.ParseMode(string(opts.ColorMode)); err != nil {
			return nil, err
		}
	}

	s := &Scope{
		id:        uuid.NewString(),
		listeners: make(map[string]func(Context)),
	}
	s.logger = logging.WithScope(s.id)

	// Per-input resolution: explicit > inherited > default.
	mode := opts.ColorMode
	s.dayScheme = opts.DayScheme
	s.nightScheme = opts.NightScheme
	s.ambientSrc = opts.Ambient

	var inheritedBase theme.Theme
	if parent != nil {
		inheritedBase = parent.base
		if mode == "" {
			mode = parent.machine.State().Mode
		}
		if s.dayScheme == "" {
			s.dayScheme = parent.dayScheme
		}
		if s.nightScheme == "" {
			s.nightScheme = parent.nightScheme
		}
		if s.ambientSrc == nil {
			s.ambientSrc = parent.ambientSrc
		}
	} else {
		inheritedBase = theme.Default()
		if mode == "" {
			mode = colormode.ModeDay
		}
	}

	// Theme inheritance composes via merge; everything else above was
	// inherited by direct substitution.
	s.base = theme.Merge(inheritedBase, opts.Theme)

	machine, err := colormode.NewMachine(colormode.MachineConfig{
		Mode:        mode,
		DayScheme:   s.dayScheme,
		NightScheme: s.nightScheme,
		Ambient:     s.ambientSrc,
	})
	if err != nil {
		return nil, err
	}
	s.machine = machine

	s.state = machine.State()
	s.resolved = theme.ResolveScheme(s.base, s.state.Scheme)
	s.machineCancel = machine.Subscribe(s.onModeChange)

	s.logger.Debug().
		Str("mode", string(s.state.Mode)).
		Str("scheme", s.state.Scheme).
		Bool("nested", parent != nil).
		Msg("scope created")

	return s, nil
}

// Context returns the current propagation unit. The tuple is always
// internally consistent: a SetMode call fully re-derives it before
// returning.
func (s *Scope) Context() Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contextLocked()
}

func (s *Scope) contextLocked() Context {
	return Context{
		Theme:    s.resolved,
		Mode:     s.state.Mode,
		Polarity: s.state.Polarity,
		SetMode:  s.machine.SetMode,
	}
}

// SetMode switches this scope's color mode.
func (s *Scope) SetMode(mode colormode.Mode) error {
	return s.machine.SetMode(mode)
}

// OnChange registers a callback invoked with the re-derived Context
// after every mode or ambient change. The returned cancel function
// releases the registration.
func (s *Scope) OnChange(fn func(Context)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.listeners[id] = fn
	s.listenerOrder = append(s.listenerOrder, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, existing := range s.listenerOrder {
				if existing == id {
					s.listenerOrder = append(s.listenerOrder[:i], s.listenerOrder[i+1:]...)
					break
				}
			}
		})
	}
}

// Close releases the scope's machine and its ambient subscription.
// Idempotent; nested scopes must be closed by their own creators.
func (s *Scope) Close() {
	s.closeOnce.Do(func() {
		s.machineCancel()
		s.machine.Close()
		s.logger.Debug().Msg("scope closed")
	})
}

// onModeChange re-resolves the theme for the machine's new state and
// notifies listeners with the fresh Context.
func (s *Scope) onModeChange(state colormode.State) {
	s.mu.Lock()
	s.state = state
	s.resolved = theme.ResolveScheme(s.base, state.Scheme)
	ctx := s.contextLocked()
	callbacks := make([]func(Context), 0, len(s.listenerOrder))
	for _, id := range s.listenerOrder {
		if fn, ok := s.listeners[id]; ok {
			callbacks = append(callbacks, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(ctx)
	}
}
