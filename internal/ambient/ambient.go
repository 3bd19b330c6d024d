// Package ambient supplies the host environment's dark-appearance
// preference as a live, subscribable signal.
package ambient

import (
	"sync"

	"github.com/google/uuid"
)

// Source is a live boolean signal: does the environment prefer a dark
// appearance. The current value is readable synchronously; Subscribe
// registers a callback invoked on every subsequent transition and
// returns a cancel function that releases the subscription.
type Source interface {
	PrefersDark() bool
	Subscribe(fn func(prefersDark bool)) (cancel func())
}

// subscribers is the shared callback registry used by Source
// implementations. Callbacks fire in registration order, outside the
// lock, and only on actual transitions.
type subscribers struct {
	mu    sync.Mutex
	subs  map[string]func(bool)
	order []string
}

func newSubscribers() *subscribers {
	return &subscribers{subs: make(map[string]func(bool))}
}

func (s *subscribers) add(fn func(bool)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *subscribers) notify(prefersDark bool) {
	s.mu.Lock()
	callbacks := make([]func(bool), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			callbacks = append(callbacks, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(prefersDark)
	}
}

func (s *subscribers) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Static is a Source with a programmatically controlled value. It backs
// tests and callers that manage the preference themselves.
type Static struct {
	mu          sync.Mutex
	prefersDark bool
	subs        *subscribers
}

// NewStatic creates a Static source with an initial value.
func NewStatic(prefersDark bool) *Static {
	return &Static{prefersDark: prefersDark, subs: newSubscribers()}
}

// PrefersDark returns the current value.
func (s *Static) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefersDark
}

// Set updates the value, notifying subscribers when it changes.
func (s *Static) Set(prefersDark bool) {
	s.mu.Lock()
	changed := s.prefersDark != prefersDark
	s.prefersDark = prefersDark
	s.mu.Unlock()

	if changed {
		s.subs.notify(prefersDark)
	}
}

// Subscribe registers a change callback.
func (s *Static) Subscribe(fn func(prefersDark bool)) (cancel func()) {
	return s.subs.add(fn)
}

// SubscriberCount returns the number of live subscriptions.
func (s *Static) SubscriberCount() int {
	return s.subs.count()
}
