package hotkey

import (
	"fmt"
	"sort"
	"sync"
)

// FireFunc receives the accelerator string exactly as it was registered.
type FireFunc func(accelerator string)

// Backend binds parsed accelerators to the OS. Implementations fire the
// canonical accelerator string through the callback they were built with.
type Backend interface {
	Register(acc Accelerator) error
	Unregister(acc Accelerator) error
	Close() error
}

// Manager owns the set of registered global shortcuts.
//
// The backend may deliver fires from the same goroutine that services
// register/unregister requests, so the manager never calls into the
// backend while holding mu. Registrations in flight are parked in
// pending so duplicates are still rejected.
type Manager struct {
	onFire FireFunc

	mu      sync.Mutex
	backend Backend
	bound   map[string]Accelerator // canonical -> parsed accelerator
	pending map[string]struct{}    // canonical, backend call in flight
	closed  bool
}

func NewManager(onFire FireFunc) *Manager {
	m := &Manager{
		onFire:  onFire,
		bound:   make(map[string]Accelerator),
		pending: make(map[string]struct{}),
	}
	m.backend = newPlatformBackend(m.fire)
	return m
}

func newManagerWithBackend(onFire FireFunc, backend Backend) *Manager {
	return &Manager{
		onFire:  onFire,
		backend: backend,
		bound:   make(map[string]Accelerator),
		pending: make(map[string]struct{}),
	}
}

// Register parses and binds an accelerator. Registering an accelerator
// twice is an error, even if the two spellings differ only in case.
func (m *Manager) Register(raw string) error {
	acc, err := Parse(raw)
	if err != nil {
		return err
	}
	canonical := acc.Canonical()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return fmt.Errorf("shortcut manager is closed")
	}
	if _, exists := m.bound[canonical]; exists {
		m.mu.Unlock()
		return fmt.Errorf("shortcut %q is already registered", acc.Raw)
	}
	if _, exists := m.pending[canonical]; exists {
		m.mu.Unlock()
		return fmt.Errorf("shortcut %q is already registered", acc.Raw)
	}
	m.pending[canonical] = struct{}{}
	m.mu.Unlock()

	bindErr := m.backend.Register(acc)

	m.mu.Lock()
	delete(m.pending, canonical)
	if bindErr != nil {
		m.mu.Unlock()
		return bindErr
	}
	if m.closed {
		m.mu.Unlock()
		_ = m.backend.Unregister(acc)
		return fmt.Errorf("shortcut manager is closed")
	}
	m.bound[canonical] = acc
	m.mu.Unlock()
	return nil
}

func (m *Manager) Unregister(raw string) error {
	acc, err := Parse(raw)
	if err != nil {
		return err
	}
	canonical := acc.Canonical()

	m.mu.Lock()
	bound, exists := m.bound[canonical]
	if !exists {
		m.mu.Unlock()
		return fmt.Errorf("shortcut %q is not registered", acc.Raw)
	}
	delete(m.bound, canonical)
	m.mu.Unlock()

	if err := m.backend.Unregister(bound); err != nil {
		m.mu.Lock()
		if !m.closed {
			m.bound[canonical] = bound
		}
		m.mu.Unlock()
		return err
	}
	return nil
}

// Registered reports whether the accelerator is currently bound.
func (m *Manager) Registered(raw string) bool {
	acc, err := Parse(raw)
	if err != nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.bound[acc.Canonical()]
	return exists
}

// List returns the registered accelerators as originally spelled, in a
// stable order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.bound))
	for _, acc := range m.bound {
		out = append(out, acc.Raw)
	}
	sort.Strings(out)
	return out
}

// Close unbinds everything and shuts the backend down.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	bound := m.bound
	m.bound = make(map[string]Accelerator)
	m.mu.Unlock()

	for _, acc := range bound {
		_ = m.backend.Unregister(acc)
	}
	return m.backend.Close()
}

func (m *Manager) fire(canonical string) {
	m.mu.Lock()
	acc, exists := m.bound[canonical]
	onFire := m.onFire
	m.mu.Unlock()
	if !exists || onFire == nil {
		return
	}
	onFire(acc.Raw)
}
