package hotkey

import (
	"errors"
	"testing"
	"time"
)

// fakeBackend records register/unregister calls and can fire shortcuts.
type fakeBackend struct {
	registered     map[string]Accelerator
	failNext       error
	fire           func(canonical string)
	beforeRegister func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{registered: make(map[string]Accelerator)}
}

func (b *fakeBackend) Register(acc Accelerator) error {
	if b.beforeRegister != nil {
		hook := b.beforeRegister
		b.beforeRegister = nil
		hook()
	}
	if b.failNext != nil {
		err := b.failNext
		b.failNext = nil
		return err
	}
	b.registered[acc.Canonical()] = acc
	return nil
}

func (b *fakeBackend) Unregister(acc Accelerator) error {
	delete(b.registered, acc.Canonical())
	return nil
}

func (b *fakeBackend) Close() error {
	b.registered = nil
	return nil
}

func newTestManager(t *testing.T, onFire FireFunc) (*Manager, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	manager := newManagerWithBackend(onFire, backend)
	backend.fire = manager.fire
	return manager, backend
}

func TestRegisterAndUnregister(t *testing.T) {
	manager, backend := newTestManager(t, nil)

	if err := manager.Register("Ctrl+Shift+N"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(backend.registered) != 1 {
		t.Fatalf("expected 1 backend registration, got %d", len(backend.registered))
	}
	if !manager.Registered("ctrl+shift+n") {
		t.Fatal("case-insensitive lookup should find the shortcut")
	}

	if err := manager.Unregister("Ctrl+Shift+N"); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if len(backend.registered) != 0 {
		t.Fatalf("backend still holds %d registrations", len(backend.registered))
	}
}

func TestDuplicateRegistrationIsRejected(t *testing.T) {
	manager, _ := newTestManager(t, nil)

	if err := manager.Register("Ctrl+Shift+N"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// Same binding under a different spelling.
	if err := manager.Register("Shift+Ctrl+n"); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestUnregisterUnknownShortcut(t *testing.T) {
	manager, _ := newTestManager(t, nil)
	if err := manager.Unregister("Ctrl+Q"); err == nil {
		t.Fatal("expected error for unregistered shortcut")
	}
}

func TestBackendFailureIsPropagatedAndNotRecorded(t *testing.T) {
	manager, backend := newTestManager(t, nil)
	backend.failNext = errors.New("os said no")

	if err := manager.Register("Ctrl+K"); err == nil {
		t.Fatal("expected backend failure to propagate")
	}
	if manager.Registered("Ctrl+K") {
		t.Fatal("failed registration must not be recorded")
	}
	// A retry after the transient failure succeeds.
	if err := manager.Register("Ctrl+K"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestFireDeliversOriginalSpelling(t *testing.T) {
	var fired []string
	manager, backend := newTestManager(t, func(accelerator string) {
		fired = append(fired, accelerator)
	})

	if err := manager.Register("cmdorctrl+shift+n"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	for canonical := range backend.registered {
		backend.fire(canonical)
	}
	if len(fired) != 1 || fired[0] != "cmdorctrl+shift+n" {
		t.Fatalf("expected original spelling fired once, got %v", fired)
	}

	// Firing an unknown id is ignored.
	backend.fire("Ctrl+Z")
	if len(fired) != 1 {
		t.Fatalf("unexpected extra fire: %v", fired)
	}
}

// On Windows the backend services register requests and delivers fires
// on one goroutine, so a fire arriving mid-registration must not wait
// on the manager's lock.
func TestFireDuringRegisterDoesNotBlock(t *testing.T) {
	fired := make(chan string, 1)
	manager, backend := newTestManager(t, func(accelerator string) {
		fired <- accelerator
	})

	if err := manager.Register("Ctrl+J"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	bound, err := Parse("Ctrl+J")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	backend.beforeRegister = func() {
		delivered := make(chan struct{})
		go func() {
			backend.fire(bound.Canonical())
			close(delivered)
		}()
		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Error("fire blocked while a registration was in flight")
		}
	}

	if err := manager.Register("Ctrl+K"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	select {
	case got := <-fired:
		if got != "Ctrl+J" {
			t.Fatalf("expected Ctrl+J fired, got %q", got)
		}
	default:
		t.Fatal("shortcut was never delivered")
	}
}

func TestInvalidAcceleratorIsRejectedBeforeBackend(t *testing.T) {
	manager, backend := newTestManager(t, nil)
	if err := manager.Register("NotAShortcut+"); err == nil {
		t.Fatal("expected parse error")
	}
	if len(backend.registered) != 0 {
		t.Fatal("backend must not see invalid accelerators")
	}
}

func TestCloseUnbindsEverything(t *testing.T) {
	manager, _ := newTestManager(t, nil)
	if err := manager.Register("Ctrl+1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := manager.Register("Ctrl+2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := manager.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if manager.Registered("Ctrl+1") {
		t.Fatal("shortcuts must be gone after close")
	}
	if err := manager.Register("Ctrl+3"); err == nil {
		t.Fatal("register after close must fail")
	}
	if got := manager.List(); len(got) != 0 {
		t.Fatalf("list after close should be empty, got %v", got)
	}
}
