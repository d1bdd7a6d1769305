//go:build !windows

package tray

import "testing"

func TestStubManagerReportsUnavailable(t *testing.T) {
	m := New(nil, nil, nil, nil)
	if m.Available() {
		t.Fatal("stub manager must report unavailable")
	}
	if m.Reason() == "" {
		t.Fatal("stub manager must explain why it is unavailable")
	}
	if err := m.Start(); err == nil {
		t.Fatal("stub manager start must fail")
	}
	// None of these may panic on the stub.
	m.SetWindowVisible(false)
	if !m.WindowVisible() {
		t.Fatal("stub manager always reports the window as visible")
	}
	m.Stop()
}
