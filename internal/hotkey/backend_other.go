//go:build !windows

package hotkey

import "errors"

var errHotkeysUnsupported = errors.New("global shortcuts are implemented for Windows in this build")

type stubBackend struct{}

func newPlatformBackend(_ func(canonical string)) Backend {
	return stubBackend{}
}

func (stubBackend) Register(Accelerator) error {
	return errHotkeysUnsupported
}

func (stubBackend) Unregister(Accelerator) error {
	return nil
}

func (stubBackend) Close() error {
	return nil
}

// Supported reports whether this build can bind global shortcuts.
func Supported() bool {
	return false
}
