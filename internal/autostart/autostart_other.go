//go:build !windows

package autostart

// Login-item registration is only wired up on Windows. Other platforms
// report the feature as disabled instead of failing the caller.

func Enabled() (bool, error) {
	return false, nil
}

func SetEnabled(enable bool) error {
	_ = enable
	return nil
}
