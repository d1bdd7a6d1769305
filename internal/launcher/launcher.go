package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"nyxshell/internal/domain"
)

// Launch starts an external program detached from the shell process. The
// shell never waits on the child; a spawn failure is reported, everything
// after a successful start is the child's business.
func Launch(appPath string) error {
	clean := strings.TrimSpace(appPath)
	if clean == "" {
		return errors.New("app path is required")
	}

	cmd := exec.Command(clean)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch app: %w", err)
	}
	// Detach so the child is not reparented to us as a zombie.
	return cmd.Process.Release()
}

// DisplayName derives a human-readable name from an executable path,
// preferring the catalog entry when the path is a known desktop app.
func DisplayName(appPath string) string {
	clean := strings.TrimSpace(appPath)
	for _, app := range Catalog() {
		if app.Path == clean {
			return app.Name
		}
	}
	base := filepath.Base(clean)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Catalog returns the built-in desktop app list for this platform.
func Catalog() []domain.DesktopApp {
	return platformCatalog()
}
