package sysinfo

import (
	"fmt"
	"os"
	"runtime"

	"nyxshell/internal/domain"
)

// Collect gathers the static facts about the host.
func Collect() (domain.SystemInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return domain.SystemInfo{}, fmt.Errorf("read hostname: %w", err)
	}
	return domain.SystemInfo{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUCount: runtime.NumCPU(),
		Hostname: hostname,
	}, nil
}
