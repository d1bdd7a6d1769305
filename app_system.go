package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"nyxshell/internal/domain"
	"nyxshell/internal/sysinfo"

	"github.com/gen2brain/beeep"
)

// GetSystemInfo returns the static facts about the host.
func (a *App) GetSystemInfo() (domain.SystemInfo, error) {
	return sysinfo.Collect()
}

// GetPerformanceInfo is the legacy probe kept for frontend compatibility.
// The usage fields are fixed placeholders; GetSystemMetrics has the real
// numbers.
func (a *App) GetPerformanceInfo() domain.PerformanceInfo {
	return domain.PerformanceInfo{
		MemoryUsage: "Unknown",
		CPUUsage:    "Unknown",
		Timestamp:   time.Now().Unix(),
	}
}

// GetSystemMetrics samples live CPU and memory utilization.
func (a *App) GetSystemMetrics() (domain.SystemMetrics, error) {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	sampleCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sysinfo.CollectMetrics(sampleCtx)
}

// Notify shows a desktop notification.
func (a *App) Notify(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("notification title is required")
	}
	return beeep.Notify(title, body, "")
}
