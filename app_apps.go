package main

import (
	"time"

	"nyxshell/internal/domain"
	"nyxshell/internal/launcher"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// GetDesktopApps returns the launchable desktop app catalog.
func (a *App) GetDesktopApps() []domain.DesktopApp {
	return launcher.Catalog()
}

// LaunchExternalApp spawns an external program and records the attempt.
func (a *App) LaunchExternalApp(appPath string) error {
	launchErr := launcher.Launch(appPath)

	record := domain.LaunchRecord{
		Path:         appPath,
		Name:         launcher.DisplayName(appPath),
		LaunchedUnix: time.Now().Unix(),
		OK:           launchErr == nil,
	}
	if launchErr != nil {
		record.Error = launchErr.Error()
	}
	a.recordLaunch(record)

	return launchErr
}

// LaunchHistory returns the most recent launch attempts, newest first.
func (a *App) LaunchHistory(limit int) ([]domain.LaunchRecord, error) {
	if a.store == nil {
		return nil, nil
	}
	return a.store.ListLaunches(a.storeCtx(), limit)
}

func (a *App) recordLaunch(record domain.LaunchRecord) {
	if a.store == nil {
		return
	}
	ctx := a.storeCtx()
	if err := a.store.RecordLaunch(ctx, record); err != nil {
		if a.ctx != nil {
			runtime.LogWarningf(a.ctx, "launch history write failed: %v", err)
		}
		return
	}
	keep, keepErr := a.store.GetSettingInt(ctx, settingLaunchKeep, launchHistoryKeep)
	if keepErr != nil || keep <= 0 {
		keep = launchHistoryKeep
	}
	if err := a.store.PruneLaunches(ctx, keep); err != nil && a.ctx != nil {
		runtime.LogWarningf(a.ctx, "launch history prune failed: %v", err)
	}
}
