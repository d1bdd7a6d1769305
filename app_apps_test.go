package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"nyxshell/internal/store/sqlite"
)

func newAppWithStore(t *testing.T) *App {
	t.Helper()
	app := NewApp()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "shell.db"))
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Migrate(app.storeCtx()); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	app.store = store
	return app
}

func TestGetDesktopApps(t *testing.T) {
	app := NewApp()
	apps := app.GetDesktopApps()
	if len(apps) != 3 {
		t.Fatalf("expected 3 placeholder apps, got %d", len(apps))
	}
	for _, entry := range apps {
		if runtime.GOOS == "windows" {
			if !strings.HasSuffix(entry.Path, ".exe") {
				t.Fatalf("windows app without .exe path: %+v", entry)
			}
		} else if strings.HasSuffix(entry.Path, ".exe") {
			t.Fatalf("non-windows app with .exe path: %+v", entry)
		}
	}
}

func TestLaunchExternalAppFailureIsRecorded(t *testing.T) {
	app := newAppWithStore(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	err := app.LaunchExternalApp(missing)
	if err == nil {
		t.Fatal("expected error for nonexistent executable")
	}
	if !strings.Contains(err.Error(), "failed to launch app") {
		t.Fatalf("unexpected error text: %v", err)
	}

	history, histErr := app.LaunchHistory(10)
	if histErr != nil {
		t.Fatalf("history read failed: %v", histErr)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history))
	}
	if history[0].OK {
		t.Fatal("failed launch recorded as success")
	}
	if history[0].Path != missing || history[0].Error == "" {
		t.Fatalf("incomplete failure record: %+v", history[0])
	}
}

func TestLaunchHistoryKeepSetting(t *testing.T) {
	app := newAppWithStore(t)
	if err := app.store.SetSetting(app.storeCtx(), settingLaunchKeep, "1"); err != nil {
		t.Fatalf("set setting failed: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "gone")
	_ = app.LaunchExternalApp(missing)
	_ = app.LaunchExternalApp(missing)

	history, err := app.LaunchHistory(10)
	if err != nil {
		t.Fatalf("history read failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("retention setting ignored, got %d records", len(history))
	}
}

func TestLaunchHistoryWithoutStore(t *testing.T) {
	app := NewApp()
	history, err := app.LaunchHistory(10)
	if err != nil {
		t.Fatalf("history without store must not error: %v", err)
	}
	if history != nil {
		t.Fatalf("expected nil history, got %+v", history)
	}
}
