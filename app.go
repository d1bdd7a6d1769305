package main

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"nyxshell/internal/autostart"
	"nyxshell/internal/config"
	"nyxshell/internal/hotkey"
	"nyxshell/internal/store/sqlite"
	"nyxshell/internal/tray"
	"nyxshell/internal/windows"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

const (
	windowStateNormal     = "normal"
	windowStateMaximised  = "maximised"
	windowStateFullscreen = "fullscreen"

	settingWindowState = "window_state"

	// defaultShortcut opens a new shell surface. Registered at startup,
	// never persisted, so unregistering it does not survive a restart.
	defaultShortcut = "CmdOrCtrl+Shift+N"

	// settingLaunchKeep overrides the launch-history retention cap.
	settingLaunchKeep = "launch_history_keep"
	launchHistoryKeep = 500
)

// Events the frontend subscribes to.
const (
	eventGlobalShortcut = "nyx:global-shortcut"
	eventWindowCreated  = "nyx:native-window-created"
	eventWindowFocused  = "nyx:native-window-focused"
	eventWindowClosed   = "nyx:native-window-closed"
)

// App struct
type App struct {
	ctx         context.Context
	cfg         config.Config
	store       *sqlite.Store
	trayManager *tray.Manager
	shortcuts   *hotkey.Manager
	winRegistry *windows.Registry

	mu          sync.RWMutex
	trayStatus  string
	windowState string
	quitNow     bool
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{
		winRegistry: windows.NewRegistry(),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.cfg = config.Load()
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		panic(err)
	}

	dbStore, err := sqlite.Open(a.cfg.DBPath())
	if err != nil {
		panic(err)
	}
	a.store = dbStore

	if err := a.store.Migrate(ctx); err != nil {
		panic(err)
	}

	state, stateErr := a.store.GetSetting(ctx, settingWindowState, windowStateNormal)
	if stateErr == nil {
		a.mu.Lock()
		a.windowState = state
		a.mu.Unlock()
	}

	a.shortcuts = hotkey.NewManager(a.onShortcutFired)
	a.restoreShortcuts(ctx)
	a.registerDefaultShortcut()

	a.startTray()
}

func (a *App) shutdown(ctx context.Context) {
	if a.shortcuts != nil {
		if err := a.shortcuts.Close(); err != nil {
			runtime.LogWarningf(ctx, "shortcut manager shutdown warning: %v", err)
		}
	}
	a.stopTray()
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *App) beforeClose(_ context.Context) (prevent bool) {
	a.mu.RLock()
	quitNow := a.quitNow
	a.mu.RUnlock()
	if quitNow {
		return false
	}
	// Closing the shell window parks it in the tray instead of quitting.
	a.hideMainWindow()
	return true
}

// ExitApp quits for real, bypassing the hide-to-tray close handler.
func (a *App) ExitApp() {
	a.mu.Lock()
	a.quitNow = true
	a.mu.Unlock()
	runtime.Quit(a.ctx)
}

func (a *App) startTray() {
	a.trayManager = tray.New(trayIcon, func() {
		a.showMainWindow()
	}, func() {
		a.hideMainWindow()
	}, func() {
		a.ExitApp()
	})
	if err := a.trayManager.Start(); err != nil {
		a.setTrayStatus("unavailable")
		runtime.LogWarningf(a.ctx, "System tray unavailable: %v", err)
		return
	}
	a.setTrayStatus("running")
	a.trayManager.SetWindowVisible(true)
}

func (a *App) stopTray() {
	if a.trayManager == nil {
		return
	}
	a.trayManager.Stop()
	a.setTrayStatus("stopped")
}

func (a *App) showMainWindow() {
	if a.ctx == nil {
		return
	}
	runtime.WindowShow(a.ctx)
	runtime.WindowUnminimise(a.ctx)
	a.restoreWindowState()
	state := a.windowStateSnapshot()
	if state != windowStateNormal {
		go func(savedState string) {
			time.Sleep(140 * time.Millisecond)
			if a.ctx == nil {
				return
			}
			a.applyWindowState(savedState)
		}(state)
	}
	if a.trayManager != nil {
		a.trayManager.SetWindowVisible(true)
	}
}

func (a *App) hideMainWindow() {
	if a.ctx == nil {
		return
	}
	a.captureWindowState()
	runtime.WindowHide(a.ctx)
	if a.trayManager != nil {
		a.trayManager.SetWindowVisible(false)
	}
}

func (a *App) setTrayStatus(status string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.trayStatus = status
}

// TrayStatus reports the tray state for the frontend status surface.
func (a *App) TrayStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if strings.TrimSpace(a.trayStatus) == "" {
		return "unknown"
	}
	return a.trayStatus
}

// DataDir returns the resolved data directory.
func (a *App) DataDir() string {
	return a.cfg.DataDir
}

// AutostartEnabled reports whether the shell starts with the session.
func (a *App) AutostartEnabled() (bool, error) {
	return autostart.Enabled()
}

// SetAutostartEnabled toggles launch-on-login and returns the new state.
func (a *App) SetAutostartEnabled(enable bool) (bool, error) {
	if err := autostart.SetEnabled(enable); err != nil {
		return false, err
	}
	return autostart.Enabled()
}

// storeCtx is the context used for store access outside the Wails
// lifecycle, where a.ctx is not set yet.
func (a *App) storeCtx() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

func (a *App) captureWindowState() {
	state := windowStateNormal
	if runtime.WindowIsFullscreen(a.ctx) {
		state = windowStateFullscreen
	} else if runtime.WindowIsMaximised(a.ctx) {
		state = windowStateMaximised
	}
	a.mu.Lock()
	a.windowState = state
	a.mu.Unlock()
	if a.store != nil {
		if err := a.store.SetSetting(a.ctx, settingWindowState, state); err != nil {
			runtime.LogWarningf(a.ctx, "window state persist failed: %v", err)
		}
	}
}

func (a *App) windowStateSnapshot() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if strings.TrimSpace(a.windowState) == "" {
		return windowStateNormal
	}
	return a.windowState
}

func (a *App) restoreWindowState() {
	a.applyWindowState(a.windowStateSnapshot())
}

func (a *App) applyWindowState(state string) {
	switch state {
	case windowStateFullscreen:
		runtime.WindowFullscreen(a.ctx)
	case windowStateMaximised:
		runtime.WindowMaximise(a.ctx)
	}
}
