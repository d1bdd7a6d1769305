package main

import (
	"errors"
	"fmt"

	"nyxshell/internal/domain"
	"nyxshell/internal/windows"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// MinimizeWindow minimizes the shell window.
func (a *App) MinimizeWindow() {
	if a.ctx == nil {
		return
	}
	runtime.WindowMinimise(a.ctx)
}

// MaximizeWindow maximizes the shell window.
func (a *App) MaximizeWindow() {
	if a.ctx == nil {
		return
	}
	runtime.WindowMaximise(a.ctx)
}

// ShowWindow shows the shell window and restores its saved state.
func (a *App) ShowWindow() {
	a.showMainWindow()
}

// HideWindow hides the shell window to the tray.
func (a *App) HideWindow() {
	a.hideMainWindow()
}

// SetWindowAlwaysOnTop pins or unpins the shell window.
func (a *App) SetWindowAlwaysOnTop(alwaysOnTop bool) {
	if a.ctx == nil {
		return
	}
	runtime.WindowSetAlwaysOnTop(a.ctx, alwaysOnTop)
}

// SetWindowFullscreen enters or leaves fullscreen.
func (a *App) SetWindowFullscreen(fullscreen bool) {
	if a.ctx == nil {
		return
	}
	if fullscreen {
		runtime.WindowFullscreen(a.ctx)
	} else {
		runtime.WindowUnfullscreen(a.ctx)
	}
}

// CreateNativeWindow registers a labeled window and notifies the frontend,
// which renders a surface for the label.
func (a *App) CreateNativeWindow(label, title string, width, height int) error {
	info, err := a.winRegistry.Create(label, title, width, height)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	if a.ctx != nil {
		runtime.LogInfof(a.ctx, "native window created: %s (%dx%d)", info.Label, info.Width, info.Height)
		runtime.EventsEmit(a.ctx, eventWindowCreated, info.Label)
	}
	return nil
}

// FocusNativeWindow brings a labeled window to the front. The main label
// maps to the host window.
func (a *App) FocusNativeWindow(label string) error {
	if label == windows.MainLabel {
		a.showMainWindow()
		return nil
	}
	if _, err := a.winRegistry.Get(label); err != nil {
		if errors.Is(err, windows.ErrNotFound) {
			return errors.New("window not found")
		}
		return err
	}
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, eventWindowFocused, label)
	}
	return nil
}

// CloseNativeWindow removes a labeled window.
func (a *App) CloseNativeWindow(label string) error {
	if err := a.winRegistry.Close(label); err != nil {
		if errors.Is(err, windows.ErrNotFound) {
			return errors.New("window not found")
		}
		return err
	}
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, eventWindowClosed, label)
	}
	return nil
}

// ListNativeWindows returns the current labeled windows in creation order.
func (a *App) ListNativeWindows() []domain.WindowInfo {
	return a.winRegistry.List()
}
