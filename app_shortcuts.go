package main

import (
	"context"
	"errors"
	"time"

	"nyxshell/internal/hotkey"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// RegisterGlobalShortcut binds a global accelerator. The binding survives
// restarts; firing it emits the nyx:global-shortcut event.
func (a *App) RegisterGlobalShortcut(accelerator string) error {
	if a.shortcuts == nil {
		return errors.New("shortcut manager is not initialized")
	}
	if err := a.shortcuts.Register(accelerator); err != nil {
		return err
	}
	if a.store != nil {
		if err := a.store.AddShortcut(a.storeCtx(), accelerator, time.Now().Unix()); err != nil && a.ctx != nil {
			runtime.LogWarningf(a.ctx, "shortcut persist failed: %v", err)
		}
	}
	return nil
}

// UnregisterGlobalShortcut removes a previously registered accelerator.
func (a *App) UnregisterGlobalShortcut(accelerator string) error {
	if a.shortcuts == nil {
		return errors.New("shortcut manager is not initialized")
	}
	if err := a.shortcuts.Unregister(accelerator); err != nil {
		return err
	}
	if a.store != nil {
		if err := a.store.RemoveShortcut(a.storeCtx(), accelerator); err != nil && a.ctx != nil {
			runtime.LogWarningf(a.ctx, "shortcut removal persist failed: %v", err)
		}
	}
	return nil
}

// ListGlobalShortcuts returns the currently bound accelerators.
func (a *App) ListGlobalShortcuts() []string {
	if a.shortcuts == nil {
		return nil
	}
	return a.shortcuts.List()
}

// ShortcutsSupported reports whether this build can bind global shortcuts.
func (a *App) ShortcutsSupported() bool {
	return hotkey.Supported()
}

func (a *App) onShortcutFired(accelerator string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventGlobalShortcut, accelerator)
}

// restoreShortcuts re-registers the accelerators persisted by earlier runs.
func (a *App) restoreShortcuts(ctx context.Context) {
	if a.store == nil || a.shortcuts == nil {
		return
	}
	bindings, err := a.store.ListShortcuts(ctx)
	if err != nil {
		runtime.LogWarningf(a.ctx, "shortcut restore read failed: %v", err)
		return
	}
	for _, binding := range bindings {
		if err := a.shortcuts.Register(binding.Accelerator); err != nil {
			runtime.LogWarningf(a.ctx, "shortcut %q restore failed: %v", binding.Accelerator, err)
		}
	}
}

func (a *App) registerDefaultShortcut() {
	if a.shortcuts == nil || a.shortcuts.Registered(defaultShortcut) {
		return
	}
	if err := a.shortcuts.Register(defaultShortcut); err != nil {
		runtime.LogWarningf(a.ctx, "default shortcut registration failed: %v", err)
	}
}
