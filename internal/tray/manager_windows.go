//go:build windows

package tray

import (
	"errors"
	"sync"
	"time"

	"github.com/energye/systray"
)

type Manager struct {
	icon []byte

	onShow func()
	onHide func()
	onQuit func()

	mu         sync.RWMutex
	started    bool
	ready      bool
	visible    bool
	showItem   *systray.MenuItem
	hideItem   *systray.MenuItem
	quitItem   *systray.MenuItem
	shutdownMu sync.Mutex
}

func New(icon []byte, onShow func(), onHide func(), onQuit func()) *Manager {
	return &Manager{
		icon:    icon,
		onShow:  onShow,
		onHide:  onHide,
		onQuit:  onQuit,
		visible: true,
	}
}

func (m *Manager) Start() error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	readyCh := make(chan struct{})
	go systray.Run(func() {
		if len(m.icon) > 0 {
			systray.SetIcon(m.icon)
		}
		systray.SetTitle("NYX OS")
		systray.SetTooltip("NYX OS")

		// Left click brings the shell back; right click opens the menu.
		systray.SetOnClick(func(menu systray.IMenu) {
			if m.onShow != nil {
				m.onShow()
			}
			m.SetWindowVisible(true)
		})
		systray.SetOnRClick(func(menu systray.IMenu) {
			if menu != nil {
				_ = menu.ShowMenu()
			}
		})

		m.showItem = systray.AddMenuItem("Show NYX OS", "Show the shell window")
		m.hideItem = systray.AddMenuItem("Hide NYX OS", "Hide the shell window")
		systray.AddSeparator()
		m.quitItem = systray.AddMenuItem("Quit NYX OS", "Quit the shell")

		m.showItem.Click(func() {
			if m.onShow != nil {
				m.onShow()
			}
			m.SetWindowVisible(true)
		})
		m.hideItem.Click(func() {
			if m.onHide != nil {
				m.onHide()
			}
			m.SetWindowVisible(false)
		})
		m.quitItem.Click(func() {
			if m.onQuit != nil {
				m.onQuit()
			}
		})

		m.mu.Lock()
		m.ready = true
		visible := m.visible
		m.mu.Unlock()
		m.applyVisible(visible)

		close(readyCh)
	}, func() {})

	select {
	case <-readyCh:
		return nil
	case <-time.After(8 * time.Second):
		return errors.New("tray start timeout")
	}
}

func (m *Manager) Stop() {
	m.shutdownMu.Lock()
	defer m.shutdownMu.Unlock()
	if !m.started {
		return
	}
	systray.Quit()
	m.mu.Lock()
	m.ready = false
	m.started = false
	m.showItem = nil
	m.hideItem = nil
	m.quitItem = nil
	m.mu.Unlock()
}

func (m *Manager) SetWindowVisible(visible bool) {
	m.mu.Lock()
	m.visible = visible
	ready := m.ready
	m.mu.Unlock()
	if ready {
		m.applyVisible(visible)
	}
}

func (m *Manager) WindowVisible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *Manager) Available() bool {
	return true
}

func (m *Manager) Reason() string {
	return ""
}

// applyVisible keeps only the relevant half of the show/hide pair enabled.
func (m *Manager) applyVisible(visible bool) {
	m.mu.RLock()
	showItem, hideItem := m.showItem, m.hideItem
	m.mu.RUnlock()
	if showItem == nil || hideItem == nil {
		return
	}
	if visible {
		showItem.Disable()
		hideItem.Enable()
		return
	}
	showItem.Enable()
	hideItem.Disable()
}
