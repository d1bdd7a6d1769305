//go:build windows

package hotkey

import (
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
)

const (
	wmHotkey = 0x0312
	pmRemove = 0x0001

	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000

	pollInterval = 25 * time.Millisecond
)

type winMsg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

type hotkeyRequest struct {
	register bool
	id       int
	mods     uint32
	vk       uint32
	reply    chan error
}

// windowsBackend runs a dedicated OS thread because RegisterHotKey binds
// hotkeys to the registering thread's message queue.
type windowsBackend struct {
	fire func(canonical string)

	mu     sync.Mutex
	nextID int
	ids    map[string]int // canonical -> hotkey id
	byID   map[int]string

	requests chan hotkeyRequest
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newPlatformBackend(fire func(canonical string)) Backend {
	b := &windowsBackend{
		fire:     fire,
		nextID:   1,
		ids:      make(map[string]int),
		byID:     make(map[int]string),
		requests: make(chan hotkeyRequest),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go b.loop()
	return b
}

func (b *windowsBackend) Register(acc Accelerator) error {
	vk, err := virtualKey(acc.Key)
	if err != nil {
		return err
	}
	canonical := acc.Canonical()

	b.mu.Lock()
	if _, exists := b.ids[canonical]; exists {
		b.mu.Unlock()
		return fmt.Errorf("shortcut %q is already registered", acc.Raw)
	}
	id := b.nextID
	b.nextID++
	b.mu.Unlock()

	req := hotkeyRequest{register: true, id: id, mods: winModifiers(acc.Mods), vk: vk, reply: make(chan error, 1)}
	select {
	case b.requests <- req:
	case <-b.quit:
		return fmt.Errorf("shortcut backend is closed")
	}
	if err := <-req.reply; err != nil {
		return err
	}

	b.mu.Lock()
	b.ids[canonical] = id
	b.byID[id] = canonical
	b.mu.Unlock()
	return nil
}

func (b *windowsBackend) Unregister(acc Accelerator) error {
	canonical := acc.Canonical()

	b.mu.Lock()
	id, exists := b.ids[canonical]
	b.mu.Unlock()
	if !exists {
		return fmt.Errorf("shortcut %q is not registered", acc.Raw)
	}

	req := hotkeyRequest{register: false, id: id, reply: make(chan error, 1)}
	select {
	case b.requests <- req:
	case <-b.quit:
		return fmt.Errorf("shortcut backend is closed")
	}
	if err := <-req.reply; err != nil {
		return err
	}

	b.mu.Lock()
	delete(b.ids, canonical)
	delete(b.byID, id)
	b.mu.Unlock()
	return nil
}

func (b *windowsBackend) Close() error {
	b.once.Do(func() {
		close(b.quit)
		<-b.done
	})
	return nil
}

func (b *windowsBackend) loop() {
	// Hotkey registration and the message pump must share one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(b.done)

	registered := make(map[int]struct{})
	defer func() {
		for id := range registered {
			_, _, _ = procUnregisterHotKey.Call(0, uintptr(id))
		}
	}()

	for {
		select {
		case <-b.quit:
			return
		case req := <-b.requests:
			if req.register {
				ret, _, callErr := procRegisterHotKey.Call(0, uintptr(req.id), uintptr(req.mods|modNoRepeat), uintptr(req.vk))
				if ret == 0 {
					req.reply <- fmt.Errorf("RegisterHotKey failed: %v", callErr)
					continue
				}
				registered[req.id] = struct{}{}
				req.reply <- nil
			} else {
				ret, _, callErr := procUnregisterHotKey.Call(0, uintptr(req.id))
				if ret == 0 {
					req.reply <- fmt.Errorf("UnregisterHotKey failed: %v", callErr)
					continue
				}
				delete(registered, req.id)
				req.reply <- nil
			}
		default:
			var msg winMsg
			ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, wmHotkey, wmHotkey, pmRemove)
			if ret == 0 {
				time.Sleep(pollInterval)
				continue
			}
			if msg.Message != wmHotkey {
				continue
			}
			b.mu.Lock()
			canonical, known := b.byID[int(msg.WParam)]
			b.mu.Unlock()
			if known && b.fire != nil {
				b.fire(canonical)
			}
		}
	}
}

// Supported reports whether this build can bind global shortcuts.
func Supported() bool {
	return true
}

func winModifiers(mods Modifier) uint32 {
	var out uint32
	if mods&ModCtrl != 0 {
		out |= modControl
	}
	if mods&ModAlt != 0 {
		out |= modAlt
	}
	if mods&ModShift != 0 {
		out |= modShift
	}
	if mods&ModSuper != 0 {
		out |= modWin
	}
	return out
}

func virtualKey(key string) (uint32, error) {
	if len(key) == 1 {
		ch := key[0]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			return uint32(ch), nil
		}
	}
	switch key {
	case "Space":
		return 0x20, nil
	case "Enter":
		return 0x0D, nil
	case "Esc":
		return 0x1B, nil
	case "Tab":
		return 0x09, nil
	case "Delete":
		return 0x2E, nil
	case "Left":
		return 0x25, nil
	case "Up":
		return 0x26, nil
	case "Right":
		return 0x27, nil
	case "Down":
		return 0x28, nil
	}
	var n int
	if _, err := fmt.Sscanf(key, "F%d", &n); err == nil && n >= 1 && n <= 24 {
		return uint32(0x70 + n - 1), nil
	}
	return 0, fmt.Errorf("no virtual key for %q", key)
}
