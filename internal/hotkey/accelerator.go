package hotkey

import (
	"fmt"
	"runtime"
	"strings"
)

// Modifier is a bitmask of accelerator modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	// ModSuper is the Windows key on Windows and Command on macOS.
	ModSuper
)

// Accelerator is a parsed global shortcut in Electron-style accelerator
// notation, e.g. "CmdOrCtrl+Shift+N".
type Accelerator struct {
	Raw  string
	Mods Modifier
	Key  string
}

var keyAliases = map[string]string{
	"ESC":    "Esc",
	"ESCAPE": "Esc",
	"ENTER":  "Enter",
	"RETURN": "Enter",
	"SPACE":  "Space",
	"UP":     "Up",
	"DOWN":   "Down",
	"LEFT":   "Left",
	"RIGHT":  "Right",
	"TAB":    "Tab",
	"DELETE": "Delete",
	"DEL":    "Delete",
}

// Parse validates an accelerator string. Parsing is case-insensitive;
// "CmdOrCtrl" resolves to Cmd on macOS and Ctrl everywhere else.
func Parse(raw string) (Accelerator, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Accelerator{}, fmt.Errorf("accelerator is required")
	}

	parts := strings.Split(trimmed, "+")
	acc := Accelerator{Raw: trimmed}
	for i, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return Accelerator{}, fmt.Errorf("invalid accelerator %q: empty token", raw)
		}
		last := i == len(parts)-1
		if !last {
			mod, ok := parseModifier(token)
			if !ok {
				return Accelerator{}, fmt.Errorf("invalid accelerator %q: unknown modifier %q", raw, token)
			}
			if acc.Mods&mod != 0 {
				return Accelerator{}, fmt.Errorf("invalid accelerator %q: duplicate modifier %q", raw, token)
			}
			acc.Mods |= mod
			continue
		}
		key, err := parseKey(token)
		if err != nil {
			return Accelerator{}, fmt.Errorf("invalid accelerator %q: %w", raw, err)
		}
		acc.Key = key
	}
	return acc, nil
}

// Canonical returns the normalized form used for dedup and persistence:
// modifiers in a fixed order followed by the key.
func (a Accelerator) Canonical() string {
	var parts []string
	if a.Mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if a.Mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if a.Mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if a.Mods&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}

func parseModifier(token string) (Modifier, bool) {
	switch strings.ToUpper(token) {
	case "CTRL", "CONTROL":
		return ModCtrl, true
	case "ALT", "OPTION":
		return ModAlt, true
	case "SHIFT":
		return ModShift, true
	case "SUPER", "META", "WIN", "CMD", "COMMAND":
		return ModSuper, true
	case "CMDORCTRL", "COMMANDORCONTROL":
		if runtime.GOOS == "darwin" {
			return ModSuper, true
		}
		return ModCtrl, true
	default:
		return 0, false
	}
}

func parseKey(token string) (string, error) {
	upper := strings.ToUpper(token)
	if alias, ok := keyAliases[upper]; ok {
		return alias, nil
	}
	if len(upper) == 1 {
		ch := upper[0]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			return string(ch), nil
		}
		return "", fmt.Errorf("unsupported key %q", token)
	}
	if strings.HasPrefix(upper, "F") {
		var n int
		if _, err := fmt.Sscanf(upper, "F%d", &n); err == nil && n >= 1 && n <= 24 {
			return fmt.Sprintf("F%d", n), nil
		}
	}
	// A bare modifier in key position is a parse error, not a shortcut.
	if _, isMod := parseModifier(token); isMod {
		return "", fmt.Errorf("missing key after modifier %q", token)
	}
	return "", fmt.Errorf("unsupported key %q", token)
}
