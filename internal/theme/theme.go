// Package theme resolves the stored theme preference against the host's
// appearance. The effective theme is always computed, never stored.
package theme

import (
	"fmt"
	"sync/atomic"
)

// Mode is the user's stored preference.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// DefaultMode is the preference of a fresh process.
const DefaultMode = ModeSystem

// Effective is the theme actually rendered.
type Effective string

const (
	Light Effective = "light"
	Dark  Effective = "dark"
)

// ParseMode validates a preference name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeDark, ModeSystem:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}

// Label is the menu label of m.
func (m Mode) Label() string {
	switch m {
	case ModeLight:
		return "Claro"
	case ModeDark:
		return "Escuro"
	default:
		return "Sistema"
	}
}

// Resolve maps a preference and the host appearance to the effective theme.
// An empty or unknown appearance counts as light.
func Resolve(mode Mode, appearance Effective) Effective {
	switch mode {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	}
	if appearance == Dark {
		return Dark
	}
	return Light
}

// AppearanceSource reports the host's current appearance; ok is false when
// the host cannot tell.
type AppearanceSource interface {
	Appearance() (Effective, bool)
}

// ResolveFrom reads src and resolves mode against it. It must be called on
// every read since the host appearance can change at any time.
func ResolveFrom(mode Mode, src AppearanceSource) Effective {
	if src == nil {
		return Resolve(mode, "")
	}
	a, ok := src.Appearance()
	if !ok {
		a = ""
	}
	return Resolve(mode, a)
}

// HostAppearance is an AppearanceSource whose value is pushed by the host,
// e.g. from a terminal command or an OS notification. The zero value
// reports "unknown".
type HostAppearance struct {
	v atomic.Value // Effective
}

// Set records the host appearance; an empty value means unknown.
func (h *HostAppearance) Set(a Effective) {
	h.v.Store(a)
}

func (h *HostAppearance) Appearance() (Effective, bool) {
	a, _ := h.v.Load().(Effective)
	if a != Light && a != Dark {
		return "", false
	}
	return a, true
}
