package cli

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/theme"
)

// detectAppearance guesses the terminal background from COLORFGBG
// ("fg;bg", set by rxvt, Konsole and others). Unknown yields "".
func detectAppearance(getenv func(string) string) theme.Effective {
	v := getenv("COLORFGBG")
	if v == "" {
		return ""
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return ""
	}
	switch {
	case bg == 7 || bg == 15:
		return theme.Light
	case bg >= 0 && bg <= 8:
		return theme.Dark
	default:
		return ""
	}
}
