// Package theme holds the light and dark board themes, their lipgloss
// styles and the persisted theme preference.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the display theme of the board.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is the theme used when nothing is configured or stored.
const Default = Dark

// Parse converts s to a Theme. Case and surrounding space are ignored.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return Default, fmt.Errorf("unknown theme %q: must be light or dark", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}
