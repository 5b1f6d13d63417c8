package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The dashboard must stay readable on both light and dark terminal
// backgrounds, so colors are lipgloss.AdaptiveColor and "faint" styling is
// only applied on dark backgrounds (faint on light terminals is illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorOK   lipgloss.TerminalColor = ac("28", "77")   // green
	colorWarn lipgloss.TerminalColor = ac("130", "214") // amber
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleTab(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(colorAccentFg).Background(colorAccent)
	}
	return lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
}

func styleFlash(warn bool) lipgloss.Style {
	c := colorOK
	if warn {
		c = colorWarn
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR, which is useful for plain CLI
// output but can accidentally strip a TUI of color; here we only honor
// NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference configures background detection. Some terminals don't
// report their background, which makes AdaptiveColor pick the wrong variant.
//
// Priority:
// 1) FOCUSDAY_TUI_THEME=light|dark|auto
// 2) FOCUSDAY_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic ("fg;bg", bg < 7 means dark)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("FOCUSDAY_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("FOCUSDAY_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
