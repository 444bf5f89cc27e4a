// Package theme provides the shared color themes and pre-configured lipgloss
// styles for quicknav's terminal UI, including resolution of the named color
// tokens used by editor decorations.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/quicknav/config"
)

const defaultThemeName = "nord"

// --- Nord palette ---
const (
	nordGreen              = "#A3BE8C"
	nordYellow             = "#EBCB8B"
	nordRed                = "#BF616A"
	nordOrange             = "#D08770"
	nordCyan               = "#88C0D0"
	nordBlue               = "#81A1C1"
	nordViolet             = "#B48EAD"
	nordLightText          = "#ECEFF4"
	nordMutedText          = "#616E88"
	nordBorder             = "#434C5E"
	nordSelectedBackground = "#3B4252"
	nordSubtleBackground   = "#2E3440"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
	terminalSubtleBackground   = "0"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds pre-configured styles for quicknav UIs.
type Theme struct {
	Colors Colors

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text hierarchy
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Picker styles
	Selected    lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Separator   lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"nord":     newNordColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"nord-dark": "nord",
	"ansi":      "terminal",
}

// DefaultTheme is the theme instance selected for the current environment.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return newThemeFromColors(resolveThemeColors(getThemeName()))
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	return newThemeFromColors(resolveThemeColors(name))
}

// ResolveColor maps a named decoration color token to a concrete terminal
// color of the active theme. Unknown tokens resolve to the highlight color.
func (t *Theme) ResolveColor(token string) lipgloss.TerminalColor {
	switch token {
	case "overviewRuler.rangeHighlight":
		return t.Colors.Yellow
	case "rangeHighlight":
		return t.Colors.SelectedBackground
	default:
		return t.Colors.Orange
	}
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Input: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(colors.Border),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveThemeColors(name string) Colors {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if builder, ok := themeRegistry[key]; ok {
		return builder()
	}
	return themeRegistry[defaultThemeName]()
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("QUICKNAV_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.Theme); theme != "" {
		return theme
	}

	return defaultThemeName
}

func newNordColors() Colors {
	return Colors{
		Green:              lipgloss.Color(nordGreen),
		Yellow:             lipgloss.Color(nordYellow),
		Red:                lipgloss.Color(nordRed),
		Orange:             lipgloss.Color(nordOrange),
		Cyan:               lipgloss.Color(nordCyan),
		Blue:               lipgloss.Color(nordBlue),
		Violet:             lipgloss.Color(nordViolet),
		LightText:          lipgloss.Color(nordLightText),
		MutedText:          lipgloss.Color(nordMutedText),
		Border:             lipgloss.Color(nordBorder),
		SelectedBackground: lipgloss.Color(nordSelectedBackground),
		SubtleBackground:   lipgloss.Color(nordSubtleBackground),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:   lipgloss.Color(terminalSubtleBackground),
	}
}
