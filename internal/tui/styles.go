package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to what the two screens use.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(colorBase).Background(colorBrand).Bold(true).Padding(0, 1)
	routeStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	headingStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	bodyStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	labelStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	promptStyle      = lipgloss.NewStyle().Foreground(colorFocus)
	buttonStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 3)
	buttonFocusStyle = buttonStyle.Foreground(colorBase).Background(colorFocus).Bold(true)
	statusOKStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(1, 3)
)
