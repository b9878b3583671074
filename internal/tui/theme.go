package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

const (
	displayWidth = 27
	buttonWidth  = 5
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	metaStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	memoryStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)

	displayStyle = lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Foreground(colorText)
	displayErrorStyle = displayStyle.
				BorderForeground(colorError).
				Foreground(colorError)

	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Foreground(colorText).
			Background(colorSurface0)
	operatorButtonStyle = buttonStyle.Foreground(colorBlue)
	memoryButtonStyle   = buttonStyle.Foreground(colorPeach)
	pressedButtonStyle  = buttonStyle.Bold(true).Foreground(colorSurface0).Background(colorFocus)

	toastErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	toastInfoStyle  = lipgloss.NewStyle().Foreground(colorInfo)

	historyTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	historyStyle       = lipgloss.NewStyle().Foreground(colorSubtext0)
	historyErrorStyle  = lipgloss.NewStyle().Foreground(colorError)
	historyBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorSurface1).
				PaddingLeft(1).
				MarginLeft(2)
	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)
