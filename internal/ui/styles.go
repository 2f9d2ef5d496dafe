package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorBlue    = lipgloss.Color("#5F87FF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	RecordingDotStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)

	IdleDotStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ProcessingStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	ScoreBoxStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	QuestionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	QuestionItemStyle = lipgloss.NewStyle().
				Foreground(ColorCyan)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	PanelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	ReportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGreen)
)
