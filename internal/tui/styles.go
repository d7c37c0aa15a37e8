package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the Saya palette.
const (
	primaryColor = "#10B981" // Green, the assistant
	userColor    = "#3B82F6" // Blue, the user
	warningColor = "#F59E0B" // Amber
	errorColor   = "#EF4444" // Red
	dimColor     = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box in the assistant color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders section titles and headers.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights the selected option.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// UserStyle renders the user's own messages.
	UserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(userColor)).
			Bold(true)

	// BotStyle renders the assistant message prefix.
	BotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning text in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor)).
			Bold(true)

	// WarningBoxStyle wraps a safety-warning section in an alert border.
	WarningBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(errorColor)).
			PaddingLeft(1)

	// BoldStyle and ItalicStyle realize inline emphasis spans.
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	ItalicStyle = lipgloss.NewStyle().Italic(true)

	// InlineCodeStyle renders backtick spans.
	InlineCodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB")).
			Background(lipgloss.Color("#374151"))

	// CodeBlockStyle renders fenced code verbatim.
	CodeBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	// TableHeaderStyle renders table header cells.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true)
)
