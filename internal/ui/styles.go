package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for viewport dimensions
const (
	MinViewportWidth = 100
	MaxViewportWidth = 140
	DefaultWidth     = 100 // Used when terminal size is unknown
	DefaultHeight    = 30
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // raw terminal height
	TableWidth     int // sum of column widths + separators
	InnerWidth     int // width for content inside borders
}

// NewLayout creates a Layout from the terminal size, clamping the width
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: terminalHeight,
		TableWidth:     width - 4, // minus border + padding
		InnerWidth:     width - 2, // minus border chars
	}
}

// DefaultLayout returns a layout using the default dimensions
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Column widths for the listings table. Title and Company flex with the
// viewport; the rest are fixed.
const (
	ColWidthSalary   = 22
	ColWidthLocation = 16
	ColWidthPosted   = 14
	ColWidthSource   = 10
	// 5 column separators at 2 spaces each
	colSeparators = 10
)

// BuildListingColumns creates the listing table columns sized for tableWidth
func BuildListingColumns(tableWidth int) []table.Column {
	fixed := ColWidthSalary + ColWidthLocation + ColWidthPosted + ColWidthSource + colSeparators
	flex := tableWidth - fixed
	if flex < 30 {
		flex = 30
	}
	titleW := flex * 3 / 5
	companyW := flex - titleW
	return []table.Column{
		{Title: "Title", Width: titleW},
		{Title: "Company", Width: companyW},
		{Title: "Location", Width: ColWidthLocation},
		{Title: "Salary", Width: ColWidthSalary},
		{Title: "Posted", Width: ColWidthPosted},
		{Title: "Source", Width: ColWidthSource},
	}
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("36")  // teal
	ColorHighlight = lipgloss.Color("23")  // dark teal background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("214") // orange
	ColorError     = lipgloss.Color("196") // red
	ColorTextDim   = lipgloss.Color("241") // gray
)

// Common styles - reusable style definitions
var (
	// Border style for the main viewport box
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Dim style for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Accent style for highlighted text (query summary, page counter)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Error banner style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Estimated-salary marker style
	EstimateStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// RenderTitle renders a bold title line
func RenderTitle(s string) string { return TitleStyle.Render(s) }

// RenderDim renders dimmed secondary text
func RenderDim(s string) string { return DimStyle.Render(s) }

// RenderError renders an error line
func RenderError(s string) string { return ErrorStyle.Render(s) }

// ViewHeader renders title + full-width divider + spacing.
// Use at the start of View() content to keep headers consistent.
func ViewHeader(title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// CenterText centers text within the given width
func CenterText(text string, width int) string {
	textW := lipgloss.Width(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// BuildTwoBoxView constructs the standard layout: a bordered main box over
// a one-row bordered footer with centered help text.
//
//	┌────────────────────────┐
//	│ Main content           │
//	└────────────────────────┘
//	┌────────────────────────┐
//	│   Centered help text   │
//	└────────────────────────┘
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainBox := BorderStyle.
		Width(layout.InnerWidth).
		Padding(0, 1).
		Render(content)

	helpBox := BorderStyle.
		Width(layout.InnerWidth).
		Render(CenterText(DimStyle.Render(helpText), layout.InnerWidth))

	return mainBox + "\n" + helpBox
}

// ApplyTableStyles applies the standard listing-table styles for a
// consistent look and proper selection highlighting
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorText)
	s.Selected = SelectedStyle
	s.Cell = s.Cell.Foreground(ColorText)
	t.SetStyles(s)
}

// NewAppSpinner returns the standard loading spinner
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// NewAppTheme creates a huh theme matching the app's style guide:
// white text, teal highlights
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)
	t.Blurred.Base = lipgloss.NewStyle().
		Foreground(ColorText).
		PaddingLeft(2)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}
