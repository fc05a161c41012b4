package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme paints with.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Column     lipgloss.Color
	Card       lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

// Notice colors are shared by both themes.
var (
	SuccessColor = lipgloss.Color("#22c55e")
	InfoColor    = lipgloss.Color("#3b82f6")
	WarningColor = lipgloss.Color("#eab308")
	ErrorColor   = lipgloss.Color("#ef4444")
)

// LightPalette returns the light theme colors.
func LightPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#111827"),
		Column:     lipgloss.Color("#f3f4f6"),
		Card:       lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#e5e7eb"),
		Accent:     lipgloss.Color("#3b82f6"),
		Muted:      lipgloss.Color("#6b7280"),
	}
}

// DarkPalette returns the dark theme colors.
func DarkPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#111827"),
		Foreground: lipgloss.Color("#f9fafb"),
		Column:     lipgloss.Color("#1f2937"),
		Card:       lipgloss.Color("#374151"),
		Border:     lipgloss.Color("#4b5563"),
		Accent:     lipgloss.Color("#60a5fa"),
		Muted:      lipgloss.Color("#9ca3af"),
	}
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return LightPalette()
	}
	return DarkPalette()
}

// Styles holds the lipgloss styles used to draw the board.
type Styles struct {
	Theme   Theme
	Palette Palette

	Header       lipgloss.Style
	Column       lipgloss.Style
	ColumnTitle  lipgloss.Style
	Card         lipgloss.Style
	CardCursor   lipgloss.Style
	CardDragging lipgloss.Style
	DropTarget   lipgloss.Style
	Empty        lipgloss.Style
	Help         lipgloss.Style

	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the styles for t. width is the outer width of a column.
func NewStyles(t Theme, width int) Styles {
	p := PaletteFor(t)
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	card := lipgloss.NewStyle().
		Width(inner).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Foreground).
		Background(p.Card)

	return Styles{
		Theme:   t,
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true).
			MarginBottom(1),

		Column: lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Background(p.Column),

		ColumnTitle: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true).
			MarginBottom(1),

		Card: card,

		CardCursor: card.
			BorderForeground(p.Accent),

		CardDragging: card.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Bold(true),

		DropTarget: lipgloss.NewStyle().
			Width(inner).
			Foreground(p.Accent).
			Align(lipgloss.Center),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().Foreground(SuccessColor),
		Info:    lipgloss.NewStyle().Foreground(InfoColor),
		Warning: lipgloss.NewStyle().Foreground(WarningColor),
		Error:   lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	}
}
