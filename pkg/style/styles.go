package style

import (
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Text styles
var (
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true)
)

// Method styles
var (
	HardlinkStyle = lipgloss.NewStyle().
			Foreground(HardlinkColor).
			Bold(true)

	CopyStyle = lipgloss.NewStyle().
			Foreground(CopyColor).
			Bold(true)

	SymlinkStyle = lipgloss.NewStyle().
			Foreground(SymlinkColor).
			Bold(true)

	PlannedStyle = lipgloss.NewStyle().
			Foreground(PlannedColor)
)

var linkMethods = []types.Method{
	types.MethodHardlink,
	types.MethodCopy,
	types.MethodSymlink,
	types.MethodPlanned,
}

// MethodStyle returns the style used to print a materialization method
func MethodStyle(m types.Method) lipgloss.Style {
	switch m {
	case types.MethodHardlink:
		return HardlinkStyle
	case types.MethodCopy:
		return CopyStyle
	case types.MethodSymlink:
		return SymlinkStyle
	case types.MethodPlanned:
		return PlannedStyle
	default:
		return MutedStyle
	}
}

// Indent pads s by level steps of two spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
