package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Every color adapts to light and dark terminals.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#F5F7FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#9AA5B1"}
	// AccentColor marks file system paths
	AccentColor  = lipgloss.AdaptiveColor{Light: "#3E4C59", Dark: "#CBD2D9"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#CF1124", Dark: "#FF7A85"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B44D12", Dark: "#F7C948"}
)

// One color per way a destination can be populated
var (
	HardlinkColor = lipgloss.AdaptiveColor{Light: "#0C6B58", Dark: "#3EBD93"}
	CopyColor     = lipgloss.AdaptiveColor{Light: "#B44D12", Dark: "#F0B429"}
	SymlinkColor  = lipgloss.AdaptiveColor{Light: "#0B69A3", Dark: "#47A3F3"}
	PlannedColor  = lipgloss.AdaptiveColor{Light: "#6930C3", Dark: "#B990FF"}
)
