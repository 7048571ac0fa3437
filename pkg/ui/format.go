package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are printed
type Format string

const (
	// FormatAuto picks terminal or text depending on where output goes
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the accepted --format values
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat reads a --format value, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return FormatAuto, errors.Config("unknown format: %s", s).WithDetail("format", s)
}

// fdWriter is satisfied by *os.File
type fdWriter interface {
	Fd() uintptr
}

// DetectFormat resolves auto for an output stream. Piped output, NO_COLOR
// and ascii-only terminals get plain text.
func DetectFormat(out fdWriter) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := out.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
