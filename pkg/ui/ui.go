// Package ui renders command results as styled terminal output, plain text
// or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/ui/json"
	"github.com/arthur-debert/artlink/pkg/ui/terminal"
	"github.com/arthur-debert/artlink/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderResult prints a *types.Result; other values are printed as-is
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format. Auto inspects output when it
// is a file and falls back to the terminal renderer otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if f, ok := output.(fdWriter); ok {
			return NewRenderer(DetectFormat(f), output)
		}
		return terminal.New(output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Config("unknown format: %s", format).WithDetail("format", string(format))
	}
}
