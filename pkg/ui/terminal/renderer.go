// Package terminal renders results with lipgloss styles and pterm prefixes
package terminal

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/style"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss and pterm styling
type Renderer struct {
	output io.Writer
	info   pterm.PrefixPrinter
	fail   pterm.PrefixPrinter
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		info:   *pterm.Info.WithWriter(w),
		fail:   *pterm.Error.WithWriter(w),
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Result:
		_, err := fmt.Fprintln(r.output, style.RenderResult(v))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	r.fail.Println(err.Error())
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		line := style.MutedStyle.Render(fmt.Sprintf("%s: %v", key, details[key]))
		if _, werr := fmt.Fprintln(r.output, style.Indent(line, 2)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	r.info.Println(style.Render(msg))
	return nil
}
