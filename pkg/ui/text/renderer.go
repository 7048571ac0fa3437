// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/artlink/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Result:
		return r.renderResult(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// renderResult writes one tab separated line per outcome
func (r *Renderer) renderResult(res *types.Result) error {
	for _, o := range res.Linked {
		if _, err := fmt.Fprintf(r.output, "%s\t%s\t%s\n", o.Method, o.Artifact.ID(), o.Destination); err != nil {
			return err
		}
	}
	for _, o := range res.Skipped {
		if _, err := fmt.Fprintf(r.output, "skipped\t%s\t%s\n", o.Artifact.ID(), o.Destination); err != nil {
			return err
		}
	}
	for _, u := range res.Unresolved {
		if _, err := fmt.Fprintf(r.output, "unresolved\t%s\n", u); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
