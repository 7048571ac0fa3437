package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/pterm/pterm"
)

// Status of a single destination in a result
type Status string

const (
	StatusLinked     Status = "linked"     // Destination written
	StatusPlanned    Status = "planned"    // Would be written (dry run)
	StatusSkipped    Status = "skipped"    // Destination up to date
	StatusFailed     Status = "failed"     // Fallback gave up
	StatusUnresolved Status = "unresolved" // Artifact could not be resolved
)

// MethodVerbs defines past and future tense verbs for each method
var MethodVerbs = map[types.Method]struct {
	Past   string
	Future string
}{
	types.MethodHardlink: {Past: "hard linked to", Future: "will be hard linked to"},
	types.MethodCopy:     {Past: "copied to", Future: "will be copied to"},
	types.MethodSymlink:  {Past: "symlinked at", Future: "will be symlinked at"},
	types.MethodPlanned:  {Past: "linked to", Future: "will be linked to"},
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusUnresolved:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeStatus classifies a linked outcome
func OutcomeStatus(o types.Outcome) Status {
	switch o.Method {
	case types.MethodPlanned:
		return StatusPlanned
	case types.MethodNone:
		return StatusFailed
	default:
		return StatusLinked
	}
}

// RenderOutcome renders a single linked outcome line
func RenderOutcome(o types.Outcome) string {
	status := OutcomeStatus(o)
	method := fmt.Sprintf("%-10s", o.Method)
	styledMethod := StatusStyle(status).Sprint(method)

	var verb string
	switch status {
	case StatusFailed:
		verb = "could not be placed at"
	case StatusPlanned:
		verb = MethodVerbs[types.MethodPlanned].Future
	default:
		verbs, ok := MethodVerbs[o.Method]
		if !ok {
			verbs = MethodVerbs[types.MethodPlanned]
		}
		verb = verbs.Past
	}
	msg := RenderTemplate("{{verb}} [path]{{dest}}[/path]", map[string]string{
		"verb": verb,
		"dest": o.Destination,
	})
	return fmt.Sprintf("    %s : %s : %s", styledMethod, o.Artifact.ID(), msg)
}

// RenderSkipped renders an up to date destination
func RenderSkipped(o types.Outcome) string {
	label := StatusStyle(StatusSkipped).Sprint(fmt.Sprintf("%-10s", StatusSkipped))
	reason := o.Reason
	if reason == "" {
		reason = "up to date"
	}
	return fmt.Sprintf("    %s : %s : %s", label, o.Artifact.ID(), MutedStyle.Render(reason))
}

// RenderResult renders a complete command result
func RenderResult(r *types.Result) string {
	var result strings.Builder

	header := r.Command + ":"
	if r.DryRun {
		header += " (dry run)"
	}
	result.WriteString(SubtitleStyle.Render(header) + "\n")

	if r.Total() == 0 && len(r.Unresolved) == 0 {
		result.WriteString(Indent(MutedStyle.Render("nothing to link"), 2) + "\n")
		return strings.TrimRight(result.String(), "\n")
	}

	for _, o := range r.Linked {
		result.WriteString(RenderOutcome(o) + "\n")
	}
	for _, o := range r.Skipped {
		result.WriteString(RenderSkipped(o) + "\n")
	}
	for _, u := range r.Unresolved {
		label := StatusStyle(StatusUnresolved).Sprint(fmt.Sprintf("%-10s", StatusUnresolved))
		result.WriteString(fmt.Sprintf("    %s : %s\n", label, u))
	}

	result.WriteString("\n" + Summary(r))
	return strings.TrimRight(result.String(), "\n")
}

// Summary counts the outcomes of a result in one line
func Summary(r *types.Result) string {
	verb := "linked"
	if r.DryRun {
		verb = "planned"
	}
	parts := []string{fmt.Sprintf("%d %s", len(r.Linked), verb)}
	if len(r.Skipped) > 0 {
		parts = append(parts, fmt.Sprintf("%d up to date", len(r.Skipped)))
	}
	if len(r.Unresolved) > 0 {
		parts = append(parts, fmt.Sprintf("%d unresolved", len(r.Unresolved)))
	}
	return strings.Join(parts, ", ")
}
