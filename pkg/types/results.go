package types

// Method records how a destination ended up populated
type Method string

const (
	MethodHardlink Method = "hardlink"
	MethodCopy     Method = "copy"
	MethodSymlink  Method = "symlink"
	// MethodNone means the fallback gave up and nothing was written
	MethodNone Method = "none"
	// MethodPlanned is used in dry runs
	MethodPlanned Method = "planned"
)

// Outcome describes one artifact processed by a command
type Outcome struct {
	Artifact    ArtifactRef `json:"artifact"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Method      Method      `json:"method,omitempty"`
	Reason      string      `json:"reason,omitempty"`
}

// Result is what a link command returns to the CLI layer
type Result struct {
	Command    string    `json:"command"`
	Linked     []Outcome `json:"linked"`
	Skipped    []Outcome `json:"skipped"`
	Unresolved []string  `json:"unresolved,omitempty"`
	DryRun     bool      `json:"dryRun"`
}

// NewResult creates an empty result for the named command
func NewResult(command string, dryRun bool) *Result {
	return &Result{
		Command: command,
		Linked:  []Outcome{},
		Skipped: []Outcome{},
		DryRun:  dryRun,
	}
}

// Total returns the number of artifacts the command looked at
func (r *Result) Total() int {
	return len(r.Linked) + len(r.Skipped) + len(r.Unresolved)
}
