package internal

import (
	stderrors "errors"
	"path/filepath"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/materialize"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Linker materializes artifacts for a command and records the outcomes
type Linker struct {
	engine        *materialize.Engine
	fs            types.FS
	dryRun        bool
	absoluteNames bool
	logger        zerolog.Logger
	result        *types.Result
}

// LinkerOptions configures a Linker
type LinkerOptions struct {
	FS       types.FS
	Fallback materialize.Strategy
	DryRun   bool
	// AbsoluteNames logs the absolute source path instead of the file name
	AbsoluteNames bool
	Logger        zerolog.Logger
}

// NewLinker creates a linker writing into result
func NewLinker(opts LinkerOptions, result *types.Result) *Linker {
	return &Linker{
		engine:        materialize.NewEngine(opts.FS, materialize.FallbackFor(opts.Fallback), opts.Logger),
		fs:            opts.FS,
		dryRun:        opts.DryRun,
		absoluteNames: opts.AbsoluteNames,
		logger:        opts.Logger,
		result:        result,
	}
}

// Link materializes a at dest. In a dry run only the source is checked.
func (l *Linker) Link(a types.ArtifactRef, dest string) error {
	outcome := types.Outcome{Artifact: a, Source: a.File, Destination: dest}

	if l.dryRun {
		if info, err := l.fs.Stat(a.File); err != nil || !info.Mode().IsRegular() {
			return errors.NotYetProduced(a.File).WithDetail("artifact", a.ID())
		}
		outcome.Method = types.MethodPlanned
		l.result.Linked = append(l.result.Linked, outcome)
		l.logger.Info().Str("artifact", a.ID()).Str("destination", dest).Msg("Would link")
		return nil
	}

	l.logger.Info().Msgf("Linking %s to %s", l.displayName(a.File), dest)
	method, err := l.engine.Materialize(a.File, dest)
	if err != nil {
		return withArtifact(err, a)
	}

	outcome.Method = method
	l.result.Linked = append(l.result.Linked, outcome)
	return nil
}

// Skip records an artifact whose destination is already satisfied
func (l *Linker) Skip(a types.ArtifactRef, dest, reason string) {
	l.result.Skipped = append(l.result.Skipped, types.Outcome{
		Artifact:    a,
		Source:      a.File,
		Destination: dest,
		Reason:      reason,
	})
}

// Exists reports whether path exists, following symlinks
func (l *Linker) Exists(path string) bool {
	_, err := l.fs.Stat(path)
	return err == nil
}

// withArtifact names the artifact on the first ArtlinkError in err's chain.
// Errors without one are returned unchanged.
func withArtifact(err error, a types.ArtifactRef) error {
	var artErr *errors.ArtlinkError
	if stderrors.As(err, &artErr) {
		artErr.WithDetail("artifact", a.ID())
	}
	return err
}

func (l *Linker) displayName(path string) string {
	if l.absoluteNames {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return filepath.Base(path)
}
