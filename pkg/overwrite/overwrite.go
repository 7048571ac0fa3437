// Package overwrite decides whether an artifact's destination has to be
// (re)written or can be left alone.
package overwrite

import (
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// Reasons reported with a Decision
const (
	ReasonForced    = "overwrite requested for this artifact"
	ReasonMissing   = "destination does not exist"
	ReasonSnapshots = "snapshots are always overwritten"
	ReasonReleases  = "releases are always overwritten"
	ReasonNewer     = "source is newer than destination"
	ReasonUpToDate  = "already exists in destination"
)

// Flags are the global overwrite switches
type Flags struct {
	Releases  bool
	Snapshots bool
	IfNewer   bool
}

// Decision is the outcome of evaluating the policy for one artifact
type Decision struct {
	Materialize bool
	Reason      string
}

// Policy evaluates Flags against the state of the filesystem
type Policy struct {
	flags  Flags
	fs     types.FS
	logger zerolog.Logger
}

// NewPolicy creates a policy
func NewPolicy(fs types.FS, flags Flags, logger zerolog.Logger) *Policy {
	return &Policy{flags: flags, fs: fs, logger: logger}
}

// Flags returns the switches the policy was built with
func (p *Policy) Flags() Flags {
	return p.flags
}

// Decide evaluates, in order: the explicit per-artifact override, a missing
// destination, the snapshot and release switches, and finally the
// if-newer comparison of modification times.
func (p *Policy) Decide(a types.ArtifactRef, dest string, explicit types.Overwrite) Decision {
	d := p.decide(a, dest, explicit)
	p.logger.Trace().
		Str("artifact", a.ID()).
		Str("destination", dest).
		Bool("materialize", d.Materialize).
		Str("reason", d.Reason).
		Msg("Overwrite decision")
	return d
}

// NeedsMaterialization is Decide without the reason
func (p *Policy) NeedsMaterialization(a types.ArtifactRef, dest string, explicit types.Overwrite) bool {
	return p.Decide(a, dest, explicit).Materialize
}

func (p *Policy) decide(a types.ArtifactRef, dest string, explicit types.Overwrite) Decision {
	if explicit.Forced() {
		return Decision{Materialize: true, Reason: ReasonForced}
	}

	destInfo, err := p.fs.Stat(dest)
	if err != nil {
		return Decision{Materialize: true, Reason: ReasonMissing}
	}

	if a.Snapshot && p.flags.Snapshots {
		return Decision{Materialize: true, Reason: ReasonSnapshots}
	}
	if !a.Snapshot && p.flags.Releases {
		return Decision{Materialize: true, Reason: ReasonReleases}
	}

	if p.flags.IfNewer && a.File != "" {
		// an unreadable source is never newer; materialization reports it
		if srcInfo, err := p.fs.Stat(a.File); err == nil && srcInfo.ModTime().After(destInfo.ModTime()) {
			return Decision{Materialize: true, Reason: ReasonNewer}
		}
	}

	return Decision{Materialize: false, Reason: ReasonUpToDate}
}
