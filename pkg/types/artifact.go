package types

import (
	"regexp"
	"strings"
)

// SnapshotSuffix marks an unqualified snapshot version
const SnapshotSuffix = "SNAPSHOT"

// timestamped snapshot versions look like 1.0-20240101.120000-3
var snapshotTimestamp = regexp.MustCompile(`^(.*)-(\d{8}\.\d{6})-(\d+)$`)

// Scopes understood by the scope filter
const (
	ScopeCompile  = "compile"
	ScopeProvided = "provided"
	ScopeRuntime  = "runtime"
	ScopeTest     = "test"
	ScopeSystem   = "system"
)

// ArtifactRef is a resolved artifact: a coordinate backed by a file on disk.
// It is owned by whoever resolved it; the pipeline only reads it.
type ArtifactRef struct {
	Coordinate
	File        string `json:"file"`
	Scope       string `json:"scope,omitempty"`
	Snapshot    bool   `json:"snapshot"`
	BaseVersion string `json:"baseVersion"`
}

// NewArtifactRef builds a reference, deriving the snapshot flag and base
// version from the coordinate's version.
func NewArtifactRef(c Coordinate, file, scope string) ArtifactRef {
	return ArtifactRef{
		Coordinate:  c,
		File:        file,
		Scope:       scope,
		Snapshot:    IsSnapshotVersion(c.Version),
		BaseVersion: BaseVersionOf(c.Version),
	}
}

// Base returns the base version, which equals the version for releases
func (a ArtifactRef) Base() string {
	if a.BaseVersion == "" {
		return BaseVersionOf(a.Version)
	}
	return a.BaseVersion
}

// ID renders the artifact the way log lines refer to it
func (a ArtifactRef) ID() string {
	return a.Coordinate.String()
}

// IsSnapshotVersion reports whether a version is a snapshot, either
// unqualified (-SNAPSHOT) or timestamped.
func IsSnapshotVersion(version string) bool {
	if strings.HasSuffix(version, SnapshotSuffix) {
		return true
	}
	return snapshotTimestamp.MatchString(version)
}

// BaseVersionOf converts a timestamped snapshot version to its -SNAPSHOT
// form. Other versions are returned unchanged.
func BaseVersionOf(version string) string {
	if m := snapshotTimestamp.FindStringSubmatch(version); m != nil {
		return m[1] + "-" + SnapshotSuffix
	}
	return version
}
