// Package layout computes where an artifact is materialized. Everything here
// is a pure function of the artifact and the flags; nothing touches disk.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/artlink/pkg/types"
)

// NameOptions controls the destination file name
type NameOptions struct {
	StripVersion    bool
	StripClassifier bool
	PrependGroupID  bool
	UseBaseVersion  bool
}

// DirOptions controls the destination directory below the output root
type DirOptions struct {
	PerScope         bool
	PerType          bool
	PerArtifact      bool
	RepositoryLayout bool
	StripVersion     bool
	StripType        bool
}

// FileName renders [groupId-]artifactId[-version][-classifier].extension
func FileName(a types.ArtifactRef, opts NameOptions) string {
	var b strings.Builder
	if opts.PrependGroupID {
		b.WriteString(a.GroupID)
		b.WriteByte('-')
	}
	b.WriteString(a.ArtifactID)
	if !opts.StripVersion {
		version := a.Version
		if opts.UseBaseVersion {
			version = a.Base()
		}
		b.WriteByte('-')
		b.WriteString(version)
	}
	if !opts.StripClassifier && a.Classifier != "" {
		b.WriteByte('-')
		b.WriteString(a.Classifier)
	}
	b.WriteByte('.')
	b.WriteString(a.Extension())
	return b.String()
}

// RepositoryFileName is the file name used inside a repository layout:
// artifactId-version[-classifier].extension, with the base version when
// useBaseVersion is set.
func RepositoryFileName(a types.ArtifactRef, useBaseVersion bool) string {
	return FileName(a, NameOptions{UseBaseVersion: useBaseVersion})
}

// OutputDir returns the directory an artifact belongs in. A repository layout
// takes precedence over the per-scope, per-type and per-artifact
// subdirectories, which nest in that order.
func OutputDir(root string, a types.ArtifactRef, opts DirOptions) string {
	if opts.RepositoryLayout {
		return RepositoryDir(root, a)
	}

	parts := []string{root}
	if opts.PerScope {
		parts = append(parts, scopeOf(a))
	}
	if opts.PerType {
		parts = append(parts, a.TypeOrDefault()+"s")
	}
	if opts.PerArtifact {
		parts = append(parts, ArtifactDirName(a, opts.StripVersion, opts.StripType))
	}
	return filepath.Join(parts...)
}

// RepositoryDir returns root/group/path/artifactId/baseVersion
func RepositoryDir(root string, a types.ArtifactRef) string {
	groupPath := strings.ReplaceAll(a.GroupID, ".", string(filepath.Separator))
	return filepath.Join(root, groupPath, a.ArtifactID, a.Base())
}

// ArtifactDirName renders artifactId[-version][-classifier][-type]. The type
// is left out when it repeats the classifier.
func ArtifactDirName(a types.ArtifactRef, stripVersion, stripType bool) string {
	var b strings.Builder
	b.WriteString(a.ArtifactID)
	if !stripVersion {
		b.WriteByte('-')
		b.WriteString(a.Version)
	}
	if a.Classifier != "" {
		b.WriteByte('-')
		b.WriteString(a.Classifier)
	}
	if !stripType && a.Classifier != a.TypeOrDefault() {
		b.WriteByte('-')
		b.WriteString(a.TypeOrDefault())
	}
	return b.String()
}

func scopeOf(a types.ArtifactRef) string {
	if a.Scope == "" {
		return types.ScopeCompile
	}
	return a.Scope
}
