// Package manifest loads the resolved artifact collection, the project's
// declared dependencies and explicit link items from a TOML or YAML file.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format of a manifest document
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrManifest, "unsupported manifest extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Manifest is the decoded, validated content of a manifest file
type Manifest struct {
	Artifacts []types.ArtifactRef
	Project   types.Project
	Items     []types.ArtifactItem
}

type coordinateEntry struct {
	Coordinate string `toml:"coordinate" yaml:"coordinate"`
	GroupID    string `toml:"group_id" yaml:"group_id"`
	ArtifactID string `toml:"artifact_id" yaml:"artifact_id"`
	Version    string `toml:"version" yaml:"version"`
	Type       string `toml:"type" yaml:"type"`
	Classifier string `toml:"classifier" yaml:"classifier"`
}

type artifactEntry struct {
	coordinateEntry `toml:",inline" yaml:",inline"`
	Scope           string `toml:"scope" yaml:"scope"`
	File            string `toml:"file" yaml:"file"`
	BaseVersion     string `toml:"base_version" yaml:"base_version"`
	Snapshot        *bool  `toml:"snapshot" yaml:"snapshot"`
}

type dependencyEntry struct {
	coordinateEntry `toml:",inline" yaml:",inline"`
	Scope           string `toml:"scope" yaml:"scope"`
	Optional        bool   `toml:"optional" yaml:"optional"`
}

type itemEntry struct {
	coordinateEntry `toml:",inline" yaml:",inline"`
	OutputDirectory string      `toml:"output_directory" yaml:"output_directory"`
	DestFileName    string      `toml:"dest_file_name" yaml:"dest_file_name"`
	Overwrite       interface{} `toml:"overwrite" yaml:"overwrite"`
}

type document struct {
	Artifacts            []artifactEntry   `toml:"artifacts" yaml:"artifacts"`
	Dependencies         []dependencyEntry `toml:"dependencies" yaml:"dependencies"`
	DependencyManagement []dependencyEntry `toml:"dependency_management" yaml:"dependency_management"`
	Items                []itemEntry       `toml:"items" yaml:"items"`
}

// Load reads the manifest at path. Relative artifact files are resolved
// against the manifest's directory.
func Load(fs types.FS, path string) (*Manifest, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifest, "failed to read manifest %s", path).
			WithDetail("path", path)
	}
	m, err := Parse(data, format, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifest, "invalid manifest %s", path).
			WithDetail("path", path)
	}
	return m, nil
}

// Parse decodes a manifest document
func Parse(data []byte, format Format, baseDir string) (*Manifest, error) {
	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, errors.Newf(errors.ErrManifest, "unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifest, "failed to decode %s manifest", format)
	}

	m := &Manifest{}
	for i, e := range doc.Artifacts {
		c, err := e.coordinate()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifest, "artifacts[%d]", i)
		}
		if c.Version == "" {
			return nil, errors.Newf(errors.ErrManifest, "artifacts[%d]: %s has no version", i, c.Key())
		}
		file := e.File
		if file != "" && !filepath.IsAbs(file) && baseDir != "" {
			file = filepath.Join(baseDir, file)
		}
		ref := types.NewArtifactRef(c, file, e.Scope)
		if e.BaseVersion != "" {
			ref.BaseVersion = e.BaseVersion
		}
		if e.Snapshot != nil {
			ref.Snapshot = *e.Snapshot
		}
		m.Artifacts = append(m.Artifacts, ref)
	}

	if m.Project.Dependencies, err = dependencies("dependencies", doc.Dependencies); err != nil {
		return nil, err
	}
	if m.Project.DependencyManagement, err = dependencies("dependency_management", doc.DependencyManagement); err != nil {
		return nil, err
	}

	for i, e := range doc.Items {
		c, err := e.coordinate()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifest, "items[%d]", i)
		}
		item, err := types.ItemFromCoordinate(c).
			OutputDirectory(e.OutputDirectory).
			DestFileName(e.DestFileName).
			Overwrite(overwriteOf(e.Overwrite)).
			Build()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifest, "items[%d]", i)
		}
		m.Items = append(m.Items, item)
	}

	return m, nil
}

func dependencies(section string, entries []dependencyEntry) ([]types.Dependency, error) {
	var deps []types.Dependency
	for i, e := range entries {
		c, err := e.coordinate()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifest, "%s[%d]", section, i)
		}
		deps = append(deps, types.Dependency{Coordinate: c, Scope: e.Scope, Optional: e.Optional})
	}
	return deps, nil
}

// coordinate builds the coordinate from the shorthand when present, with
// explicit fields taking precedence.
func (e coordinateEntry) coordinate() (types.Coordinate, error) {
	var c types.Coordinate
	if e.Coordinate != "" {
		parsed, err := types.ParseCoordinate(e.Coordinate)
		if err != nil {
			return c, err
		}
		c = parsed
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&c.GroupID, e.GroupID)
	override(&c.ArtifactID, e.ArtifactID)
	override(&c.Version, e.Version)
	override(&c.Type, e.Type)
	override(&c.Classifier, e.Classifier)

	if c.GroupID == "" || c.ArtifactID == "" {
		return c, errors.Config("entry needs group_id and artifact_id or a coordinate")
	}
	if c.Type == "" {
		c.Type = types.DefaultType
	}
	return c, nil
}

func overwriteOf(v interface{}) types.Overwrite {
	if v == nil {
		return types.OverwriteUnset
	}
	return types.ParseOverwrite(fmt.Sprint(v))
}
