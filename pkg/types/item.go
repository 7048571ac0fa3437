package types

import (
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
)

// Overwrite is the per-item overwrite override
type Overwrite int

const (
	// OverwriteUnset defers to the global overwrite flags
	OverwriteUnset Overwrite = iota
	// OverwriteTrue forces materialization
	OverwriteTrue
	// OverwriteFalse is accepted for completeness; it behaves like unset
	OverwriteFalse
)

// ParseOverwrite maps the textual override onto the tri-state. Only "true"
// (any case) forces overwriting; "false" is recorded but, like any other
// value, leaves the decision to the global flags.
func ParseOverwrite(s string) Overwrite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return OverwriteTrue
	case "false":
		return OverwriteFalse
	default:
		return OverwriteUnset
	}
}

// String returns the textual form of the override
func (o Overwrite) String() string {
	switch o {
	case OverwriteTrue:
		return "true"
	case OverwriteFalse:
		return "false"
	default:
		return "unset"
	}
}

// Forced reports whether the item must be materialized regardless of the
// destination's state.
func (o Overwrite) Forced() bool {
	return o == OverwriteTrue
}

// ArtifactItem is an explicitly requested artifact. It is immutable once
// built; values computed while processing it live in ItemResolution.
type ArtifactItem struct {
	coordinate      Coordinate
	outputDirectory string
	destFileName    string
	overwrite       Overwrite
}

func (i ArtifactItem) Coordinate() Coordinate { return i.coordinate }
func (i ArtifactItem) OutputDirectory() string { return i.outputDirectory }
func (i ArtifactItem) DestFileName() string { return i.destFileName }
func (i ArtifactItem) Overwrite() Overwrite { return i.overwrite }
func (i ArtifactItem) HasVersion() bool { return i.coordinate.Version != "" }
func (i ArtifactItem) String() string { return i.coordinate.String() }

// WithVersion returns a copy of the item carrying the given version
func (i ArtifactItem) WithVersion(version string) ArtifactItem {
	i.coordinate.Version = version
	return i
}

// WithOutputDirectory returns a copy of the item with the output directory set
func (i ArtifactItem) WithOutputDirectory(dir string) ArtifactItem {
	i.outputDirectory = dir
	return i
}

// ItemBuilder assembles an ArtifactItem
type ItemBuilder struct {
	item ArtifactItem
}

// NewItemBuilder starts an item with the default jar type
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{item: ArtifactItem{coordinate: Coordinate{Type: DefaultType}}}
}

// ItemFromCoordinate starts a builder from an existing coordinate
func ItemFromCoordinate(c Coordinate) *ItemBuilder {
	b := NewItemBuilder()
	b.item.coordinate = c
	if c.Type == "" {
		b.item.coordinate.Type = DefaultType
	}
	return b
}

func (b *ItemBuilder) GroupID(v string) *ItemBuilder {
	b.item.coordinate.GroupID = v
	return b
}

func (b *ItemBuilder) ArtifactID(v string) *ItemBuilder {
	b.item.coordinate.ArtifactID = v
	return b
}

func (b *ItemBuilder) Version(v string) *ItemBuilder {
	b.item.coordinate.Version = v
	return b
}

func (b *ItemBuilder) Classifier(v string) *ItemBuilder {
	b.item.coordinate.Classifier = v
	return b
}

func (b *ItemBuilder) Type(v string) *ItemBuilder {
	if v == "" {
		v = DefaultType
	}
	b.item.coordinate.Type = v
	return b
}

func (b *ItemBuilder) OutputDirectory(v string) *ItemBuilder {
	b.item.outputDirectory = v
	return b
}

func (b *ItemBuilder) DestFileName(v string) *ItemBuilder {
	b.item.destFileName = v
	return b
}

func (b *ItemBuilder) Overwrite(v Overwrite) *ItemBuilder {
	b.item.overwrite = v
	return b
}

// Build validates and returns the item
func (b *ItemBuilder) Build() (ArtifactItem, error) {
	c := b.item.coordinate
	if c.GroupID == "" || c.ArtifactID == "" {
		return ArtifactItem{}, errors.Config("artifact item requires groupId and artifactId, got %q", c.Key())
	}
	return b.item, nil
}

// ParseArtifactItem parses the groupId:artifactId:version[:type[:classifier]]
// shorthand into an item.
func ParseArtifactItem(s string) (ArtifactItem, error) {
	c, err := ParseCoordinate(s)
	if err != nil {
		return ArtifactItem{}, err
	}
	return ItemFromCoordinate(c).Build()
}

// ItemResolution carries what processing an item produced
type ItemResolution struct {
	Item            ArtifactItem
	Artifact        ArtifactRef
	OutputDirectory string
	DestFileName    string
	NeedsProcessing bool
}
