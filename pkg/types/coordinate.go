package types

import (
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
)

// DefaultType is the packaging assumed when none is given
const DefaultType = "jar"

// Coordinate identifies an artifact. An empty Classifier means the artifact
// has no classifier.
type Coordinate struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
	Classifier string `json:"classifier,omitempty"`
	Type       string `json:"type"`
}

// TypeOrDefault returns the coordinate type, falling back to jar
func (c Coordinate) TypeOrDefault() string {
	if c.Type == "" {
		return DefaultType
	}
	return c.Type
}

// Extension returns the file extension for the coordinate's type
func (c Coordinate) Extension() string {
	return HandlerFor(c.TypeOrDefault()).Extension
}

// MatchesExact compares groupId, artifactId, classifier and type
func (c Coordinate) MatchesExact(o Coordinate) bool {
	return c.MatchesLoose(o) &&
		c.Classifier == o.Classifier &&
		c.TypeOrDefault() == o.TypeOrDefault()
}

// MatchesLoose compares groupId and artifactId only
func (c Coordinate) MatchesLoose(o Coordinate) bool {
	return c.GroupID == o.GroupID && c.ArtifactID == o.ArtifactID
}

// Key is the identity used for filtering: groupId:artifactId
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String renders groupId:artifactId:type[:classifier]:version
func (c Coordinate) String() string {
	var b strings.Builder
	b.WriteString(c.GroupID)
	b.WriteByte(':')
	b.WriteString(c.ArtifactID)
	b.WriteByte(':')
	b.WriteString(c.TypeOrDefault())
	if c.Classifier != "" {
		b.WriteByte(':')
		b.WriteString(c.Classifier)
	}
	b.WriteByte(':')
	b.WriteString(c.Version)
	return b.String()
}

// ParseCoordinate parses groupId:artifactId:version[:type[:classifier]].
// Empty tokens are skipped, so "g::a:v" reads as three tokens.
func ParseCoordinate(s string) (Coordinate, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == ':' })
	if len(tokens) < 3 || len(tokens) > 5 {
		return Coordinate{}, errors.Config(
			"invalid artifact, you must specify groupId:artifactId:version[:packaging[:classifier]] %s", s).
			WithDetail("artifact", s)
	}

	c := Coordinate{
		GroupID:    tokens[0],
		ArtifactID: tokens[1],
		Version:    tokens[2],
		Type:       DefaultType,
	}
	if len(tokens) >= 4 {
		c.Type = tokens[3]
	}
	if len(tokens) == 5 {
		c.Classifier = tokens[4]
	}
	return c, nil
}
