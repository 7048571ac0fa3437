// Package pom reads the parts of a project object model that artifact
// linking needs: the project coordinate, its parent, properties, declared
// dependencies and dependency management.
package pom

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/beevik/etree"
)

// maxInterpolationDepth bounds nested ${...} expansion
const maxInterpolationDepth = 10

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// Model is a parsed pom.xml
type Model struct {
	Coordinate           types.Coordinate
	Parent               *types.Coordinate
	Properties           map[string]string
	Dependencies         []types.Dependency
	DependencyManagement []types.Dependency
}

// Project returns the declared dependency metadata
func (m *Model) Project() types.Project {
	return types.Project{
		Coordinate:           m.Coordinate,
		Dependencies:         m.Dependencies,
		DependencyManagement: m.DependencyManagement,
	}
}

// ReadFile parses the pom at path
func ReadFile(fs types.FS, path string) (*Model, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPom, "failed to read %s", path).
			WithDetail("path", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPom, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return m, nil
}

// Parse reads a pom document. The groupId and version are inherited from
// the parent when the project does not declare them, and ${...} references
// are expanded from <properties> and the project.* values.
func Parse(data []byte) (*Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrPom, "invalid XML")
	}
	root := doc.Root()
	if root == nil || root.Tag != "project" {
		return nil, errors.New(errors.ErrPom, "missing <project> root element")
	}

	m := &Model{Properties: map[string]string{}}
	m.Coordinate = types.Coordinate{
		GroupID:    childText(root, "groupId"),
		ArtifactID: childText(root, "artifactId"),
		Version:    childText(root, "version"),
		Type:       childText(root, "packaging"),
	}
	if m.Coordinate.Type == "" {
		m.Coordinate.Type = types.DefaultType
	}

	if parent := root.SelectElement("parent"); parent != nil {
		p := types.Coordinate{
			GroupID:    childText(parent, "groupId"),
			ArtifactID: childText(parent, "artifactId"),
			Version:    childText(parent, "version"),
			Type:       "pom",
		}
		m.Parent = &p
		if m.Coordinate.GroupID == "" {
			m.Coordinate.GroupID = p.GroupID
		}
		if m.Coordinate.Version == "" {
			m.Coordinate.Version = p.Version
		}
	}

	if props := root.SelectElement("properties"); props != nil {
		for _, el := range props.ChildElements() {
			m.Properties[el.Tag] = strings.TrimSpace(el.Text())
		}
	}
	m.addProjectProperties()

	m.Dependencies = readDependencies(root.SelectElement("dependencies"))
	if mgmt := root.SelectElement("dependencyManagement"); mgmt != nil {
		m.DependencyManagement = readDependencies(mgmt.SelectElement("dependencies"))
	}

	m.interpolate()
	return m, nil
}

func (m *Model) addProjectProperties() {
	set := func(key, value string) {
		if value == "" {
			return
		}
		m.Properties["project."+key] = value
		m.Properties["pom."+key] = value
	}
	set("groupId", m.Coordinate.GroupID)
	set("artifactId", m.Coordinate.ArtifactID)
	set("version", m.Coordinate.Version)
	if m.Parent != nil {
		set("parent.groupId", m.Parent.GroupID)
		set("parent.artifactId", m.Parent.ArtifactID)
		set("parent.version", m.Parent.Version)
	}
}

func readDependencies(el *etree.Element) []types.Dependency {
	if el == nil {
		return nil
	}
	var deps []types.Dependency
	for _, d := range el.SelectElements("dependency") {
		deps = append(deps, types.Dependency{
			Coordinate: types.Coordinate{
				GroupID:    childText(d, "groupId"),
				ArtifactID: childText(d, "artifactId"),
				Version:    childText(d, "version"),
				Classifier: childText(d, "classifier"),
				Type:       childText(d, "type"),
			},
			Scope:    childText(d, "scope"),
			Optional: strings.EqualFold(childText(d, "optional"), "true"),
		})
	}
	return deps
}

func (m *Model) interpolate() {
	m.Coordinate = m.expandCoordinate(m.Coordinate)
	if m.Parent != nil {
		p := m.expandCoordinate(*m.Parent)
		m.Parent = &p
	}
	for i := range m.Dependencies {
		m.expandDependency(&m.Dependencies[i])
	}
	for i := range m.DependencyManagement {
		m.expandDependency(&m.DependencyManagement[i])
	}
}

func (m *Model) expandDependency(d *types.Dependency) {
	d.Coordinate = m.expandCoordinate(d.Coordinate)
	d.Scope = m.Expand(d.Scope)
}

func (m *Model) expandCoordinate(c types.Coordinate) types.Coordinate {
	c.GroupID = m.Expand(c.GroupID)
	c.ArtifactID = m.Expand(c.ArtifactID)
	c.Version = m.Expand(c.Version)
	c.Classifier = m.Expand(c.Classifier)
	c.Type = m.Expand(c.Type)
	return c
}

// Expand replaces ${name} references with property values. Unknown
// references are left as they are.
func (m *Model) Expand(s string) string {
	for i := 0; i < maxInterpolationDepth && strings.Contains(s, "${"); i++ {
		next := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
			if v, ok := m.Properties[ref[2:len(ref)-1]]; ok {
				return v
			}
			return ref
		})
		if next == s {
			break
		}
		s = next
	}
	return s
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
