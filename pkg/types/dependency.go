package types

// Dependency is a dependency declared by the consuming project, either in
// its dependency list or in its dependency management section.
type Dependency struct {
	Coordinate
	Scope    string `json:"scope,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Project holds the declared dependency metadata of the consuming project
type Project struct {
	Coordinate           Coordinate
	Dependencies         []Dependency
	DependencyManagement []Dependency
}
