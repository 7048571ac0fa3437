package filters

import (
	"strings"

	"github.com/arthur-debert/artlink/pkg/errors"
	"github.com/arthur-debert/artlink/pkg/types"
)

var knownScopes = map[string]bool{
	types.ScopeCompile:  true,
	types.ScopeProvided: true,
	types.ScopeRuntime:  true,
	types.ScopeTest:     true,
	types.ScopeSystem:   true,
}

// scopes each scope token covers. provided and system only cover
// themselves.
var scopeCoverage = map[string]map[string]bool{
	types.ScopeCompile:  {types.ScopeCompile: true, types.ScopeProvided: true, types.ScopeSystem: true},
	types.ScopeRuntime:  {types.ScopeCompile: true, types.ScopeRuntime: true},
	types.ScopeTest:     {types.ScopeCompile: true, types.ScopeProvided: true, types.ScopeRuntime: true, types.ScopeTest: true, types.ScopeSystem: true},
	types.ScopeProvided: {types.ScopeProvided: true},
	types.ScopeSystem:   {types.ScopeSystem: true},
}

// ScopeFilter keeps artifacts by dependency scope. It takes a single include
// or exclude scope; when both are given the include wins.
type ScopeFilter struct {
	include string
	exclude string
}

// NewScopeFilter validates the scope tokens
func NewScopeFilter(include, exclude string) (*ScopeFilter, error) {
	f := &ScopeFilter{
		include: strings.ToLower(strings.TrimSpace(include)),
		exclude: strings.ToLower(strings.TrimSpace(exclude)),
	}

	if f.include != "" {
		if !knownScopes[f.include] {
			return nil, errors.Config("Invalid Scope in includeScope: %s", include).
				WithDetail("scope", include)
		}
		f.exclude = ""
		return f, nil
	}

	if f.exclude != "" {
		if !knownScopes[f.exclude] {
			return nil, errors.Config("Invalid Scope in excludeScope: %s", exclude).
				WithDetail("scope", exclude)
		}
		if f.exclude == types.ScopeTest {
			return nil, errors.Config("Can't exclude Test scope, this will exclude everything.").
				WithDetail("scope", exclude)
		}
	}
	return f, nil
}

func (f *ScopeFilter) Name() string { return "scope" }

func (f *ScopeFilter) Active() bool {
	return f.include != "" || f.exclude != ""
}

func (f *ScopeFilter) Include(a types.ArtifactRef) bool {
	scope := strings.ToLower(a.Scope)
	if scope == "" {
		scope = types.ScopeCompile
	}
	switch {
	case f.include != "":
		return covers(f.include, scope)
	case f.exclude != "":
		return !covers(f.exclude, scope)
	default:
		return true
	}
}

// covers reports whether token selects scope. Scopes outside the known set
// are selected by every token except provided and system, which only ever
// select themselves.
func covers(token, scope string) bool {
	if !knownScopes[scope] {
		return token != types.ScopeProvided && token != types.ScopeSystem
	}
	return scopeCoverage[token][scope]
}
