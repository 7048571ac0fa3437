package main

import (
	"github.com/arthur-debert/artlink/pkg/config"
	"github.com/arthur-debert/artlink/pkg/manifest"
	"github.com/arthur-debert/artlink/pkg/pom"
	"github.com/arthur-debert/artlink/pkg/repository"
	"github.com/arthur-debert/artlink/pkg/types"
	"github.com/rs/zerolog"
)

// projectData is what the consuming project contributes to a run
type projectData struct {
	Artifacts []types.ArtifactRef
	Project   types.Project
	Items     []types.ArtifactItem
}

// loadProject reads the configured pom and manifest. The pom supplies the
// project coordinate and declared dependencies; manifest declarations are
// appended after the pom's. Manifest artifacts without a file are looked up
// in the repository.
func loadProject(cfg *config.Config, fs types.FS, resolver repository.Resolver, logger zerolog.Logger) (*projectData, error) {
	data := &projectData{}

	if cfg.Project.Pom != "" {
		model, err := pom.ReadFile(fs, cfg.Project.Pom)
		if err != nil {
			return nil, err
		}
		data.Project = model.Project()
		logger.Debug().
			Str("pom", cfg.Project.Pom).
			Int("dependencies", len(data.Project.Dependencies)).
			Msg("Loaded project pom")
	}

	if cfg.Project.Manifest != "" {
		m, err := manifest.Load(fs, cfg.Project.Manifest)
		if err != nil {
			return nil, err
		}
		artifacts, err := withFiles(resolver, m.Artifacts)
		if err != nil {
			return nil, err
		}
		data.Artifacts = artifacts
		data.Items = m.Items
		if data.Project.Coordinate == (types.Coordinate{}) {
			data.Project.Coordinate = m.Project.Coordinate
		}
		data.Project.Dependencies = append(data.Project.Dependencies, m.Project.Dependencies...)
		data.Project.DependencyManagement = append(data.Project.DependencyManagement, m.Project.DependencyManagement...)
		logger.Debug().
			Str("manifest", cfg.Project.Manifest).
			Int("artifacts", len(data.Artifacts)).
			Int("items", len(data.Items)).
			Msg("Loaded project manifest")
	}

	return data, nil
}

func withFiles(resolver repository.Resolver, artifacts []types.ArtifactRef) ([]types.ArtifactRef, error) {
	out := make([]types.ArtifactRef, 0, len(artifacts))
	for _, a := range artifacts {
		if a.File == "" {
			resolved, err := resolver.Resolve(a.Coordinate)
			if err != nil {
				return nil, err
			}
			a.File = resolved.File
		}
		out = append(out, a)
	}
	return out, nil
}
