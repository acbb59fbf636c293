// Package crates resolves the compilation units of cairo_project.toml based projects.
package crates

import (
	"context"
	"errors"
	"io/fs"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns a project manifest into crate descriptors.
type Resolver struct {
	projects ports.ProjectInterner
	deps     ports.DependencyReporter
	runtime  ports.QueryRuntime
	loader   ports.ManifestLoader
	logger   ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(
	projects ports.ProjectInterner,
	deps ports.DependencyReporter,
	runtime ports.QueryRuntime,
	loader ports.ManifestLoader,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		projects: projects,
		deps:     deps,
		runtime:  runtime,
		loader:   loader,
		logger:   logger,
	}
}

// ProjectCrates returns the crates declared by the manifest of project, in document order.
//
// It never fails: a manifest that cannot be loaded is logged and yields no crates. When
// the manifest could not be read at all the evaluation is additionally marked as taking
// an untracked read, since retrying may succeed without the file changing.
func (r *Resolver) ProjectCrates(ctx context.Context, project domain.ProjectID) []domain.Crate {
	manifest := r.projects.Lookup(project).Path()

	r.deps.ReportDependency(ctx, manifest)
	r.runtime.ReportSyntheticRead(ctx, domain.DurabilityLow)

	config, err := r.loader.Load(manifest)
	if err != nil {
		r.logger.Error(zerr.With(err, "project", manifest))
		if isIOError(err) {
			r.runtime.ReportUntrackedRead(ctx)
		}
		return []domain.Crate{}
	}

	crates := make([]domain.Crate, 0, len(config.CrateRoots))
	for _, root := range config.CrateRoots {
		crates = append(crates, domain.Crate{
			Name:     root.Name,
			Root:     config.AbsoluteCrateRoot(root.Path),
			Settings: config.CratesConfig.Get(root.Name),
		})
	}
	return crates
}

// isIOError reports whether err was caused by the file system rather than by the manifest content.
func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
