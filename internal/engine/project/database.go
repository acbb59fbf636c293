// Package project assembles the incremental project model: the engine runtime, the
// interners, and the memoized digest and crate queries.
package project

import (
	"context"
	"path/filepath"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/lsproj/internal/engine/crates"
	"go.trai.ch/lsproj/internal/engine/digests"
	"go.trai.ch/lsproj/internal/engine/query"
	"go.trai.ch/zerr"
)

const (
	digestQueryName = "digest"
	cratesQueryName = "project_crates"
)

// Database owns every memoized value of the project model.
// All methods are safe for concurrent use.
type Database struct {
	runtime  *query.Runtime
	files    *query.Interner[domain.Digestible, domain.DigestID]
	projects *query.Interner[domain.ProjectManifestPath, domain.ProjectID]
	digests  *query.Memo[domain.DigestID, domain.Digest]
	crates   *query.Memo[domain.ProjectID, []domain.Crate]
	tracker  *digests.Tracker
}

// NewDatabase creates an empty database.
func NewDatabase(
	hasher ports.FileHasher,
	loader ports.ManifestLoader,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Database {
	db := &Database{
		runtime:  query.NewRuntime(telemetry),
		files:    query.NewInterner[domain.Digestible, domain.DigestID](),
		projects: query.NewInterner[domain.ProjectManifestPath, domain.ProjectID](),
	}

	computer := digests.NewComputer(db.files, db.runtime, hasher, &digests.AtomicNonces{})
	db.digests = query.NewMemo(db.runtime, digestQueryName, computer.Compute, domain.Digest.Equal)
	db.tracker = digests.NewTracker(db.files, db.digests, logger)

	resolver := crates.NewResolver(db.projects, db.tracker, db.runtime, loader, logger)
	db.crates = query.NewMemo(db.runtime, cratesQueryName, resolver.ProjectCrates, domain.CratesEqual)
	return db
}

// InternProject returns the handle of the project whose manifest is at path.
func (db *Database) InternProject(path string) (domain.ProjectID, error) {
	if filepath.Base(path) != domain.ProjectFileName {
		return 0, zerr.With(domain.ErrNotProjectManifest, "path", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrAbsolutePathFailed.Error()), "path", path)
	}
	return db.projects.Intern(domain.NewProjectManifestPath(abs)), nil
}

// ManifestPath returns the manifest path of project.
func (db *Database) ManifestPath(project domain.ProjectID) string {
	return db.projects.Lookup(project).Path()
}

// ProjectCrates returns the crates of project. It never fails; an unusable manifest yields no crates.
func (db *Database) ProjectCrates(ctx context.Context, project domain.ProjectID) []domain.Crate {
	return db.crates.Get(ctx, project)
}

// Digest returns the current digest of the tracked file at path.
func (db *Database) Digest(ctx context.Context, path string) (domain.Digest, error) {
	return db.tracker.Digest(ctx, path)
}

// ReportDependency declares that the query running in ctx reads the file at path.
func (db *Database) ReportDependency(ctx context.Context, path string) {
	db.tracker.ReportDependency(ctx, path)
}

// InvalidateDigest forces the digest of id to be read again.
func (db *Database) InvalidateDigest(id domain.DigestID) {
	db.tracker.Invalidate(id)
}

// InvalidatePaths invalidates the digests of the given paths that were read before.
// It returns how many digests were invalidated.
func (db *Database) InvalidatePaths(paths []string) int {
	n := 0
	for _, path := range paths {
		if db.tracker.InvalidatePath(path) {
			n++
		}
	}
	return n
}

// FilesChanged starts a new revision in which every file may have changed.
func (db *Database) FilesChanged() query.Revision {
	return db.runtime.SyntheticWrite(domain.DurabilityLow)
}

// Revision returns the current revision.
func (db *Database) Revision() query.Revision {
	return db.runtime.Revision()
}

// InspectCrates returns the memoized state of the crates of project.
func (db *Database) InspectCrates(project domain.ProjectID) (query.EntryInfo, bool) {
	return db.crates.Inspect(project)
}

// InspectDigest returns the memoized state of the digest of the tracked file at path.
func (db *Database) InspectDigest(path string) (query.EntryInfo, bool) {
	d, _ := domain.TryNewDigestible(path)
	if d.IsZero() {
		return query.EntryInfo{}, false
	}
	id, ok := db.files.Find(d)
	if !ok {
		return query.EntryInfo{}, false
	}
	return db.digests.Inspect(id)
}
