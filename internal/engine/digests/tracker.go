package digests

import (
	"context"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tracker registers file dependencies of queries by evaluating the file digests through the engine.
type Tracker struct {
	files   ports.DigestInterner
	digests ports.DigestQuery
	logger  ports.Logger
}

var _ ports.DependencyReporter = (*Tracker)(nil)

// NewTracker creates a Tracker.
func NewTracker(files ports.DigestInterner, digests ports.DigestQuery, logger ports.Logger) *Tracker {
	return &Tracker{
		files:   files,
		digests: digests,
		logger:  logger,
	}
}

// ReportDependency declares that the query running in ctx depends on the digest of path.
// A path that is not relevant for project analysis is logged and ignored.
func (t *Tracker) ReportDependency(ctx context.Context, path string) {
	id, ok := t.intern(path)
	if !ok {
		return
	}
	t.digests.Get(ctx, id)
}

// Invalidate forces the digest of id to be recomputed on next use.
func (t *Tracker) Invalidate(id domain.DigestID) {
	t.digests.Invalidate(id)
}

// InvalidatePath invalidates the digest of path if it was ever read.
// It reports whether a digest was invalidated.
func (t *Tracker) InvalidatePath(path string) bool {
	d, err := domain.TryNewDigestible(path)
	if d.IsZero() {
		return false
	}
	if err != nil {
		t.logger.Warn(err.Error())
	}

	id, ok := t.files.Find(d)
	if !ok {
		return false
	}
	t.digests.Invalidate(id)
	return true
}

// Digest returns the current digest of path.
// Unlike ReportDependency it fails for paths that are not relevant for project analysis.
func (t *Tracker) Digest(ctx context.Context, path string) (domain.Digest, error) {
	d, err := domain.TryNewDigestible(path)
	if d.IsZero() {
		return domain.Digest{}, err
	}
	if err != nil {
		t.logger.Warn(err.Error())
	}
	return t.digests.Get(ctx, t.files.Intern(d)), nil
}

func (t *Tracker) intern(path string) (domain.DigestID, bool) {
	d, err := domain.TryNewDigestible(path)
	if d.IsZero() {
		t.logger.Error(zerr.Wrap(err, "refusing to track dependency"))
		return 0, false
	}
	if err != nil {
		t.logger.Warn(err.Error())
	}
	return t.files.Intern(d), true
}
