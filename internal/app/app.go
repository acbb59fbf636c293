// Package app implements the application layer for lsproj.
package app

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/lsproj/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the adapter
	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/lsproj/internal/engine/project"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ProjectCrates is the resolved crate list of one project.
type ProjectCrates struct {
	Manifest string
	Crates   []domain.Crate
}

// FileDigest is the digest of one tracked file.
type FileDigest struct {
	Path   string
	Digest domain.Digest
}

// configurable is implemented by loggers whose format and level follow the settings.
type configurable interface {
	Configure(settings domain.Settings)
}

// App represents the main application logic.
type App struct {
	db        *project.Database
	finder    ports.ManifestFinder
	walker    ports.TrackedFileWalker
	loader    ports.SettingsLoader
	snapshots ports.SnapshotOpener
	watcher   ports.Watcher
	logger    ports.Logger

	settings domain.Settings
	now      func() time.Time
}

// New creates a new App instance.
func New(
	db *project.Database,
	finder ports.ManifestFinder,
	walker ports.TrackedFileWalker,
	loader ports.SettingsLoader,
	snapshots ports.SnapshotOpener,
	w ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		db:        db,
		finder:    finder,
		walker:    walker,
		loader:    loader,
		snapshots: snapshots,
		watcher:   w,
		logger:    logger,
		settings:  domain.DefaultSettings(),
		now:       time.Now,
	}
}

// WithClock replaces the clock used to stamp snapshot records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// LoadSettings reads the settings file at path and applies it.
func (a *App) LoadSettings(path string) error {
	settings, err := a.loader.Load(path)
	if err != nil {
		return err
	}
	a.settings = settings
	if c, ok := a.logger.(configurable); ok {
		c.Configure(settings)
	}
	return nil
}

// Settings returns the settings in effect.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Crates resolves the crates of the project governing path.
func (a *App) Crates(ctx context.Context, path string) (ProjectCrates, error) {
	id, manifest, err := a.project(path)
	if err != nil {
		return ProjectCrates{}, err
	}
	return ProjectCrates{Manifest: manifest, Crates: a.db.ProjectCrates(ctx, id)}, nil
}

func (a *App) project(path string) (domain.ProjectID, string, error) {
	manifest, err := a.finder.FindManifest(path)
	if err != nil {
		return 0, "", err
	}
	id, err := a.db.InternProject(manifest)
	if err != nil {
		return 0, "", err
	}
	return id, a.db.ManifestPath(id), nil
}

// Digests computes the digests of the given tracked files concurrently.
// Results are in the order of paths.
func (a *App) Digests(ctx context.Context, paths []string) ([]FileDigest, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}

	results := make([]FileDigest, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			d, err := a.db.Digest(ctx, path)
			if err != nil {
				return zerr.With(err, "path", path)
			}
			results[i] = FileDigest{Path: path, Digest: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Check compares the tracked files below root against the snapshot of the previous
// check and replaces the snapshot with what it observed.
func (a *App) Check(ctx context.Context, root string) ([]domain.FileChange, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAbsolutePathFailed.Error()), "path", root)
	}

	var paths []string
	for d := range a.walker.WalkTracked(root) {
		paths = append(paths, d.Path())
	}

	// Observe the disk as it is now, not as an earlier query saw it.
	a.db.FilesChanged()
	observed, err := a.digestsOf(ctx, paths)
	if err != nil {
		return nil, err
	}

	store, err := a.snapshots.Open(a.snapshotPath(root))
	if err != nil {
		return nil, err
	}
	previous, err := store.All()
	if err != nil {
		return nil, err
	}

	known := make(map[string]domain.DigestRecord, len(previous))
	for _, rec := range previous {
		known[rec.Path] = rec
	}

	at := a.now()
	changes := make([]domain.FileChange, 0, len(observed)+len(previous))
	records := make([]domain.DigestRecord, 0, len(observed))
	for _, fd := range observed {
		change := domain.FileChange{Path: fd.Path, Digest: fd.Digest, Kind: domain.ChangeChanged}
		if rec, ok := known[fd.Path]; !ok {
			change.Kind = domain.ChangeNew
		} else if rec.Matches(fd.Digest) {
			change.Kind = domain.ChangeUnchanged
		}
		delete(known, fd.Path)
		changes = append(changes, change)
		records = append(records, domain.NewDigestRecord(fd.Path, fd.Digest, at))
	}

	removed := make([]string, 0, len(known))
	for path := range known {
		if !within(root, path) {
			continue
		}
		removed = append(removed, path)
		changes = append(changes, domain.FileChange{
			Path:   path,
			Kind:   domain.ChangeRemoved,
			Digest: domain.FileNotFoundDigest(),
		})
	}

	if err := store.Put(records...); err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		if err := store.Delete(removed...); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(changes, func(x, y domain.FileChange) int {
		return strings.Compare(x.Path, y.Path)
	})
	return changes, nil
}

func (a *App) digestsOf(ctx context.Context, paths []string) ([]FileDigest, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	return a.Digests(ctx, paths)
}

func (a *App) snapshotPath(root string) string {
	if filepath.IsAbs(a.settings.SnapshotPath) {
		return a.settings.SnapshotPath
	}
	return filepath.Join(root, a.settings.SnapshotPath)
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Watch resolves the crates of the project governing path, reports them, and reports
// them again whenever a change to a file they were resolved from alters the result.
// It returns when ctx is done.
func (a *App) Watch(ctx context.Context, path string, report func(ProjectCrates)) error {
	id, manifest, err := a.project(path)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	last := a.db.ProjectCrates(ctx, id)
	report(ProjectCrates{Manifest: manifest, Crates: last})

	if err := a.watcher.Start(ctx, filepath.Dir(manifest)); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(a.settings.DebounceWindow, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		if a.db.InvalidatePaths(paths) == 0 {
			return
		}
		crates := a.db.ProjectCrates(ctx, id)
		if domain.CratesEqual(last, crates) {
			return
		}
		last = crates
		report(ProjectCrates{Manifest: manifest, Crates: crates})
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()
	return a.watcher.Stop()
}
