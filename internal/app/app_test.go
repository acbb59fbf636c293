package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/adapters/config"
	"go.trai.ch/lsproj/internal/adapters/fs"
	"go.trai.ch/lsproj/internal/adapters/manifest"
	"go.trai.ch/lsproj/internal/adapters/snapshot"
	"go.trai.ch/lsproj/internal/app"
	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/lsproj/internal/core/ports/mocks"
	"go.trai.ch/lsproj/internal/engine/project"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app     *app.App
	watcher *mocks.MockWatcher
	logger  *mocks.MockLogger
	root    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	w := mocks.NewMockWatcher(ctrl)

	db := project.NewDatabase(fs.NewHasher(), manifest.NewLoader(), log, nil)
	a := app.New(db, fs.NewFinder(), fs.NewWalker(), config.NewLoader(), snapshot.Opener{}, w, log).
		WithClock(func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) })

	return &fixture{app: a, watcher: w, logger: log, root: t.TempDir()}
}

func (f *fixture) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(f.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestApp_Crates(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, domain.ProjectFileName, "[crate_roots]\nhello = \"src\"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, "src"), domain.DirPerm))

	got, err := f.app.Crates(context.Background(), filepath.Join(f.root, "src"))
	require.NoError(t, err)

	assert.Equal(t, path, got.Manifest)
	assert.Equal(t, []domain.Crate{{Name: "hello", Root: filepath.Join(f.root, "src")}}, got.Crates)
}

func TestApp_Crates_NoManifest(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Crates(context.Background(), f.root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestNotFound.Error())
}

func TestApp_Digests(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a/Scarb.toml", "[package]\nname = \"a\"\n")
	b := f.write(t, "b/Scarb.toml", "[package]\nname = \"a\"\n")
	missing := filepath.Join(f.root, "c", "Scarb.lock")

	got, err := f.app.Digests(context.Background(), []string{b, missing, a})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []string{b, missing, a}, []string{got[0].Path, got[1].Path, got[2].Path})
	assert.True(t, got[0].Digest.Equal(got[2].Digest))
	assert.Equal(t, domain.DigestFileNotFound, got[1].Digest.Kind())
}

func TestApp_Digests_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Digests(context.Background(), nil)
	assert.ErrorContains(t, err, domain.ErrNoFilesSpecified.Error())

	_, err = f.app.Digests(context.Background(), []string{filepath.Join(f.root, "lib.cairo")})
	assert.ErrorContains(t, err, domain.ErrIndigestibleFile.Error())
}

func TestApp_Check(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	manifestPath := f.write(t, domain.ProjectFileName, "[crate_roots]\n")
	scarb := f.write(t, "pkg/Scarb.toml", "[package]\n")
	lock := f.write(t, "pkg/Scarb.lock", "version = 1\n")
	f.write(t, "target/Scarb.toml", "ignored")

	first, err := f.app.Check(ctx, f.root)
	require.NoError(t, err)
	assert.Equal(t, []domain.ChangeKind{domain.ChangeNew, domain.ChangeNew, domain.ChangeNew}, kinds(first))
	assert.Equal(t, []string{manifestPath, lock, scarb}, paths(first))

	f.write(t, "pkg/Scarb.toml", "[package]\nname = \"pkg\"\n")
	require.NoError(t, os.Remove(lock))
	added := f.write(t, "other/Scarb.toml", "[package]\n")

	second, err := f.app.Check(ctx, f.root)
	require.NoError(t, err)
	assert.Equal(t, []string{manifestPath, added, lock, scarb}, paths(second))
	assert.Equal(t, []domain.ChangeKind{
		domain.ChangeUnchanged,
		domain.ChangeNew,
		domain.ChangeRemoved,
		domain.ChangeChanged,
	}, kinds(second))

	third, err := f.app.Check(ctx, f.root)
	require.NoError(t, err)
	assert.Equal(t, []domain.ChangeKind{domain.ChangeUnchanged, domain.ChangeUnchanged, domain.ChangeUnchanged}, kinds(third))

	store, err := snapshot.NewStore(filepath.Join(f.root, domain.DefaultSnapshotPath()))
	require.NoError(t, err)
	records, err := store.All()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestApp_LoadSettings(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, domain.SettingsFileName, "snapshot:\n  path: state/snap.json\nwatch:\n  debounce: 1s\n")

	require.NoError(t, f.app.LoadSettings(path))
	assert.Equal(t, "state/snap.json", f.app.Settings().SnapshotPath)
	assert.Equal(t, time.Second, f.app.Settings().DebounceWindow)

	require.NoError(t, f.app.LoadSettings(filepath.Join(f.root, "missing.yaml")))
	assert.Equal(t, domain.DefaultSettings(), f.app.Settings())

	bad := f.write(t, "bad.yaml", "log:\n  level: loud\n")
	assert.Error(t, f.app.LoadSettings(bad))
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	settings := f.write(t, domain.SettingsFileName, "watch:\n  debounce: 1h\n")
	require.NoError(t, f.app.LoadSettings(settings))
	manifestPath := f.write(t, domain.ProjectFileName, "[crate_roots]\na = \"a\"\n")
	ctx := context.Background()

	f.watcher.EXPECT().Start(ctx, f.root).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		// Files that were never read are ignored.
		if !yield(ports.WatchEvent{Path: filepath.Join(f.root, "src", "lib.cairo"), Operation: ports.OpWrite}) {
			return
		}
		f.write(t, domain.ProjectFileName, "[crate_roots]\na = \"a\"\nb = \"b\"\n")
		yield(ports.WatchEvent{Path: manifestPath, Operation: ports.OpWrite})
	}))
	f.watcher.EXPECT().Stop().Return(nil)

	var reports []app.ProjectCrates
	require.NoError(t, f.app.Watch(ctx, f.root, func(pc app.ProjectCrates) {
		reports = append(reports, pc)
	}))

	require.Len(t, reports, 2)
	assert.Len(t, reports[0].Crates, 1)
	assert.Equal(t, []string{"a", "b"}, []string{reports[1].Crates[0].Name, reports[1].Crates[1].Name})
	assert.Equal(t, manifestPath, reports[1].Manifest)
}

func TestApp_Watch_UnchangedResultIsNotReported(t *testing.T) {
	f := newFixture(t)
	settings := f.write(t, domain.SettingsFileName, "watch:\n  debounce: 1h\n")
	require.NoError(t, f.app.LoadSettings(settings))
	manifestPath := f.write(t, domain.ProjectFileName, "[crate_roots]\na = \"a\"\n")
	ctx := context.Background()

	f.watcher.EXPECT().Start(ctx, f.root).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		// Reformatting keeps the crates.
		f.write(t, domain.ProjectFileName, "[crate_roots]\n  a = \"a\"\n")
		yield(ports.WatchEvent{Path: manifestPath, Operation: ports.OpWrite})
	}))
	f.watcher.EXPECT().Stop().Return(nil)

	var reports int
	require.NoError(t, f.app.Watch(ctx, f.root, func(app.ProjectCrates) { reports++ }))
	assert.Equal(t, 1, reports)
}

func kinds(changes []domain.FileChange) []domain.ChangeKind {
	out := make([]domain.ChangeKind, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Kind)
	}
	return out
}

func paths(changes []domain.FileChange) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Path)
	}
	return out
}
