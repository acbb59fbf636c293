package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/adapters/watcher"
	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/lsproj/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want ports.WatchOp
		ok   bool
	}{
		{op: fsnotify.Write, want: ports.OpWrite, ok: true},
		{op: fsnotify.Create, want: ports.OpCreate, ok: true},
		{op: fsnotify.Remove, want: ports.OpRemove, ok: true},
		{op: fsnotify.Rename, want: ports.OpRename, ok: true},
		{op: fsnotify.Create | fsnotify.Write, want: ports.OpWrite, ok: true},
		{op: fsnotify.Chmod, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, ok := watcher.ConvertEventExported(fsnotify.Event{Name: "/p/x", Op: tt.op})
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, ports.WatchEvent{Path: "/p/x", Operation: tt.want}, got)
			}
		})
	}
}

func TestWatchRecursively_SkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"src/nested", "target/dev", ".git/objects", domain.StateDirName} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), domain.DirPerm))
	}

	dirs := watcher.WatchRecursivelyExported(root)

	assert.ElementsMatch(t, []string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "src", "nested"),
	}, dirs)
}

func TestWatcher_ReportsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { assert.NoError(t, w.Stop()) }()

	manifest := filepath.Join(root, domain.ProjectFileName)
	require.NoError(t, os.WriteFile(manifest, []byte("[crate_roots]\n"), domain.FilePerm))

	found := make(chan struct{})
	go func() {
		for event := range w.Events() {
			if event.Path == manifest {
				close(found)
				return
			}
		}
	}()

	select {
	case <-found:
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the written manifest")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	// A missing root yields no directories, so there is nothing to add.
	require.NoError(t, w.Start(context.Background(), filepath.Join(t.TempDir(), "missing")))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
