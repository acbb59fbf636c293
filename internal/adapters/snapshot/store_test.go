package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/adapters/snapshot"
	"go.trai.ch/lsproj/internal/core/domain"
)

func record(path string, hash uint64) domain.DigestRecord {
	return domain.NewDigestRecord(path, domain.OKDigest(hash), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := snapshot.NewStore(filepath.Join(t.TempDir(), "digests.json"))
	require.NoError(t, err)

	rec := record("/p/cairo_project.toml", 0xabc)
	require.NoError(t, store.Put(rec))

	got, err := store.Get(rec.Path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	missing, err := store.Get("/p/other.cairo")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "digests.json")

	first, err := snapshot.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(record("/p/b", 2), record("/p/a", 1)))
	require.NoError(t, first.Put(domain.NewDigestRecord("/p/c", domain.FileNotFoundDigest(), time.Time{})))

	second, err := snapshot.NewStore(path)
	require.NoError(t, err)
	all, err := second.All()
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, []string{"/p/a", "/p/b", "/p/c"}, []string{all[0].Path, all[1].Path, all[2].Path})
	assert.True(t, all[2].Matches(domain.FileNotFoundDigest()))
}

func TestStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.json")
	store, err := snapshot.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(record("/p/a", 1), record("/p/b", 2)))

	require.NoError(t, store.Delete("/p/a", "/p/unknown"))

	reopened, err := snapshot.NewStore(path)
	require.NoError(t, err)
	all, err := reopened.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "/p/b", all[0].Path)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.json")
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))

	store, err := snapshot.NewStore(path)
	require.NoError(t, err)
	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	_, err := snapshot.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal digest snapshot")
}

func TestStore_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.json")
	require.NoError(t, os.Mkdir(path, domain.DirPerm))

	_, err := snapshot.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read digest snapshot")
}

func TestOpener(t *testing.T) {
	store, err := snapshot.Opener{}.Open(filepath.Join(t.TempDir(), "digests.json"))
	require.NoError(t, err)
	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
