package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/adapters/watcher"
)

// batches records every callback invocation.
type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) add(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]string(nil), b.got...)
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/p/src/lib.cairo")
		d.Add("/p/cairo_project.toml")
		d.Add("/p/src/lib.cairo")
		assert.Equal(t, 2, d.Pending())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/p/cairo_project.toml", "/p/src/lib.cairo"}, b.all()[0])
		assert.Zero(t, d.Pending())
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/p/a.cairo")
		time.Sleep(60 * time.Millisecond)
		d.Add("/p/b.cairo")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/p/a.cairo")
		d.Flush()
		require.Len(t, b.all(), 1)

		// The stopped timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var b batches
	d := watcher.NewDebouncer(100*time.Millisecond, b.add)
	d.Flush()
	assert.Empty(t, b.all())
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.add)

		d.Add("/p/a.cairo")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)

		d.Flush()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/p/a.cairo")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("/p/b.cairo")
		d.Flush()
	})
}

func TestDebouncer_FlushWaitsForRunningCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		release := make(chan struct{})
		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			<-release
			b.add(paths)
		})

		d.Add("/p/a.cairo")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		done := make(chan struct{})
		go func() {
			d.Flush()
			close(done)
		}()
		synctest.Wait()

		select {
		case <-done:
			t.Fatal("Flush returned while the fired callback was still running")
		default:
		}

		close(release)
		<-done
		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/p/a.cairo"}, b.all()[0])
	})
}
