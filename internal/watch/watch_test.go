package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/huangsam/radar/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain fails the package if a watcher goroutine outlives its test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newScoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("composition: 80\n"), 0o644))
	return path
}

func TestNew(t *testing.T) {
	path := newScoreFile(t)

	w, err := New(path, 0)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.Equal(t, path, w.Path())
	assert.Equal(t, contract.DefaultDebounce, w.debounce)
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "scores.yaml"), time.Millisecond)
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	path := newScoreFile(t)
	w, err := New(path, time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.True(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.True(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Create}))
	assert.False(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Remove}))
	assert.False(t, w.matches(fsnotify.Event{Name: path + ".swp", Op: fsnotify.Write}))
}

func TestRunDebouncesWrites(t *testing.T) {
	path := newScoreFile(t)
	w, err := New(path, 100*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			calls.Add(1)
			changed <- struct{}{}
			return errors.New("callback errors are only logged")
		})
	}()

	for i := range 3 {
		require.NoError(t, os.WriteFile(path, []byte("composition: 9"+string(rune('0'+i))+"\n"), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	// Burst settles into a single callback
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
