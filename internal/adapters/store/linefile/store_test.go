package linefile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMissingFileReadsAsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore()
	lines, err := store.ReadLines(context.Background(), filepath.Join(t.TempDir(), "missing", "accounts.txt"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStoreWriteThenReadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "threads.txt")
	store := NewStore()

	want := []string{"1,-1,2,1,0,first,", `2,1,1,2,0,"a, b",`}
	require.NoError(t, store.WriteLines(context.Background(), path, want))

	got, err := store.ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,-1,2,1,0,first,\n2,1,1,2,0,\"a, b\",\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(dataFileMode), info.Mode().Perm())
}

func TestStoreReadSkipsEmptyLinesAndTrimsCarriageReturns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "accounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n\n\nb\n\r\n"), 0o600))

	lines, err := NewStore().ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestStoreWriteReplacesWholeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "accounts.txt")
	store := NewStore()

	require.NoError(t, store.WriteLines(context.Background(), path, []string{"one", "two", "three"}))
	require.NoError(t, store.WriteLines(context.Background(), path, []string{"four"}))

	lines, err := store.ReadLines(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"four"}, lines)

	require.NoError(t, store.WriteLines(context.Background(), path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStoreRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, err := store.ReadLines(context.Background(), "  ")
	assert.ErrorContains(t, err, "data file path is empty")

	err = store.WriteLines(context.Background(), "", []string{"x"})
	assert.ErrorContains(t, err, "data file path is empty")
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "accounts.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	err := store.WriteLines(ctx, path, []string{"x"})
	require.True(t, errors.Is(err, context.Canceled))

	_, err = store.ReadLines(ctx, path)
	require.True(t, errors.Is(err, context.Canceled))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestStoreWriteFailsWhenParentIsAFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := NewStore().WriteLines(context.Background(), filepath.Join(blocker, "accounts.txt"), []string{"x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "create data directory")
}

func TestStoreConcurrentWritersLeaveOneCompleteVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "accounts.txt")
	storeA := NewStore()
	storeB := NewStore()

	const writes = 50
	var wg sync.WaitGroup
	errCh := make(chan error, writes*2)
	for _, store := range []*Store{storeA, storeB} {
		wg.Add(1)
		go func(store *Store) {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				n := strconv.Itoa(i)
				errCh <- store.WriteLines(context.Background(), path, []string{n, n, n})
			}
		}(store)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	lines, err := storeA.ReadLines(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, lines[1], lines[2])
}
