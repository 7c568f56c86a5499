package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxlate/voxlate/internal/common"
)

func TestFSStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "out_1.mp3", []byte("audio")))

	data, err := store.Get(ctx, "out_1.mp3")
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), data)
}

func TestFSStore_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, "missing.mp3")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFSStore_RejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	err = store.Put(ctx, "../escape.mp3", []byte("x"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = store.Get(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFSStore_NoPartialFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "out_2.mp3", []byte("complete")))

	// only the final artifact should remain, no temp leftovers
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out_2.mp3", filepath.Base(entries[0].Name()))
}
