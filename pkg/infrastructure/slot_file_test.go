package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"resume-builder/internal/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_MissingFileIsEmpty(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "nested", "draft.json"))
	_, err := slot.Read(context.Background())
	assert.ErrorIs(t, err, draft.ErrSlotEmpty)
}

func TestFileSlot_WriteRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "draft.json")
	slot := NewFileSlot(path)

	require.NoError(t, slot.Write(ctx, []byte(`{"summary":"one"}`)))
	require.NoError(t, slot.Write(ctx, []byte(`{"summary":"two"}`)))

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"two"}`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileSlot_ConcurrentReadersNeverSeePartialWrites(t *testing.T) {
	ctx := context.Background()
	slot := NewFileSlot(filepath.Join(t.TempDir(), "draft.json"))
	a := []byte(`{"summary":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`)
	b := []byte(`{"summary":"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}`)
	require.NoError(t, slot.Write(ctx, a))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if i%2 == 0 {
				_ = slot.Write(ctx, b)
			} else {
				_ = slot.Write(ctx, a)
			}
		}
	}()
	for i := 0; i < 200; i++ {
		got, err := slot.Read(ctx)
		require.NoError(t, err)
		assert.True(t, string(got) == string(a) || string(got) == string(b), "torn read: %q", got)
	}
	wg.Wait()
}

func TestFileSlot_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "draft.json")
	store := draft.NewStore(NewFileSlot(path))
	data := store.Current()
	data.PersonalInfo.FirstName = "Jane"
	data.Summary = "Hello"
	require.NoError(t, store.Save(ctx, data))

	reopened := draft.NewStore(NewFileSlot(path))
	assert.Equal(t, data, reopened.Load(ctx))
}
