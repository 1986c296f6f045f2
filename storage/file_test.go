package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlotRoundTrip(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	// Missing key reads as absent, not as an error.
	_, ok, err := slot.Read("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Write("cart", []byte(`[{"id":1}]`)))
	data, ok, err := slot.Read("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(data))

	// Overwrite replaces the previous value.
	require.NoError(t, slot.Write("cart", []byte(`[]`)))
	data, _, _ = slot.Read("cart")
	assert.Equal(t, `[]`, string(data))

	require.NoError(t, slot.Delete("cart"))
	_, ok, err = slot.Read("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, slot.Delete("cart"))
}

func TestFileSlotSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, slot.Write("../escape", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dir, filepath.Dir(filepath.Join(dir, entries[0].Name())))

	data, ok, err := slot.Read("../escape")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", string(data))
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()

	_, ok, err := slot.Read("cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Write("cart", []byte("abc")))
	data, ok, err := slot.Read("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(data))

	// The slot keeps its own copy of written data.
	raw := []byte("xyz")
	require.NoError(t, slot.Write("cart", raw))
	raw[0] = '!'
	data, _, _ = slot.Read("cart")
	assert.Equal(t, "xyz", string(data))

	require.NoError(t, slot.Delete("cart"))
	_, ok, _ = slot.Read("cart")
	assert.False(t, ok)
}
