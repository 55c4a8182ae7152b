package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenmo1212/foodorder/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)

	lines := []models.CartLine{
		{Item: tofu(), Instructions: "extra spicy", Quantity: 2},
		{Item: broccoli(), Quantity: 1},
	}
	require.NoError(t, store.Save(lines))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStoreVersionMismatchDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"lines":[{"quantity":3}]}`), 0o644))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}
