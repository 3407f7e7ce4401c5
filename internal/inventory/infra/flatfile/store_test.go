package flatfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dwikikusuma/simple-pos/internal/inventory/domain"
	"github.com/dwikikusuma/simple-pos/internal/inventory/infra/flatfile"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*flatfile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	return flatfile.New(path), path
}

func TestLoadAbsentFile(t *testing.T) {
	store, _ := newStore(t)

	products, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, products)
}

func TestLoadExistingEmptyFile(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	products, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, products)
}

func TestLoadWellFormedLines(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("Widget,5.0,10\nGadget,4,8\n"), 0o644))

	products, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 5.0, products[0].Price)
	assert.Equal(t, 10, products[0].Stock)
	assert.Equal(t, "Gadget", products[1].Name)
}

func TestLoadSkipsLinesWithWrongFieldCount(t *testing.T) {
	store, path := newStore(t)
	content := "Widget,5.0,10\njunk\nGadget,4.0\nDoohickey,2.0,3,extra\nGizmo,1.5,6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gizmo", products[1].Name)
}

func TestLoadStopsAtFirstMalformedNumber(t *testing.T) {
	store, path := newStore(t)
	content := "Widget,5.0,10\nGadget,cheap,8\nGizmo,1.5,6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, found, err := store.Load()
	require.Error(t, err)
	assert.True(t, found)
	// Best effort: the row before the malformed one survives, nothing after
	// it is read.
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestLoadStopsAtMalformedStock(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("Widget,5.0,lots\n"), 0o644))

	products, _, err := store.Load()
	require.Error(t, err)
	assert.Empty(t, products)
}

func TestLoadLineLongerThanDefaultScannerBuffer(t *testing.T) {
	store, path := newStore(t)
	// A name well past bufio's default 64KiB token limit must not abort the
	// load or drop the rows behind it.
	longName := strings.Repeat("x", 100*1024)
	content := longName + ",2.5,4\nWidget,5.0,10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, longName, products[0].Name)
	assert.Equal(t, "Widget", products[1].Name)
}

func TestSaveWritesOneLinePerProduct(t *testing.T) {
	store, path := newStore(t)

	err := store.Save([]domain.Product{
		{ID: uuid.New(), Name: "Widget", Price: 5.0, Stock: 10},
		{ID: uuid.New(), Name: "Gadget", Price: 4.25, Stock: -2},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Widget,5,10\nGadget,4.25,-2\n", string(raw))
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("Old,1.0,1\nStale,2.0,2\n"), 0o644))

	require.NoError(t, store.Save([]domain.Product{{ID: uuid.New(), Name: "New", Price: 3, Stock: 3}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "New,3,3\n", string(raw))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)

	in := []domain.Product{
		{ID: uuid.New(), Name: "Product 1", Price: 10.0, Stock: 20},
		{ID: uuid.New(), Name: "Product 2", Price: 15.5, Stock: 15},
		{ID: uuid.New(), Name: "Product 3", Price: 0, Stock: 0},
	}
	require.NoError(t, store.Save(in))

	out, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Price, out[i].Price)
		assert.Equal(t, in[i].Stock, out[i].Stock)
	}
}
