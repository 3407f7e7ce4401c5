package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/simple-pos/internal/inventory/app"
	"github.com/dwikikusuma/simple-pos/internal/inventory/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	loaded  []domain.Product
	found   bool
	loadErr error
	saved   [][]domain.Product
	saveErr error
}

func (f *fakeStore) Load() ([]domain.Product, bool, error) { return f.loaded, f.found, f.loadErr }

func (f *fakeStore) Save(products []domain.Product) error {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	f.saved = append(f.saved, cp)
	return f.saveErr
}

func setup(t *testing.T) (*app.Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	return app.NewService(store), store
}

func TestLoadSeedsSampleDataForAbsentFile(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx))

	products := svc.Products(ctx)
	require.Len(t, products, 3)
	assert.Equal(t, "Product 1", products[0].Name)
	assert.Equal(t, 10.0, products[0].Price)
	assert.Equal(t, 20, products[0].Stock)
	assert.Equal(t, "Product 2", products[1].Name)
	assert.Equal(t, "Product 3", products[2].Name)
}

func TestLoadEmptyExistingFileStaysEmpty(t *testing.T) {
	// The state after the user deletes every product and restarts: the file
	// exists with zero rows, and nothing comes back from the dead.
	svc, store := setup(t)
	store.found = true

	require.NoError(t, svc.Load(context.Background()))
	assert.Empty(t, svc.Products(context.Background()))
}

func TestLoadKeepsRowsParsedBeforeFailure(t *testing.T) {
	svc, store := setup(t)
	store.found = true
	store.loaded = []domain.Product{{ID: uuid.New(), Name: "Widget", Price: 5.0, Stock: 10}}
	store.loadErr = errors.New("line 2: bad price")

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, app.ErrStore)

	products := svc.Products(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		price string
		stock string
	}{
		{"price not a number", "abc", "5"},
		{"price negative", "-1", "5"},
		{"stock not an integer", "10.0", "many"},
		{"stock fractional", "10.0", "2.5"},
		{"stock negative", "10.0", "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := setup(t)
			_, err := svc.Add(ctx, "Widget", tc.price, tc.stock)
			require.ErrorIs(t, err, app.ErrInvalidInput)
			assert.Empty(t, svc.Products(ctx))
			assert.Empty(t, store.saved)
		})
	}
}

func TestAddAppendsAndPersists(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	product, err := svc.Add(ctx, "Widget", "5.0", "10")
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 5.0, product.Price)
	assert.Equal(t, 10, product.Stock)
	assert.NotEqual(t, uuid.Nil, product.ID)

	require.Len(t, store.saved, 1)
	require.Len(t, store.saved[0], 1)
	assert.Equal(t, "Widget", store.saved[0][0].Name)
}

func TestAddKeepsRowWhenSaveFails(t *testing.T) {
	svc, store := setup(t)
	store.saveErr = errors.New("disk full")

	_, err := svc.Add(context.Background(), "Widget", "5.0", "10")
	require.ErrorIs(t, err, app.ErrStore)

	// The in-memory row survives; only the write failed.
	assert.Len(t, svc.Products(context.Background()), 1)
}

func TestEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites all fields in place", func(t *testing.T) {
		svc, store := setup(t)
		added, err := svc.Add(ctx, "Widget", "5.0", "10")
		require.NoError(t, err)

		edited, err := svc.Edit(ctx, 0, "Gadget", "7.5", "4")
		require.NoError(t, err)
		assert.Equal(t, "Gadget", edited.Name)
		assert.Equal(t, 7.5, edited.Price)
		assert.Equal(t, 4, edited.Stock)
		assert.Equal(t, added.ID, edited.ID)
		assert.Len(t, store.saved, 2)
	})

	t.Run("no such row", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Edit(ctx, 0, "Gadget", "7.5", "4")
		require.ErrorIs(t, err, app.ErrNoSelection)
	})

	t.Run("invalid price leaves row untouched", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Add(ctx, "Widget", "5.0", "10")
		require.NoError(t, err)

		_, err = svc.Edit(ctx, 0, "Gadget", "free", "4")
		require.ErrorIs(t, err, app.ErrInvalidInput)
		assert.Equal(t, "Widget", svc.Products(ctx)[0].Name)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the row at index", func(t *testing.T) {
		svc, store := setup(t)
		_, err := svc.Add(ctx, "Widget", "5.0", "10")
		require.NoError(t, err)
		_, err = svc.Add(ctx, "Gadget", "4.0", "8")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, 0))

		products := svc.Products(ctx)
		require.Len(t, products, 1)
		assert.Equal(t, "Gadget", products[0].Name)
		assert.Len(t, store.saved, 3)
	})

	t.Run("no such row", func(t *testing.T) {
		svc, _ := setup(t)
		require.ErrorIs(t, svc.Delete(ctx, 5), app.ErrNoSelection)
	})
}

func TestDecrementStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	_, err := svc.Add(ctx, "Widget", "5.0", "10")
	require.NoError(t, err)

	t.Run("subtracts from the first matching row", func(t *testing.T) {
		assert.True(t, svc.DecrementStock(ctx, "Widget", 3))
		assert.Equal(t, 7, svc.Products(ctx)[0].Stock)
	})

	t.Run("stock may go negative", func(t *testing.T) {
		assert.True(t, svc.DecrementStock(ctx, "Widget", 9))
		assert.Equal(t, -2, svc.Products(ctx)[0].Stock)
	})

	t.Run("no match leaves inventory alone", func(t *testing.T) {
		assert.False(t, svc.DecrementStock(ctx, "Ghost", 1))
	})
}
