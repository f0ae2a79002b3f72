package services

import (
	"testing"

	"github.com/nearbasket/nearbasket-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddItem_NewLine(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogGrocery, "Apples", 80, 20, true))
	cart := &models.Cart{Model: gorm.Model{ID: 7}, UserID: 1}

	item, err := AddItem(cart, 1, 2, catalog)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	assert.Equal(t, uint(7), item.CartID)
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, models.CatalogGrocery, item.Catalog)
	assert.Equal(t, "Apples", item.Name)
	assert.Equal(t, 80.0, item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Selected, "new lines are selected by default")
}

func TestAddItem_MergeIncrementsAndRefreshesSnapshot(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogGrocery, "Apples", 90, 20, true))
	cart := &models.Cart{
		Items: []models.CartItem{cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 3, false)},
	}

	item, err := AddItem(cart, 1, 2, catalog)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 90.0, item.Price, "snapshot price refreshed on add")
	assert.False(t, item.Selected, "merge does not touch the selected flag")
}

func TestAddItem_MergeRejectsQuantityCeiling(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogGrocery, "Apples", 80, 20, true))
	cart := &models.Cart{}

	_, err := AddItem(cart, 1, 7, catalog)
	require.NoError(t, err)

	_, err = AddItem(cart, 1, 5, catalog)
	require.ErrorIs(t, err, ErrQuantityCeiling)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity, "cart stays untouched on rejection")
}

func TestAddItem_MergeRejectsStockExceeded(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogDairy, "Milk", 25, 4, true))
	cart := &models.Cart{
		Items: []models.CartItem{cartItem(1, 1, models.CatalogDairy, "Milk", 25, 2, true)},
	}

	_, err := AddItem(cart, 1, 3, catalog)
	require.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItem_Errors(t *testing.T) {
	catalog := newFakeCatalog(
		product(1, models.CatalogGrocery, "Apples", 80, 3, true),
		product(2, models.CatalogFood, "Biscuits", 30, 10, false),
	)

	tests := []struct {
		name      string
		productID uint
		quantity  int
		wantErr   error
	}{
		{"unknown product", 99, 1, ErrProductNotFound},
		{"disabled product", 2, 1, ErrProductDisabled},
		{"insufficient stock", 1, 4, ErrInsufficientStock},
		{"zero quantity", 1, 0, ErrInvalidQuantity},
		{"negative quantity", 1, -2, ErrInvalidQuantity},
		{"over ceiling on fresh add", 1, 11, ErrQuantityCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &models.Cart{}
			_, err := AddItem(cart, tt.productID, tt.quantity, catalog)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogGrocery, "Apples", 80, 5, true))

	tests := []struct {
		name     string
		quantity int
		wantErr  error
	}{
		{"below minimum", 0, ErrInvalidQuantity},
		{"above ceiling", 11, ErrInvalidQuantity},
		{"beyond stock", 6, ErrInsufficientStock},
		{"valid", 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 2, true)
			err := UpdateItemQuantity(&item, tt.quantity, catalog)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 2, item.Quantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, item.Quantity)
		})
	}
}

func TestUpdateItemQuantity_ProductGone(t *testing.T) {
	item := cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 2, true)
	err := UpdateItemQuantity(&item, 3, newFakeCatalog())
	require.ErrorIs(t, err, ErrProductNotFound)
}
