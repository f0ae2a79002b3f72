package services

import (
	"testing"

	"github.com/nearbasket/nearbasket-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileCart_DropsMissingDisabledAndOutOfStock(t *testing.T) {
	catalog := newFakeCatalog(
		product(2, models.CatalogFood, "Biscuits", 30, 10, false),
		product(3, models.CatalogDairy, "Milk", 25, 0, true),
		product(4, models.CatalogGrocery, "Apples", 80, 10, true),
	)

	items := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Ghost", 10, 1, true),
		cartItem(2, 2, models.CatalogFood, "Biscuits", 30, 2, true),
		cartItem(3, 3, models.CatalogDairy, "Milk", 25, 1, true),
		cartItem(4, 4, models.CatalogGrocery, "Apples", 80, 2, true),
	}

	result, err := ReconcileCart(items, catalog)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, uint(4), result.Items[0].ProductID)

	// Report follows cart iteration order.
	require.Len(t, result.Removed, 3)
	assert.Equal(t, RemovedItem{Name: "Ghost", Reason: ReasonDeleted}, result.Removed[0])
	assert.Equal(t, RemovedItem{Name: "Biscuits", Reason: ReasonDisabled}, result.Removed[1])
	assert.Equal(t, RemovedItem{Name: "Milk", Reason: ReasonOutOfStock}, result.Removed[2])
}

func TestReconcileCart_ClampsQuantityToStockAndCeiling(t *testing.T) {
	catalog := newFakeCatalog(
		product(1, models.CatalogGrocery, "Apples", 80, 3, true),
		product(2, models.CatalogFood, "Rice", 60, 100, true),
	)

	items := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 5, true),
		cartItem(2, 2, models.CatalogFood, "Rice", 60, 15, true),
	}

	result, err := ReconcileCart(items, catalog)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	assert.Equal(t, 3, result.Items[0].Quantity)
	assert.Equal(t, MaxItemQuantity, result.Items[1].Quantity)

	require.Len(t, result.Removed, 2)
	assert.Equal(t, RemovedItem{Name: "Apples", Reason: ReasonQuantityAdjusted, OldQty: 5, NewQty: 3}, result.Removed[0])
	assert.Equal(t, RemovedItem{Name: "Rice", Reason: ReasonQuantityAdjusted, OldQty: 15, NewQty: MaxItemQuantity}, result.Removed[1])

	for _, item := range result.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, MaxItemQuantity)
	}
}

func TestReconcileCart_RefreshesSnapshotOnRead(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogMedicine, "Paracetamol", 45, 20, true))

	stale := cartItem(1, 1, models.CatalogMedicine, "Old name", 30, 2, true)
	stale.ImageUrl = "https://img.example.com/old.jpg"

	result, err := ReconcileCart([]models.CartItem{stale}, catalog)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, "Paracetamol", item.Name)
	assert.Equal(t, 45.0, item.Price)
	assert.Equal(t, "https://img.example.com/Paracetamol.jpg", item.ImageUrl)
	assert.Empty(t, result.Removed)
}

func TestReconcileCart_Totals(t *testing.T) {
	catalog := newFakeCatalog(
		product(1, models.CatalogGrocery, "Apples", 80, 10, true),
		product(2, models.CatalogDairy, "Milk", 25, 10, true),
	)

	items := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 2, true),
		cartItem(2, 2, models.CatalogDairy, "Milk", 25, 4, false),
	}

	result, err := ReconcileCart(items, catalog)
	require.NoError(t, err)

	assert.Equal(t, 80.0*2+25.0*4, result.Total)
	assert.Equal(t, 80.0*2, result.SelectedTotal)
	assert.LessOrEqual(t, result.SelectedTotal, result.Total)

	// With everything selected the two totals coincide.
	items[1].Selected = true
	result, err = ReconcileCart(items, catalog)
	require.NoError(t, err)
	assert.Equal(t, result.Total, result.SelectedTotal)
}

func TestReconcileCart_Idempotent(t *testing.T) {
	catalog := newFakeCatalog(
		product(1, models.CatalogGrocery, "Apples", 80, 3, true),
		product(2, models.CatalogFood, "Biscuits", 30, 10, false),
		product(3, models.CatalogDairy, "Milk", 25, 10, true),
	)

	items := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 5, true),
		cartItem(2, 2, models.CatalogFood, "Biscuits", 30, 2, true),
		cartItem(3, 3, models.CatalogDairy, "Milk", 20, 4, false),
	}

	first, err := ReconcileCart(items, catalog)
	require.NoError(t, err)
	require.NotEmpty(t, first.Removed)

	second, err := ReconcileCart(first.Items, catalog)
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.SelectedTotal, second.SelectedTotal)
	assert.Empty(t, second.Removed)
}

func TestReconcileCart_EmptyCart(t *testing.T) {
	result, err := ReconcileCart(nil, newFakeCatalog())
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Removed)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.SelectedTotal)
}
