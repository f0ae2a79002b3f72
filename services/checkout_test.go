package services

import (
	"testing"

	"github.com/nearbasket/nearbasket-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOrder_NothingSelected(t *testing.T) {
	_, err := PlanOrder(nil, newFakeCatalog())
	require.ErrorIs(t, err, ErrNoSelectedItems)
}

func TestPlanOrder_BuildsSnapshotLines(t *testing.T) {
	catalog := newFakeCatalog(
		product(1, models.CatalogGrocery, "Apples", 80, 10, true),
		product(2, models.CatalogDairy, "Milk", 25, 10, true),
	)

	selected := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 2, true),
		cartItem(2, 2, models.CatalogDairy, "Milk", 25, 4, true),
	}

	plan, err := PlanOrder(selected, catalog)
	require.NoError(t, err)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, uint(1), plan.Items[0].ProductID)
	assert.Equal(t, "Apples", plan.Items[0].Name)
	assert.Equal(t, 2, plan.Items[0].Quantity)
	assert.Equal(t, 80.0*2+25.0*4, plan.TotalAmount)
	assert.Empty(t, plan.Adjusted)
}

func TestPlanOrder_DropsUnavailableWithoutAborting(t *testing.T) {
	catalog := newFakeCatalog(
		product(2, models.CatalogFood, "Biscuits", 30, 10, false),
		product(3, models.CatalogDairy, "Milk", 25, 0, true),
		product(4, models.CatalogGrocery, "Apples", 80, 10, true),
	)

	selected := []models.CartItem{
		cartItem(1, 1, models.CatalogGrocery, "Ghost", 10, 1, true),
		cartItem(2, 2, models.CatalogFood, "Biscuits", 30, 2, true),
		cartItem(3, 3, models.CatalogDairy, "Milk", 25, 1, true),
		cartItem(4, 4, models.CatalogGrocery, "Apples", 80, 2, true),
	}

	plan, err := PlanOrder(selected, catalog)
	require.NoError(t, err)

	require.Len(t, plan.Items, 1)
	assert.Equal(t, uint(4), plan.Items[0].ProductID)
	assert.Equal(t, 80.0*2, plan.TotalAmount)

	require.Len(t, plan.Adjusted, 3)
	for i, name := range []string{"Ghost", "Biscuits", "Milk"} {
		assert.Equal(t, name, plan.Adjusted[i].Name)
		assert.Equal(t, ReasonUnavailable, plan.Adjusted[i].Reason)
	}
}

func TestPlanOrder_ClampsQuantityAndReports(t *testing.T) {
	// Stock 3, cart quantity 5: the order carries 3 and reports the change.
	catalog := newFakeCatalog(product(1, models.CatalogGrocery, "Apples", 80, 3, true))
	selected := []models.CartItem{cartItem(1, 1, models.CatalogGrocery, "Apples", 80, 5, true)}

	plan, err := PlanOrder(selected, catalog)
	require.NoError(t, err)

	require.Len(t, plan.Items, 1)
	assert.Equal(t, 3, plan.Items[0].Quantity)
	assert.Equal(t, 80.0*3, plan.TotalAmount)

	require.Len(t, plan.Adjusted, 1)
	assert.Equal(t, AdjustedItem{Name: "Apples", OldQty: 5, NewQty: 3}, plan.Adjusted[0])

	// Never more than the stock seen at validation time.
	assert.LessOrEqual(t, plan.Items[0].Quantity, 3)
}

func TestPlanOrder_EmptyOrderStillReports(t *testing.T) {
	catalog := newFakeCatalog(product(1, models.CatalogFood, "Biscuits", 30, 0, true))
	selected := []models.CartItem{cartItem(1, 1, models.CatalogFood, "Biscuits", 30, 2, true)}

	plan, err := PlanOrder(selected, catalog)
	require.ErrorIs(t, err, ErrEmptyOrder)
	assert.Empty(t, plan.Items)
	require.Len(t, plan.Adjusted, 1)
	assert.Equal(t, ReasonUnavailable, plan.Adjusted[0].Reason)
}

func TestValidateShipping(t *testing.T) {
	complete := models.Address{
		FullName:     "A Kumar",
		Phone:        "9999999999",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "MH",
		Pincode:      "411001",
	}

	require.NoError(t, ValidateShipping(complete))

	tests := []struct {
		name   string
		mutate func(*models.Address)
	}{
		{"missing full name", func(a *models.Address) { a.FullName = "" }},
		{"missing phone", func(a *models.Address) { a.Phone = "" }},
		{"missing address line", func(a *models.Address) { a.AddressLine1 = "" }},
		{"missing city", func(a *models.Address) { a.City = "" }},
		{"missing state", func(a *models.Address) { a.State = "" }},
		{"missing pincode", func(a *models.Address) { a.Pincode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := complete
			tt.mutate(&address)
			require.ErrorIs(t, ValidateShipping(address), ErrIncompleteAddress)
		})
	}
}
