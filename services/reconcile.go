package services

import (
	"errors"

	"github.com/nearbasket/nearbasket-api/models"
)

// Removal reasons reported by cart reconciliation.
const (
	ReasonDeleted          = "deleted"
	ReasonDisabled         = "disabled"
	ReasonOutOfStock       = "out_of_stock"
	ReasonQuantityAdjusted = "quantity_adjusted"
)

// RemovedItem is one entry of the reconciliation report: an item that was
// dropped from the cart, or kept with an adjusted quantity.
type RemovedItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	OldQty int    `json:"oldQty,omitempty"`
	NewQty int    `json:"newQty,omitempty"`
}

// ReconcileResult is the repaired cart plus what changed.
type ReconcileResult struct {
	Items         []models.CartItem `json:"items"`
	Total         float64           `json:"total"`
	SelectedTotal float64           `json:"selectedTotal"`
	Removed       []RemovedItem     `json:"removedItems"`
}

// ReconcileCart re-validates every cart item against the live catalog and
// returns the repaired item list. Items whose product is gone, disabled, or
// out of stock are dropped; quantities are clamped to min(stock, MaxItemQuantity);
// snapshot fields are always refreshed from the live product. The caller is
// responsible for persisting the returned list; reconciliation is not
// read-only.
//
// Running it twice without an intervening catalog change yields the same
// items and an empty second report.
func ReconcileCart(items []models.CartItem, catalog Catalog) (ReconcileResult, error) {
	result := ReconcileResult{
		Items:   make([]models.CartItem, 0, len(items)),
		Removed: []RemovedItem{},
	}

	for _, item := range items {
		product, err := catalog.Product(item.Catalog, item.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			result.Removed = append(result.Removed, RemovedItem{Name: item.Name, Reason: ReasonDeleted})
			continue
		}
		if err != nil {
			return ReconcileResult{}, err
		}
		if !product.IsActive {
			result.Removed = append(result.Removed, RemovedItem{Name: item.Name, Reason: ReasonDisabled})
			continue
		}
		if product.Stock <= 0 {
			result.Removed = append(result.Removed, RemovedItem{Name: item.Name, Reason: ReasonOutOfStock})
			continue
		}

		finalQty := clampQuantity(item.Quantity, product.Stock)
		if finalQty != item.Quantity {
			result.Removed = append(result.Removed, RemovedItem{
				Name:   product.Name,
				Reason: ReasonQuantityAdjusted,
				OldQty: item.Quantity,
				NewQty: finalQty,
			})
			item.Quantity = finalQty
		}

		// Snapshot refresh on every read.
		item.Name = product.Name
		item.ImageUrl = product.ImageUrl
		item.Price = product.Price

		result.Items = append(result.Items, item)
		result.Total += item.Price * float64(item.Quantity)
		if item.Selected {
			result.SelectedTotal += item.Price * float64(item.Quantity)
		}
	}

	return result, nil
}

// clampQuantity bounds a requested quantity by available stock and the
// per-item ceiling.
func clampQuantity(quantity, stock int) int {
	if quantity > stock {
		quantity = stock
	}
	if quantity > MaxItemQuantity {
		quantity = MaxItemQuantity
	}
	return quantity
}
