package services

import (
	"errors"

	"github.com/nearbasket/nearbasket-api/models"
)

// ReasonUnavailable marks a selected item that could not be ordered at all.
const ReasonUnavailable = "Unavailable / Out of stock"

// AdjustedItem is one entry of the checkout adjustment report.
type AdjustedItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
	OldQty int    `json:"oldQty,omitempty"`
	NewQty int    `json:"newQty,omitempty"`
}

// OrderPlan is the outcome of checkout validation: the line items to order,
// their total, and what had to be adjusted along the way.
type OrderPlan struct {
	Items       []models.OrderItem
	TotalAmount float64
	Adjusted    []AdjustedItem
}

// PlanOrder re-validates the selected cart items against live catalog state
// and produces the order lines. Checkout does not trust prior reconciliation;
// every item is re-read here. Items whose product is missing, disabled, or
// out of stock are dropped and reported, quantities are clamped to
// min(stock, MaxItemQuantity) with an adjustment entry, and the total is
// summed over what survives.
//
// Returns ErrNoSelectedItems when called with nothing, and ErrEmptyOrder when
// validation drops everything. In that case the adjustment report is still
// populated so the caller can tell the user why.
func PlanOrder(selected []models.CartItem, catalog Catalog) (OrderPlan, error) {
	plan := OrderPlan{Adjusted: []AdjustedItem{}}
	if len(selected) == 0 {
		return plan, ErrNoSelectedItems
	}

	for _, item := range selected {
		product, err := catalog.Product(item.Catalog, item.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			plan.Adjusted = append(plan.Adjusted, AdjustedItem{Name: item.Name, Reason: ReasonUnavailable})
			continue
		}
		if err != nil {
			return OrderPlan{}, err
		}
		if !product.IsActive || product.Stock <= 0 {
			plan.Adjusted = append(plan.Adjusted, AdjustedItem{Name: item.Name, Reason: ReasonUnavailable})
			continue
		}

		finalQty := clampQuantity(item.Quantity, product.Stock)
		if finalQty <= 0 {
			continue
		}
		if finalQty != item.Quantity {
			plan.Adjusted = append(plan.Adjusted, AdjustedItem{
				Name:   item.Name,
				OldQty: item.Quantity,
				NewQty: finalQty,
			})
		}

		plan.Items = append(plan.Items, models.OrderItem{
			ProductID: item.ProductID,
			Catalog:   item.Catalog,
			Name:      item.Name,
			ImageUrl:  item.ImageUrl,
			Price:     item.Price,
			Quantity:  finalQty,
		})
		plan.TotalAmount += item.Price * float64(finalQty)
	}

	if len(plan.Items) == 0 {
		return plan, ErrEmptyOrder
	}
	return plan, nil
}

// ValidateShipping checks that an inline shipping address carries every
// mandatory field.
func ValidateShipping(address models.Address) error {
	if address.FullName == "" || address.Phone == "" || address.AddressLine1 == "" ||
		address.City == "" || address.State == "" || address.Pincode == "" {
		return ErrIncompleteAddress
	}
	return nil
}
