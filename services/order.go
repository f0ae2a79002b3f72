package services

import (
	"github.com/nearbasket/nearbasket-api/models"
	"gorm.io/gorm"
)

// SelectedItems snapshots the cart lines marked selected at call time,
// returning the lines and their ids. Checkout works from this snapshot: the
// ids are what gets removed from the cart afterwards, whether or not every
// line survives validation into the order.
func SelectedItems(cart *models.Cart) ([]models.CartItem, []uint) {
	var items []models.CartItem
	var ids []uint
	for _, item := range cart.Items {
		if item.Selected {
			items = append(items, item)
			ids = append(ids, item.ID)
		}
	}
	return items, ids
}

// CommitOrder persists the order, decrements stock for every order line, and
// removes the selected cart lines, all in one transaction. The decrement is
// guarded: the WHERE clause refuses to take stock below zero, and a refused
// line returns ErrStockChanged with the whole checkout rolled back.
func CommitOrder(db *gorm.DB, order *models.Order, cartID uint, selectedIDs []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrStockChanged
			}
		}

		// Every selected line leaves the cart, ordered or not. Hard delete so
		// the (cart, product) unique index frees up for re-adds.
		return tx.Unscoped().
			Where("cart_id = ? AND id IN ?", cartID, selectedIDs).
			Delete(&models.CartItem{}).Error
	})
}
