package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/initializers"
	"github.com/nearbasket/nearbasket-api/models"
	"github.com/nearbasket/nearbasket-api/services"
	"gorm.io/gorm"
)

// getCart fetches the user's cart with its items. Returns
// gorm.ErrRecordNotFound when the user has no cart yet; carts only come into
// existence on the first add.
func getCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := initializers.DB.Where("user_id = ?", userID).Preload("Items").First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// getOrCreateCart is the add-to-cart path: it creates the empty cart on first
// use.
func getOrCreateCart(userID uint) (*models.Cart, error) {
	cart, err := getCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := models.Cart{UserID: userID}
		if err := initializers.DB.Create(&created).Error; err != nil {
			return nil, err
		}
		return &created, nil
	}
	return cart, err
}

// findCartItem locates one line of the user's cart by item id.
func findCartItem(userID uint, itemID int) (*models.Cart, *models.CartItem, error) {
	cart, err := getCart(userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ID == uint(itemID) {
			return cart, &cart.Items[i], nil
		}
	}
	return cart, nil, nil
}

// AddToCart adds a product to the cart, merging with an existing line for the
// same product.
func AddToCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "productId and quantity required")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding to cart")
		return
	}

	item, err := services.AddItem(cart, body.ProductID, body.Quantity, services.NewCatalog(initializers.DB))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrProductDisabled):
			sendErrorResponse(ctx, http.StatusBadRequest, "Product is currently disabled")
		case errors.Is(err, services.ErrInvalidQuantity):
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		case errors.Is(err, services.ErrQuantityCeiling):
			sendErrorResponse(ctx, http.StatusBadRequest, "Quantity limit per item exceeded")
		case errors.Is(err, services.ErrStockExceeded):
			sendErrorResponse(ctx, http.StatusBadRequest, "Requested quantity exceeds available stock")
		case errors.Is(err, services.ErrInsufficientStock):
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock")
		default:
			log.Println("Cart add error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding to cart")
		}
		return
	}

	if err := initializers.DB.Save(item).Error; err != nil {
		log.Println("Cart item save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": item.Name + " added to cart",
		"cart":    cart,
	})
}

// GetCart reconciles the cart against live catalog state, persists the
// repaired item list, and returns it with totals and the adjustment report.
func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := getCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusOK, services.ReconcileResult{
			Items:   []models.CartItem{},
			Removed: []services.RemovedItem{},
		})
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	result, err := services.ReconcileCart(cart.Items, services.NewCatalog(initializers.DB))
	if err != nil {
		log.Println("Cart reconcile error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	// Persist the repaired list before responding; reconciliation is a write.
	kept := make(map[uint]bool, len(result.Items))
	for _, item := range result.Items {
		kept[item.ID] = true
	}
	var droppedIDs []uint
	for _, item := range cart.Items {
		if !kept[item.ID] {
			droppedIDs = append(droppedIDs, item.ID)
		}
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if len(droppedIDs) > 0 {
			// Hard delete so the (cart, product) unique index frees up for re-adds.
			if err := tx.Unscoped().Where("cart_id = ? AND id IN ?", cart.ID, droppedIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		for i := range result.Items {
			if err := tx.Save(&result.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("Cart persist error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateCartItem sets the quantity on one cart line.
func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		return
	}

	_, item, err := findCartItem(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found in cart")
		return
	}

	if err := services.UpdateItemQuantity(item, body.Quantity, services.NewCatalog(initializers.DB)); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		case errors.Is(err, services.ErrProductNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrInsufficientStock):
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock")
		default:
			log.Println("Cart update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		}
		return
	}

	if err := initializers.DB.Save(item).Error; err != nil {
		log.Println("Cart item save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Quantity updated", "item": item})
}

// RemoveCartItem deletes one cart line. Removing an id that is not in the
// cart is a 404, not a silent success.
func RemoveCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	cart, item, err := findCartItem(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found for this user")
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error removing item from cart")
		return
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found in cart")
		return
	}

	if err := initializers.DB.Unscoped().Delete(item).Error; err != nil {
		log.Println("Cart item delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error removing item from cart")
		return
	}

	var remaining []models.CartItem
	var total float64
	for _, it := range cart.Items {
		if it.ID == item.ID {
			continue
		}
		remaining = append(remaining, it)
		total += it.Price * float64(it.Quantity)
	}
	if remaining == nil {
		remaining = []models.CartItem{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item removed successfully",
		"items":   remaining,
		"total":   total,
	})
}

// ToggleCartItem flips the selected flag on one cart line.
func ToggleCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	_, item, err := findCartItem(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found in cart")
		return
	}

	item.Selected = !item.Selected
	if err := initializers.DB.Model(item).Update("selected", item.Selected).Error; err != nil {
		log.Println("Cart item save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item selection updated", "item": item})
}

// SelectAllCartItems sets the selected flag on every cart line at once.
func SelectAllCartItems(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Selected *bool `json:"selected" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "selected flag required")
		return
	}

	cart, err := getCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}

	if result := initializers.DB.Model(&models.CartItem{}).
		Where("cart_id = ?", cart.ID).
		Update("selected", *body.Selected); result.Error != nil {
		log.Println("Cart select-all error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart selection updated"})
}
