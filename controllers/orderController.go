package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nearbasket/nearbasket-api/initializers"
	"github.com/nearbasket/nearbasket-api/models"
	"github.com/nearbasket/nearbasket-api/services"
	"github.com/nearbasket/nearbasket-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type shippingInput struct {
	FullName             string `json:"fullName"`
	Phone                string `json:"phone"`
	AddressLine1         string `json:"addressLine1"`
	AddressLine2         string `json:"addressLine2"`
	City                 string `json:"city"`
	State                string `json:"state"`
	Pincode              string `json:"pincode"`
	Landmark             string `json:"landmark"`
	DeliveryInstructions string `json:"deliveryInstructions"`
}

type placeOrderRequest struct {
	AddressID     uint           `json:"addressId"`
	Shipping      *shippingInput `json:"shipping"`
	PaymentMethod string         `json:"paymentMethod"`
}

// resolveShippingAddress picks exactly one address source: a saved address by
// id, or a complete inline address. The two are never merged.
func resolveShippingAddress(userID uint, req placeOrderRequest) (models.Address, int, string) {
	if req.AddressID != 0 {
		var address models.Address
		err := initializers.DB.Where("id = ? AND user_id = ?", req.AddressID, userID).First(&address).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Address{}, http.StatusBadRequest, "Invalid address"
		}
		if err != nil {
			log.Println("Address lookup error:", err)
			return models.Address{}, http.StatusInternalServerError, "Error placing order"
		}
		return address, 0, ""
	}

	if req.Shipping == nil {
		return models.Address{}, http.StatusBadRequest, "Shipping address required"
	}

	address := models.Address{
		UserID:               userID,
		FullName:             req.Shipping.FullName,
		Phone:                req.Shipping.Phone,
		AddressLine1:         req.Shipping.AddressLine1,
		AddressLine2:         req.Shipping.AddressLine2,
		City:                 req.Shipping.City,
		State:                req.Shipping.State,
		Pincode:              req.Shipping.Pincode,
		Landmark:             req.Shipping.Landmark,
		DeliveryInstructions: req.Shipping.DeliveryInstructions,
	}
	if err := services.ValidateShipping(address); err != nil {
		return models.Address{}, http.StatusBadRequest, "Complete delivery address required"
	}
	return address, 0, ""
}

// PlaceOrder checks out the selected cart items: re-validates each against
// live catalog state, then creates the order, decrements stock, and removes
// the selected items from the cart in one transaction.
func PlaceOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req placeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "COD"
	}

	address, status, message := resolveShippingAddress(userID, req)
	if message != "" {
		sendErrorResponse(ctx, status, message)
		return
	}

	cart, err := getCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusBadRequest, "No items selected for checkout")
		return
	}
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error placing order")
		return
	}

	selected, selectedIDs := services.SelectedItems(cart)
	if len(selected) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No items selected for checkout")
		return
	}

	plan, err := services.PlanOrder(selected, services.NewCatalog(initializers.DB))
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"message":       "No orderable items remain",
				"adjustedItems": plan.Adjusted,
			})
			return
		}
		log.Println("Order planning error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error placing order")
		return
	}

	order := models.Order{
		OrderNumber:   uuid.NewString(),
		UserID:        userID,
		Items:         plan.Items,
		Shipping:      datatypes.NewJSONType(address),
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   plan.TotalAmount,
		Status:        models.OrderStatusProcessing,
	}

	if err := services.CommitOrder(initializers.DB, &order, cart.ID, selectedIDs); err != nil {
		if errors.Is(err, services.ErrStockChanged) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Stock changed during checkout, please retry")
			return
		}
		log.Println("Order commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error placing order")
		return
	}

	if err := sendOrderConfirmationEmail(userID, order); err != nil {
		log.Println("Error sending order confirmation email:", err)
		// Continue despite email error, but log it
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":       "Order placed successfully",
		"orderId":       order.ID,
		"orderNumber":   order.OrderNumber,
		"totalAmount":   order.TotalAmount,
		"adjustedItems": plan.Adjusted,
	})
}

func sendOrderConfirmationEmail(userID uint, order models.Order) error {
	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		return err
	}
	return utils.SendOrderConfirmation(user.Email, user.Name, order.OrderNumber, order.TotalAmount)
}

// GetMyOrders lists the authenticated user's orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrders lists all orders for the admin dashboard, paginated.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateOrderStatus applies an admin status change, enforcing the forward-only
// lifecycle.
func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating order status")
		}
		return
	}

	if err := services.TransitionStatus(&order, body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, services.ErrIllegalTransition):
			sendErrorResponse(ctx, http.StatusBadRequest, "Order cannot move from "+order.Status+" to "+body.Status)
		default:
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating order status")
		}
		return
	}

	if result := initializers.DB.Model(&order).Update("status", order.Status); result.Error != nil {
		log.Println("Order status update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully.", "order": order})
}
