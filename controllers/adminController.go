package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/initializers"
	"github.com/nearbasket/nearbasket-api/models"
)

// GetDashboardStats aggregates the headline numbers for the admin dashboard.
// Revenue counts every non-cancelled order.
func GetDashboardStats(ctx *gin.Context) {
	var totalUsers, totalOrders, pendingOrders, deliveredOrders int64
	var totalRevenue float64

	if err := initializers.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Println("Dashboard user count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Dashboard data fetch failed")
		return
	}
	if err := initializers.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		log.Println("Dashboard order count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Dashboard data fetch failed")
		return
	}
	if err := initializers.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusProcessing).
		Count(&pendingOrders).Error; err != nil {
		log.Println("Dashboard pending count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Dashboard data fetch failed")
		return
	}
	if err := initializers.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Count(&deliveredOrders).Error; err != nil {
		log.Println("Dashboard delivered count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Dashboard data fetch failed")
		return
	}

	err := initializers.DB.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue).Error
	if err != nil {
		log.Println("Dashboard revenue error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Dashboard data fetch failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalUsers":      totalUsers,
		"totalOrders":     totalOrders,
		"pendingOrders":   pendingOrders,
		"deliveredOrders": deliveredOrders,
		"totalRevenue":    totalRevenue,
	})
}

// ToggleCatalog enables or disables every product in one catalog at once
// (admin only).
func ToggleCatalog(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	var body struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "isActive flag required")
		return
	}

	result := initializers.DB.Model(&models.Product{}).
		Where("catalog = ?", catalog).
		Update("is_active", *body.IsActive)
	if result.Error != nil {
		log.Println("Catalog toggle error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	state := "disabled"
	if *body.IsActive {
		state = "enabled"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": catalog + " catalog " + state + " successfully"})
}
