package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/initializers"
	"github.com/nearbasket/nearbasket-api/models"
	"gorm.io/gorm"
)

// GetProfile returns the authenticated user without the password hash.
func GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if err := initializers.DB.Preload("Addresses").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching profile")
		}
		return
	}

	user.Password = ""
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates name and phone on the authenticated user.
func UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}

	if len(updates) > 0 {
		if result := initializers.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates); result.Error != nil {
			log.Println("Profile update error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating profile")
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated"})
}

// ChangePassword verifies the old password before storing a new hash.
func ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error changing password")
		return
	}

	if err := comparePasswords(user.Password, body.OldPassword); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Old password incorrect")
		return
	}

	hashedPassword, err := hashPassword(body.NewPassword)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error changing password")
		return
	}

	if result := initializers.DB.Model(&user).Update("password", hashedPassword); result.Error != nil {
		log.Println("Password update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error changing password")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password updated"})
}

func userAddresses(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := initializers.DB.Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	return addresses, err
}

// AddAddress appends a saved address. The first address becomes the default;
// a later address posted with isDefault=true takes the flag over.
func AddAddress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var address models.Address
	if err := ctx.ShouldBindJSON(&address); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	address.ID = 0
	address.UserID = userID

	var count int64
	if err := initializers.DB.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding address")
		return
	}
	if count == 0 {
		address.IsDefault = true
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault && count > 0 {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		log.Println("Address create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding address")
		return
	}

	addresses, err := userAddresses(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address added", "addresses": addresses})
}

// GetAddresses lists the authenticated user's saved addresses.
func GetAddresses(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addresses, err := userAddresses(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching addresses")
		return
	}

	ctx.JSON(http.StatusOK, addresses)
}

// UpdateAddress replaces the fields of one saved address.
func UpdateAddress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse address id")
		return
	}

	var body models.Address
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var address models.Address
	if err := initializers.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating address")
		}
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if body.IsDefault && !address.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(map[string]any{
			"full_name":             body.FullName,
			"phone":                 body.Phone,
			"address_line1":         body.AddressLine1,
			"address_line2":         body.AddressLine2,
			"city":                  body.City,
			"state":                 body.State,
			"pincode":               body.Pincode,
			"landmark":              body.Landmark,
			"delivery_instructions": body.DeliveryInstructions,
			"is_default":            body.IsDefault || address.IsDefault,
		}).Error
	})
	if err != nil {
		log.Println("Address update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating address")
		return
	}

	addresses, err := userAddresses(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address updated", "addresses": addresses})
}

// DeleteAddress removes one saved address.
func DeleteAddress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse address id")
		return
	}

	result := initializers.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.Address{})
	if result.Error != nil {
		log.Println("Address delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error deleting address")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		return
	}

	addresses, err := userAddresses(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error deleting address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address deleted", "addresses": addresses})
}

// SetDefaultAddress clears every default flag for the user and sets the one
// address, so exactly one default survives the operation.
func SetDefaultAddress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse address id")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		} else {
			log.Println("Set default address error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error setting default address")
		}
		return
	}

	addresses, err := userAddresses(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error setting default address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Default address set", "addresses": addresses})
}
