package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/initializers"
	"github.com/nearbasket/nearbasket-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// catalogFromParam normalizes the :catalog path segment ("grocery", "Dairy",
// ...) to its canonical catalog name.
func catalogFromParam(ctx *gin.Context) (string, bool) {
	param := strings.ToLower(ctx.Param("catalog"))
	for _, c := range models.Catalogs {
		if strings.ToLower(c) == param {
			return c, true
		}
	}
	return "", false
}

// ListProducts returns every active product in one catalog. An empty catalog
// answers with a suggestion to browse the others.
func ListProducts(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	var products []models.Product
	result := initializers.DB.Where("catalog = ? AND is_active = ?", catalog, true).Find(&products)
	if result.Error != nil {
		log.Println("Product fetch error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	if len(products) == 0 {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "No products available in " + catalog,
			"suggest": models.OtherCatalogs(catalog),
			"items":   []models.Product{},
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": products})
}

// GetProduct returns a single active product from one catalog.
func GetProduct(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.Where("catalog = ?", catalog).First(&product, productID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Item not found or disabled")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error fetching item", result.Error)
		}
		return
	}
	if !product.IsActive {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found or disabled")
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListProductsByCategory returns the active products of one subcategory.
func ListProductsByCategory(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	categoryType := ctx.Param("type")
	if !models.ValidCategory(catalog, categoryType) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category type")
		return
	}

	var products []models.Product
	result := initializers.DB.
		Where("catalog = ? AND category = ? AND is_active = ?", catalog, categoryType, true).
		Find(&products)
	if result.Error != nil {
		log.Println("Product fetch error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load items by category")
		return
	}

	if len(products) == 0 {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "No " + categoryType + " items available",
			"suggest": models.OtherCatalogs(catalog),
			"items":   []models.Product{},
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": products})
}

// CreateProduct adds a product to one catalog (admin only).
func CreateProduct(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !models.ValidCategory(catalog, product.Category) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category type")
		return
	}

	product.ID = 0
	product.Catalog = catalog
	product.IsActive = true

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error adding item", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct updates fields of one product, including enable/disable
// (admin only).
func UpdateProduct(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var body struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price"`
		ImageUrl *string  `json:"imageUrl"`
		Stock    *int     `json:"stock"`
		Category *string  `json:"category"`
		IsActive *bool    `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if body.Category != nil && !models.ValidCategory(catalog, *body.Category) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category type")
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if body.ImageUrl != nil {
		updates["image_url"] = *body.ImageUrl
	}
	if body.Stock != nil {
		updates["stock"] = *body.Stock
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	result := initializers.DB.Model(&models.Product{}).
		Where("id = ? AND catalog = ?", productID, catalog).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productID).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating item", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from its catalog (admin only). Orders keep
// their own snapshots, so deleting is safe for order history.
func DeleteProduct(ctx *gin.Context) {
	catalog, ok := catalogFromParam(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid catalog")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Where("catalog = ?", catalog).Delete(&models.Product{}, productID)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item deleted"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages uploads product images to S3 and returns their public
// URLs, to be used as imageUrl on catalog items (admin only).
func UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		respondWithError(ctx, http.StatusInternalServerError, "Image storage is not configured", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key to prevent overwrites
		uniqueFilename := fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
