package services

import (
	"errors"

	"github.com/nearbasket/nearbasket-api/models"
	"gorm.io/gorm"
)

// Catalog is the read surface the cart and checkout engines need from the
// product store. Product ids live in one shared id space across all four
// catalogs, so a bare id lookup is unambiguous.
type Catalog interface {
	// ProductByID returns the product with the given id regardless of
	// catalog, or ErrProductNotFound.
	ProductByID(id uint) (*models.Product, error)
	// Product returns the product with the given id if it belongs to the
	// given catalog, or ErrProductNotFound.
	Product(catalog string, id uint) (*models.Product, error)
}

type gormCatalog struct {
	db *gorm.DB
}

// NewCatalog wraps a gorm handle in the Catalog interface.
func NewCatalog(db *gorm.DB) Catalog {
	return &gormCatalog{db: db}
}

func (c *gormCatalog) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := c.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (c *gormCatalog) Product(catalog string, id uint) (*models.Product, error) {
	product, err := c.ProductByID(id)
	if err != nil {
		return nil, err
	}
	if product.Catalog != catalog {
		return nil, ErrProductNotFound
	}
	return product, nil
}
