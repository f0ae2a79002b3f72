package services

import (
	"github.com/nearbasket/nearbasket-api/models"
	"gorm.io/gorm"
)

// fakeCatalog is an in-memory Catalog for exercising the cart and checkout
// engines without a database.
type fakeCatalog struct {
	products map[uint]models.Product
}

func newFakeCatalog(products ...models.Product) *fakeCatalog {
	catalog := &fakeCatalog{products: make(map[uint]models.Product)}
	for _, p := range products {
		catalog.products[p.ID] = p
	}
	return catalog
}

func (f *fakeCatalog) ProductByID(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) Product(catalog string, id uint) (*models.Product, error) {
	p, err := f.ProductByID(id)
	if err != nil {
		return nil, err
	}
	if p.Catalog != catalog {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func product(id uint, catalog, name string, price float64, stock int, active bool) models.Product {
	return models.Product{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Price:    price,
		ImageUrl: "https://img.example.com/" + name + ".jpg",
		Stock:    stock,
		Catalog:  catalog,
		Category: models.CatalogCategories[catalog][0],
		IsActive: active,
	}
}

func cartItem(id, productID uint, catalog, name string, price float64, quantity int, selected bool) models.CartItem {
	return models.CartItem{
		Model:     gorm.Model{ID: id},
		ProductID: productID,
		Catalog:   catalog,
		Name:      name,
		ImageUrl:  "https://img.example.com/" + name + ".jpg",
		Price:     price,
		Quantity:  quantity,
		Selected:  selected,
	}
}
