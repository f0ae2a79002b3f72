package models

import "gorm.io/gorm"

// Catalog names. The original storefront kept four separate product
// collections; here they share one table with a catalog discriminant,
// which also gives product ids a single shared id space.
const (
	CatalogGrocery  = "Grocery"
	CatalogFood     = "Food"
	CatalogMedicine = "Medicine"
	CatalogDairy    = "Dairy"
)

// Catalogs lists every catalog in its fixed priority order.
var Catalogs = []string{CatalogGrocery, CatalogFood, CatalogMedicine, CatalogDairy}

// CatalogCategories maps a catalog to its allowed subcategories.
var CatalogCategories = map[string][]string{
	CatalogGrocery:  {"Fruit", "Vegetable", "Grain"},
	CatalogFood:     {"Food", "Drinks", "Sweets"},
	CatalogMedicine: {"Tablet", "Syrup", "Ointment"},
	CatalogDairy:    {"Milk", "Ghee", "Sweet"},
}

type Product struct {
	gorm.Model
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	ImageUrl string  `json:"imageUrl" binding:"required"`
	Stock    int     `json:"stock" binding:"gte=0"`
	Catalog  string  `json:"catalog" gorm:"index"`
	Category string  `json:"category" binding:"required"`
	IsActive bool    `json:"isActive" gorm:"default:true"`
}

// ValidCatalog reports whether name is one of the four catalogs.
func ValidCatalog(name string) bool {
	_, ok := CatalogCategories[name]
	return ok
}

// ValidCategory reports whether category is an allowed subcategory of catalog.
func ValidCategory(catalog, category string) bool {
	for _, c := range CatalogCategories[catalog] {
		if c == category {
			return true
		}
	}
	return false
}

// OtherCatalogs returns every catalog except the given one, used for the
// "nothing here, try these" suggestion on empty listings.
func OtherCatalogs(catalog string) []string {
	others := make([]string, 0, len(Catalogs)-1)
	for _, c := range Catalogs {
		if c != catalog {
			others = append(others, c)
		}
	}
	return others
}
