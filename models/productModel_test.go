package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCatalog(t *testing.T) {
	for _, c := range Catalogs {
		assert.True(t, ValidCatalog(c), c)
	}
	assert.False(t, ValidCatalog("grocery"), "catalog names are canonical")
	assert.False(t, ValidCatalog("Electronics"))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CatalogGrocery, "Fruit"))
	assert.True(t, ValidCategory(CatalogFood, "Drinks"))
	assert.True(t, ValidCategory(CatalogMedicine, "Syrup"))
	assert.True(t, ValidCategory(CatalogDairy, "Ghee"))

	assert.False(t, ValidCategory(CatalogGrocery, "Milk"), "subcategory of another catalog")
	assert.False(t, ValidCategory(CatalogDairy, "Fruit"))
	assert.False(t, ValidCategory("Electronics", "Fruit"))
	assert.False(t, ValidCategory(CatalogGrocery, ""))
}

func TestOtherCatalogs(t *testing.T) {
	others := OtherCatalogs(CatalogGrocery)
	assert.Equal(t, []string{CatalogFood, CatalogMedicine, CatalogDairy}, others)
	assert.Len(t, OtherCatalogs("Electronics"), 4, "unknown catalog excludes nothing")
}
