package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"-" gorm:"uniqueIndex:idx_cart_product"`
	ProductID uint    `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Catalog   string  `json:"catalog" gorm:"uniqueIndex:idx_cart_product"`
	Name      string  `json:"name"`     // snapshot
	ImageUrl  string  `json:"imageUrl"` // snapshot
	Price     float64 `json:"price"`    // snapshot
	Quantity  int     `json:"quantity"`
	Selected  bool    `json:"selected" gorm:"default:true"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
