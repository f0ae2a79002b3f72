package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber   string                      `json:"orderNumber" gorm:"uniqueIndex"`
	UserID        uint                        `json:"userId" gorm:"index"`
	Items         []OrderItem                 `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipping      datatypes.JSONType[Address] `json:"shipping"`
	PaymentMethod string                      `json:"paymentMethod"`
	TotalAmount   float64                     `json:"totalAmount"`
	Status        string                      `json:"status"`
}

// OrderItem is an immutable snapshot of a product at checkout time. It never
// repoints to the live product record.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"-"`
	ProductID uint    `json:"productId"`
	Catalog   string  `json:"catalog"`
	Name      string  `json:"name"`
	ImageUrl  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
