package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	Password  string    `json:"password" binding:"required,min=6"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Addresses []Address `json:"addresses" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Address is a saved delivery address. Orders embed a copy of the chosen
// address rather than referencing these rows.
type Address struct {
	gorm.Model
	UserID               uint   `json:"-" gorm:"index"`
	FullName             string `json:"fullName" binding:"required"`
	Phone                string `json:"phone" binding:"required"`
	AddressLine1         string `json:"addressLine1" binding:"required"`
	AddressLine2         string `json:"addressLine2"`
	City                 string `json:"city" binding:"required"`
	State                string `json:"state" binding:"required"`
	Pincode              string `json:"pincode" binding:"required"`
	Landmark             string `json:"landmark"`
	DeliveryInstructions string `json:"deliveryInstructions"`
	IsDefault            bool   `json:"isDefault"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
