package services

import "errors"

// MaxItemQuantity is the per-line-item quantity ceiling.
const MaxItemQuantity = 10

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductDisabled   = errors.New("product is disabled")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQuantityCeiling   = errors.New("quantity ceiling exceeded")
	ErrStockExceeded     = errors.New("requested quantity exceeds available stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrNoSelectedItems   = errors.New("no items selected for checkout")
	ErrStockChanged      = errors.New("stock changed during checkout")
	ErrEmptyOrder        = errors.New("no orderable items remain")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal order status transition")
)
