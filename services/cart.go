package services

import "github.com/nearbasket/nearbasket-api/models"

// AddItem adds quantity units of a product to the cart, merging with an
// existing line for the same (product, catalog) pair. The merged total is
// re-validated against both the per-item ceiling and live stock; either
// violation leaves the cart untouched. New lines are selected by default and
// every add refreshes the snapshot fields from the live product. The returned
// item points into cart.Items.
func AddItem(cart *models.Cart, productID uint, quantity int, catalog Catalog) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductDisabled
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductID != productID || item.Catalog != product.Catalog {
			continue
		}
		newQty := item.Quantity + quantity
		if newQty > MaxItemQuantity {
			return nil, ErrQuantityCeiling
		}
		if product.Stock < newQty {
			return nil, ErrStockExceeded
		}
		item.Quantity = newQty
		item.Name = product.Name
		item.ImageUrl = product.ImageUrl
		item.Price = product.Price
		return item, nil
	}

	if quantity > MaxItemQuantity {
		return nil, ErrQuantityCeiling
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	cart.Items = append(cart.Items, models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Catalog:   product.Catalog,
		Name:      product.Name,
		ImageUrl:  product.ImageUrl,
		Price:     product.Price,
		Quantity:  quantity,
		Selected:  true,
	})
	return &cart.Items[len(cart.Items)-1], nil
}

// UpdateItemQuantity sets a cart line to an exact quantity after checking the
// ceiling and live stock.
func UpdateItemQuantity(item *models.CartItem, quantity int, catalog Catalog) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return ErrInvalidQuantity
	}
	product, err := catalog.Product(item.Catalog, item.ProductID)
	if err != nil {
		return err
	}
	if product.Stock < quantity {
		return ErrInsufficientStock
	}
	item.Quantity = quantity
	return nil
}
