package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the NearBasket API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account

USER
- GET "/api/users/me" - Get profile
- PUT "/api/users/update" - Update profile
- PUT "/api/users/change-password" - Change password
- POST "/api/users/address" - Add address
- GET "/api/users/address" - List addresses
- PUT "/api/users/address/:id" - Update address
- DELETE "/api/users/address/:id" - Delete address
- PUT "/api/users/address/default/:id" - Set default address

CATALOG (grocery | food | medicine | dairy)
- GET "/api/catalog/:catalog" - List active products
- GET "/api/catalog/:catalog/:id" - Get product by ID
- GET "/api/catalog/:catalog/category/:type" - List by subcategory
- POST "/api/catalog/:catalog/add" - Add product (admin)
- PUT "/api/catalog/:catalog/:id" - Update product (admin)
- DELETE "/api/catalog/:catalog/:id" - Delete product (admin)
- POST "/api/products/images" - Upload product images (admin)

CART
- POST "/api/cart/add" - Add item to cart
- GET "/api/cart" - View cart (reconciled)
- PUT "/api/cart/update/:itemId" - Update item quantity
- DELETE "/api/cart/remove/:itemId" - Remove item
- PUT "/api/cart/toggle/:itemId" - Toggle item selection
- PUT "/api/cart/select-all" - Select or deselect all items

ORDER
- POST "/api/orders/place" - Place order from selected cart items
- GET "/api/orders/my" - Get my orders
- GET "/api/orders" - Get all orders (admin)
- PUT "/api/orders/:id/status" - Update order status (admin)

ADMIN
- GET "/api/admin/dashboard" - Dashboard stats
- PUT "/api/admin/category/:catalog/enable-disable" - Toggle a whole catalog`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
