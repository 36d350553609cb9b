package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/lozadandres/EcomercePGSQL/controllers/cart"
	"github.com/lozadandres/EcomercePGSQL/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the per-user cart endpoints. The cart is always
// the authenticated user's own; admins view other carts through /admin.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.PUT("", cartControllers.UpdateCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
		cart.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
	}
}
