package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/lozadandres/EcomercePGSQL/controllers/product"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public storefront reads.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetProductsByCategory(db))
}
