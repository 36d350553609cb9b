package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/lozadandres/EcomercePGSQL/controllers/cart"
	productcontroller "github.com/lozadandres/EcomercePGSQL/controllers/product"
	userControllers "github.com/lozadandres/EcomercePGSQL/controllers/user"
	"github.com/lozadandres/EcomercePGSQL/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the token and
// admin-flag gates.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, uploadDir))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, uploadDir))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.GET("/:id", userControllers.GetUser(db))
			userAdmin.POST("", userControllers.CreateUser(db))
			userAdmin.PUT("/:id", userControllers.UpdateUser(db))
			userAdmin.DELETE("/:id", userControllers.DeleteUser(db))
			userAdmin.POST("/:id/activate", userControllers.SetUserActive(db, true))
			userAdmin.POST("/:id/deactivate", userControllers.SetUserActive(db, false))
		}

		adminGroup.GET("/carts/:user_id", cartControllers.GetUserCart(db))
	}
}
