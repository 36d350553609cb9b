package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog reads
	SetupCatalogRoutes(r, db)

	// Cart routes (token-protected, identity from the token)
	SetupCartRoutes(r, db)

	// Admin routes (token + admin gate)
	SetupAdminRoutes(r, db, uploadDir)
}
