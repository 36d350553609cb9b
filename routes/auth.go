package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/lozadandres/EcomercePGSQL/controllers/auth"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", authControllers.Register(db))
	r.POST("/login", authControllers.Login(db))
}
