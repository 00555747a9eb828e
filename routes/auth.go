package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Saketh-S5/mobile-store/controllers/auth"
)

// SetupAuthRoutes registers the public entry pages and session lifecycle.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", authControllers.Index)

	r.GET("/register", authControllers.ShowRegister)
	r.POST("/register", authControllers.Register(db))

	r.GET("/login", authControllers.ShowLogin)
	r.POST("/login", authControllers.Login(db))

	r.GET("/logout", authControllers.Logout)
}
