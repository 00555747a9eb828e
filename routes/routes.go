package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (session-protected)
	SetupUserRoutes(r, db)

	// Admin routes (admin-session-protected)
	SetupAdminRoutes(r, db)
}
