package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Saketh-S5/mobile-store/controllers/auth"
	orderControllers "github.com/Saketh-S5/mobile-store/controllers/order"
	"github.com/Saketh-S5/mobile-store/middleware"
)

// SetupAdminRoutes registers the admin login pages and the order
// dashboard. The admin identity is a separate session field, so an admin
// and a regular user can be logged in side by side in one browser.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/admin_login", authControllers.ShowAdminLogin)
	r.POST("/admin_login", authControllers.AdminLogin(db))
	r.GET("/admin_logout", authControllers.AdminLogout)

	adminGroup := r.Group("/", middleware.RequireAdmin)
	{
		adminGroup.GET("/admin_dashboard", orderControllers.AdminDashboard(db))
	}
}
