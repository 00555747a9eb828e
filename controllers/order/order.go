package orderControllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Saketh-S5/mobile-store/models"
	"github.com/Saketh-S5/mobile-store/session"
)

// GET /admin_dashboard — every order in the store, newest first.
func AdminDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		s := sessions.Default(c)
		admin, _ := session.Admin(s)
		c.JSON(http.StatusOK, gin.H{
			"admin":   admin,
			"orders":  orders,
			"flashes": session.Flashes(s),
		})
	}
}
