package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Saketh-S5/mobile-store/controllers/cart"
	productControllers "github.com/Saketh-S5/mobile-store/controllers/product"
	"github.com/Saketh-S5/mobile-store/middleware"
)

// SetupUserRoutes registers the shop pages. All of them require a
// logged-in user session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/", middleware.RequireUser)
	{
		// ──────────────── Catalog ────────────────
		userGroup.GET("/home", productControllers.Home(db))
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))

		// ──────────────── Shopping Cart ────────────────
		userGroup.GET("/add_to_cart/:product_id", cartControllers.AddToCart)
		userGroup.GET("/cart", cartControllers.GetCart(db))
		userGroup.GET("/checkout", cartControllers.Checkout(db))
		userGroup.POST("/process_payment", cartControllers.ProcessPayment(db))
	}
}
