package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Saketh-S5/mobile-store/models"
	"github.com/Saketh-S5/mobile-store/session"
)

type PaymentInput struct {
	Name    string `form:"name" binding:"required"`
	Card    string `form:"card"`
	Expiry  string `form:"expiry"`
	Phone   string `form:"phone" binding:"required"`
	Address string `form:"address" binding:"required"`
}

// resolveCart looks up every cart id against the catalog. Ids that no
// longer resolve are dropped without comment. The total always reflects
// current catalog prices, never the price at add-to-cart time.
func resolveCart(db *gorm.DB, ids []uint) ([]models.Product, float64) {
	var items []models.Product
	var total float64
	for _, id := range ids {
		var p models.Product
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			continue // stale reference
		}
		items = append(items, p)
		total += p.Price
	}
	return items, total
}

// GET /add_to_cart/:product_id — appends the id as-is. Duplicates are how
// quantity works; validity is only checked when the cart is rendered.
func AddToCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	s := sessions.Default(c)
	cart := append(session.Cart(s), uint(id))
	s.Set(session.CartKey, cart)
	s.AddFlash(session.Flash{Level: "success", Message: "Added to cart."})
	if err := s.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		items, total := resolveCart(db, session.Cart(s))
		c.JSON(http.StatusOK, gin.H{
			"cart":    items,
			"total":   total,
			"flashes": session.Flashes(s),
		})
	}
}

// GET /checkout — renders the resolved cart for the payment form.
// An empty cart bounces back home instead of proceeding.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		ids := session.Cart(s)
		if len(ids) == 0 {
			s.AddFlash(session.Flash{Level: "warning", Message: "Cart is empty."})
			_ = s.Save()
			c.Redirect(http.StatusFound, "/home")
			return
		}

		items, total := resolveCart(db, ids)
		c.JSON(http.StatusOK, gin.H{
			"cart":    items,
			"total":   total,
			"flashes": session.Flashes(s),
		})
	}
}

// POST /process_payment — materializes the order at current prices and
// empties the cart. Card details are accepted and discarded; no gateway.
func ProcessPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		user, _ := session.User(s)

		var input PaymentInput
		if err := c.ShouldBind(&input); err != nil {
			s.AddFlash(session.Flash{Level: "danger", Message: "Enter name, phone and address."})
			_ = s.Save()
			c.Redirect(http.StatusFound, "/checkout")
			return
		}

		items, total := resolveCart(db, session.Cart(s))

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, p := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Price:       p.Price,
			})
		}

		order := models.Order{
			Username:  user,
			Name:      input.Name,
			Phone:     input.Phone,
			Address:   input.Address,
			Total:     total,
			Reference: orderReference(),
			Items:     orderItems,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		s.Delete(session.CartKey)
		if err := s.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// orderReference generates a unique order reference, e.g. 20250908130500-<uuid>.
func orderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
