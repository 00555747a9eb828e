package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Saketh-S5/mobile-store/models"
	"github.com/Saketh-S5/mobile-store/session"
)

type CredentialsInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// GET /
func Index(c *gin.Context) {
	s := sessions.Default(c)
	if _, ok := session.User(s); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// GET /register
func ShowRegister(c *gin.Context) {
	s := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"page":    "register",
		"flashes": session.Flashes(s),
	})
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)

		var input CredentialsInput
		if err := c.ShouldBind(&input); err != nil || strings.TrimSpace(input.Username) == "" {
			s.AddFlash(session.Flash{Level: "danger", Message: "Enter username and password."})
			_ = s.Save()
			c.Redirect(http.StatusFound, "/register")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Username: strings.TrimSpace(input.Username),
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				s.AddFlash(session.Flash{Level: "danger", Message: "Username already exists. Choose another."})
				_ = s.Save()
				c.JSON(http.StatusConflict, gin.H{
					"page":    "register",
					"flashes": session.Flashes(s),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		s.AddFlash(session.Flash{Level: "success", Message: "Registration successful. Please log in."})
		_ = s.Save()
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func ShowLogin(c *gin.Context) {
	s := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"page":    "login",
		"flashes": session.Flashes(s),
	})
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)

		var input CredentialsInput
		if err := c.ShouldBind(&input); err != nil {
			invalidCredentials(c, s, "login", "Invalid username or password.")
			return
		}
		username := strings.TrimSpace(input.Username)

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			invalidCredentials(c, s, "login", "Invalid username or password.")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			invalidCredentials(c, s, "login", "Invalid username or password.")
			return
		}

		s.Set(session.UserKey, username)
		s.AddFlash(session.Flash{Level: "success", Message: "Login successful!"})
		if err := s.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusFound, "/home")
	}
}

// GET /admin_login
func ShowAdminLogin(c *gin.Context) {
	s := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"page":    "admin_login",
		"flashes": session.Flashes(s),
	})
}

// POST /admin_login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)

		var input CredentialsInput
		if err := c.ShouldBind(&input); err != nil {
			invalidCredentials(c, s, "admin_login", "Invalid admin credentials.")
			return
		}
		username := strings.TrimSpace(input.Username)

		var admin models.Admin
		if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
			invalidCredentials(c, s, "admin_login", "Invalid admin credentials.")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
			invalidCredentials(c, s, "admin_login", "Invalid admin credentials.")
			return
		}

		s.Set(session.AdminKey, username)
		s.AddFlash(session.Flash{Level: "success", Message: "Admin login successful!"})
		if err := s.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusFound, "/admin_dashboard")
	}
}

// GET /logout — clears the whole session: user, cart and any admin flag.
func Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.AddFlash(session.Flash{Level: "info", Message: "You have been logged out."})
	_ = s.Save()
	c.Redirect(http.StatusFound, "/login")
}

// GET /admin_logout — drops only the admin identity; a user logged in
// within the same session stays logged in.
func AdminLogout(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(session.AdminKey)
	s.AddFlash(session.Flash{Level: "info", Message: "Admin logged out."})
	_ = s.Save()
	c.Redirect(http.StatusFound, "/admin_login")
}

// invalidCredentials re-renders the login form with a single message that
// does not reveal whether the username or the password was wrong.
func invalidCredentials(c *gin.Context, s sessions.Session, page, message string) {
	s.AddFlash(session.Flash{Level: "danger", Message: message})
	_ = s.Save()
	c.JSON(http.StatusUnauthorized, gin.H{
		"page":    page,
		"flashes": session.Flashes(s),
	})
}
