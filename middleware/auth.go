package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Saketh-S5/mobile-store/session"
)

// RequireUser redirects to the login page when no user is logged in.
// Missing auth is a control-flow branch here, not an error.
func RequireUser(c *gin.Context) {
	s := sessions.Default(c)
	if _, ok := session.User(s); !ok {
		s.AddFlash(session.Flash{Level: "warning", Message: "Please log in."})
		_ = s.Save()
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin redirects to the admin login page when no admin is logged in.
func RequireAdmin(c *gin.Context) {
	s := sessions.Default(c)
	if _, ok := session.Admin(s); !ok {
		s.AddFlash(session.Flash{Level: "warning", Message: "Please log in as admin."})
		_ = s.Save()
		c.Redirect(http.StatusFound, "/admin_login")
		c.Abort()
		return
	}
	c.Next()
}
