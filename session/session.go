// Package session holds the per-browser state: the logged-in user, the
// separately logged-in admin, the shopping cart and flash messages. State
// lives in a signed cookie and expires with the browser session.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	// Name is the session cookie name.
	Name = "mobilestore_session"

	UserKey  = "user"
	AdminKey = "admin"
	CartKey  = "cart"
)

// Flash is a one-shot message rendered on the next page view.
// Level is one of "success", "danger", "warning", "info".
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func init() {
	// Cart and flashes travel through securecookie's gob encoder.
	gob.Register([]uint{})
	gob.Register(Flash{})
}

// Middleware builds the signed-cookie session layer. MaxAge 0 keeps the
// cookie for the life of the browser session only.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
	})
	return sessions.Sessions(Name, store)
}

// User returns the logged-in username, if any.
func User(s sessions.Session) (string, bool) {
	name, ok := s.Get(UserKey).(string)
	return name, ok && name != ""
}

// Admin returns the logged-in admin username, if any.
func Admin(s sessions.Session) (string, bool) {
	name, ok := s.Get(AdminKey).(string)
	return name, ok && name != ""
}

// Cart returns the ordered product ids in the cart. Duplicates are
// legitimate: each occurrence counts as one unit at checkout.
func Cart(s sessions.Session) []uint {
	ids, _ := s.Get(CartKey).([]uint)
	return ids
}

// Flashes drains and returns the pending flash messages.
func Flashes(s sessions.Session) []Flash {
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	_ = s.Save()
	return out
}
