package middleware

import (
	"coffee-shop/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	GuestCookie = "guest_session"
	SessionKey  = "session_name"

	guestCookieMaxAge = 60 * 60 * 24 * 365
)

// SessionMiddleware picks the storage namespace of the request: the signed-in
// user's when OptionalAuth found one, else the guest cookie (issued on first
// visit).
func SessionMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetInt("user_id"); userID > 0 {
			c.Set(SessionKey, services.UserSessionName(userID))
			c.Next()
			return
		}

		guestID, err := c.Cookie(GuestCookie)
		if err != nil || uuid.Validate(guestID) != nil {
			guestID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(GuestCookie, guestID, guestCookieMaxAge, "/", "", secureCookie, true)
		}

		c.Set(SessionKey, services.GuestSessionName(guestID))
		c.Next()
	}
}
