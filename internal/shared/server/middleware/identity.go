package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorIDKey    = "visitorId"
	guestIDHeader   = "X-Guest-Id"
	guestCookieName = "aurelia_guest"
	guestCookieAge  = 365 * 24 * 60 * 60
	maxGuestIDLen   = 64
)

// Identity resolves the anonymous visitor for the request. The X-Guest-Id header
// wins over the aurelia_guest cookie; when neither is usable a new guest id is
// issued as a long-lived cookie, mirroring a browser profile.
func Identity(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader(guestIDHeader))
		if !validGuestID(guestID) {
			guestID = ""
			if cookie, err := c.Cookie(guestCookieName); err == nil && validGuestID(cookie) {
				guestID = cookie
			}
		}
		if guestID == "" {
			guestID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(guestCookieName, guestID, guestCookieAge, "/", "", secureCookie, true)
		}

		c.Set(visitorIDKey, "guest:"+guestID)
		c.Writer.Header().Set(guestIDHeader, guestID)
		c.Next()
	}
}

// VisitorIDFromContext fetches the visitor ID set by the identity middleware.
func VisitorIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(visitorIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

func validGuestID(id string) bool {
	if id == "" || len(id) > maxGuestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
