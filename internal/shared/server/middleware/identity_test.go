package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity(false))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, VisitorIDFromContext(c))
	})
	return router
}

func TestIdentityPrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Guest-Id", "abc-123")
	req.AddCookie(&http.Cookie{Name: guestCookieName, Value: "from-cookie"})
	resp := httptest.NewRecorder()
	identityRouter().ServeHTTP(resp, req)

	if got := resp.Body.String(); got != "guest:abc-123" {
		t.Fatalf("expected header identity, got %q", got)
	}
	if resp.Header().Get("Set-Cookie") != "" {
		t.Fatalf("did not expect a new cookie")
	}
}

func TestIdentityUsesCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: guestCookieName, Value: "from-cookie"})
	resp := httptest.NewRecorder()
	identityRouter().ServeHTTP(resp, req)

	if got := resp.Body.String(); got != "guest:from-cookie" {
		t.Fatalf("expected cookie identity, got %q", got)
	}
}

func TestIdentityIssuesCookieWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	identityRouter().ServeHTTP(resp, req)

	body := resp.Body.String()
	if !strings.HasPrefix(body, "guest:") || len(body) <= len("guest:") {
		t.Fatalf("expected generated identity, got %q", body)
	}
	cookie := resp.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, guestCookieName+"="+strings.TrimPrefix(body, "guest:")) {
		t.Fatalf("expected guest cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("expected HttpOnly cookie, got %q", cookie)
	}
}

func TestIdentityRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Guest-Id", "../../etc/passwd")
	resp := httptest.NewRecorder()
	identityRouter().ServeHTTP(resp, req)

	if strings.Contains(resp.Body.String(), "passwd") {
		t.Fatalf("malformed guest id must not be used: %q", resp.Body.String())
	}
}
