package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "jwt"

type CookieManager struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookie(domain string, secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, TTL: ttl}
}

// Set writes the HTTP-only session cookie.
func (m *CookieManager) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

// Clear expires the session cookie. Tokens are stateless, so this is the
// whole of logging off.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}
