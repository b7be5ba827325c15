package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awerp/backend/internal/interfaces/http/dto"
)

const (
	// AntiforgeryCookie is the cookie that carries the anti-forgery token
	AntiforgeryCookie = "AW-ANTIFORGERY"
	// AntiforgeryHeader is the header clients echo the cookie value back in
	AntiforgeryHeader = "X-Antiforgery-Token"

	antiforgeryCookieMaxAge = 12 * 60 * 60
)

// AntiforgeryConfig holds anti-forgery middleware configuration
type AntiforgeryConfig struct {
	// Secure marks the cookie as HTTPS-only
	Secure bool
	// SkipPaths are exempt from the token check (token endpoint, health)
	SkipPaths []string
}

// Antiforgery returns a double-submit-cookie middleware. Mutating requests
// must carry the AntiforgeryHeader matching the AntiforgeryCookie value or
// they are rejected with 403 before reaching any handler.
func Antiforgery(cfg AntiforgeryConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		cookie, err := c.Cookie(AntiforgeryCookie)
		header := c.GetHeader(AntiforgeryHeader)
		if err != nil || cookie == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeAntiforgeryToken,
				"anti-forgery token is missing or does not match",
				requestID,
			))
			return
		}

		c.Next()
	}
}

// IssueAntiforgeryToken generates a fresh token, sets it as a cookie and
// returns it so the client can echo it back in the AntiforgeryHeader.
func IssueAntiforgeryToken(c *gin.Context, secure bool) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate anti-forgery token: %w", err)
	}
	token := hex.EncodeToString(bytes)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AntiforgeryCookie, token, antiforgeryCookieMaxAge, "/", "", secure, true)
	return token, nil
}
