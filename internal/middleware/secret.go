package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "atrova/pkg/errors"
	"atrova/pkg/response"
)

// SecretToken rejects requests whose header does not carry secret.
// An empty secret disables the check.
func (m Middleware) SecretToken(header, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(header)), []byte(secret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.SecretToken: rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.Abort(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid secret token"))
			return
		}
		c.Next()
	}
}
