package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atrova/internal/model"
	pkgErrors "atrova/pkg/errors"
	"atrova/pkg/response"
)

// OwnerHeader carries the caller's user id. Authentication happens upstream.
const OwnerHeader = "X-Owner-ID"

const scopeKey = "scope"

// Auth resolves the caller from OwnerHeader and stores it as a model.Scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if owner == "" {
			response.Abort(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing "+OwnerHeader+" header"))
			return
		}
		SetScope(c, model.Scope{UserID: owner, Source: model.SourceWeb})
		c.Next()
	}
}

// SetScope stores sc on the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
