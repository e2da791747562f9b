// Package middleware holds the gin middleware chain: identity
// extraction from bearer tokens, capability gates, and request
// logging.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/auth"
)

const identityKey = "jobhive.identity"

// Authenticate decodes an optional bearer token into an identity and
// stores it on the request context. An unverifiable token is treated
// exactly like no token: the request proceeds anonymously and only the
// debug log records the rejection.
func Authenticate(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = strings.TrimSpace(token)
			if ident := codec.DecodeToken(token); ident != nil {
				c.Set(identityKey, ident)
			} else {
				slog.Debug("rejected bearer token", "path", c.Request.URL.Path)
			}
		}
		c.Next()
	}
}

// IdentityFrom returns the verified identity on the request, or nil.
func IdentityFrom(c *gin.Context) *auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(*auth.Identity); ok {
			return ident
		}
	}
	return nil
}

// Require gates a route on the given capability. subjectParam names
// the route parameter holding the subject username for AdminOrSelf and
// is ignored otherwise.
func Require(required auth.Capability, subjectParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := auth.Authorize(IdentityFrom(c), required, c.Param(subjectParam))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
