package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

const AuthorizationHeader = "Authorization"

// RequireAuthorization aborts with 401 when the Authorization header is
// missing or blank. The header is not validated here; Paystand does that.
func RequireAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(AuthorizationHeader)) == "" {
			log.Printf("[paystand][middleware] missing authorization method=%s path=%s", c.Request.Method, c.FullPath())
			c.AbortWithStatusJSON(errMissingAuthorization.HTTPStatus, errMissingAuthorization.ToHTTPError())
			return
		}
		c.Next()
	}
}
