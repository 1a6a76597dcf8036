package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// AdminAuth rejects requests whose X-Admin-Password header does not match the
// configured credential. The comparison runs in constant time, and an empty
// configured credential disables the surface entirely.
func AdminAuth(credential string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if credential == "" || !CredentialMatches(c.GetHeader("X-Admin-Password"), credential) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errorCode": consts.ErrorAdminUnauthorized.ErrorCode(),
				"error":     consts.ErrorAdminUnauthorized.Error(),
			})
			return
		}
		c.Next()
	}
}

// CredentialMatches compares two credentials in constant time.
func CredentialMatches(given, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
