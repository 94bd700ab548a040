package middlewares

import (
	"crypto/subtle"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"net/http"
)

// AdminAuth - basic auth, пароль сверяется с bcrypt-хэшем из конфига.
func (m *Middlewares) AdminAuth(user, passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, p, ok := c.Request.BasicAuth()
		if !ok || passwordHash == "" ||
			subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)) != nil {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
