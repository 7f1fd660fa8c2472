package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionInitKey = "init"

// EnsureSession makes sure every response carries the session cookie so the
// browser client can send it back on subsequent requests.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionInitKey) == nil {
			session.Set(sessionInitKey, true)
			// Cookie issuance is best effort; the request proceeds either way
			_ = session.Save()
		}
		c.Next()
	}
}
