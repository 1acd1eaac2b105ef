package middleware

import (
	"net/http"
	"runtime/debug"

	"partner-dashboard-srv/pkg/discord"
	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500. A client that hung up mid-response is not reported.
func (mw Middleware) Recovery(d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				c.Abort()
				return
			}
			mw.l.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())
			response.PanicError(c, rec, d)
			c.Abort()
		}()
		c.Next()
	}
}
