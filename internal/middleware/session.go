package middleware

import (
	"net/http"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/response"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newSessionID() string {
	return uuid.NewString()
}

// Session resolves the browser session from the signed cookie, issuing a new
// one when the cookie is missing or fails verification.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sid := ""
		if token, err := c.Cookie(m.sessionCfg.CookieName); err == nil && token != "" {
			sid, err = m.jwtManager.VerifySessionToken(token)
			if err != nil {
				m.l.Debugf(ctx, "middleware.Session: rejected cookie: %v", err)
				sid = ""
			}
		}

		if sid == "" {
			sid = m.newID()
			token, err := m.jwtManager.CreateSessionToken(sid)
			if err != nil {
				m.l.Errorf(ctx, "middleware.Session: CreateSessionToken failed: %v", err)
				response.Error(c, err, nil)
				c.Abort()
				return
			}
			m.setCookie(c, token)
		}

		ctx = scope.SetScopeToContext(ctx, model.Scope{SessionID: sid})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ExpireSession drops the session cookie so the next request starts a fresh session.
func (m Middleware) ExpireSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.sessionCfg.CookieName, "", -1, "/", m.sessionCfg.CookieDomain, m.sessionCfg.CookieSecure, true)
}

// maxAge 0 keeps it a browser-session cookie
func (m Middleware) setCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.sessionCfg.CookieName, token, 0, "/", m.sessionCfg.CookieDomain, m.sessionCfg.CookieSecure, true)
}
