package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/jwt"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, jwt.IManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr, err := jwt.New(jwt.Config{SecretKey: testSecret})
	require.NoError(t, err)

	mw := New(log.NewNop(), mgr, config.SessionConfig{CookieName: "pd_session"}, config.CORSConfig{})
	mw.newID = func() string { return "sid-new" }

	r := gin.New()
	r.Use(mw.Session())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).SessionID)
	})
	return r, mgr
}

func TestSession(t *testing.T) {
	t.Run("issues a browser-session cookie when none is sent", func(t *testing.T) {
		r, mgr := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.Equal(t, "sid-new", w.Body.String())
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "pd_session", c.Name)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Zero(t, c.MaxAge)

		sid, err := mgr.VerifySessionToken(c.Value)
		require.NoError(t, err)
		assert.Equal(t, "sid-new", sid)
	})

	t.Run("reuses a valid cookie", func(t *testing.T) {
		r, mgr := newTestRouter(t)
		tok, err := mgr.CreateSessionToken("sid-existing")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "pd_session", Value: tok})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "sid-existing", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("replaces a tampered cookie", func(t *testing.T) {
		r, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "pd_session", Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "sid-new", w.Body.String())
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), nil, config.SessionConfig{}, config.CORSConfig{})
	r := gin.New()
	r.Use(mw.Recovery(nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
