package http

import (
	"io"
	"time"

	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/pkg/response"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const defaultKeepAlive = 25 * time.Second

// Get - Session state with the source the requested page would use
// @Summary Get session state
// @Tags Session
// @Produce json
// @Param page query string false "Page to resolve the data source for" Enums(dashboard, country, partner, overall, assistant, widget)
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/session [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Get: processGetRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	state, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSessionResp(state, datasource.Page(req.Page)))
}

// Clear - Forget every stored id and the assistant transcript
// @Summary Clear session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/session [delete]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Clear(ctx, sc); err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Clear: usecase Clear failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// Events - Server-sent stream of session changes made by other tabs
// @Summary Stream session events
// @Tags Session
// @Produce text/event-stream
// @Success 200 {object} session.Event
// @Router /api/v1/session/events [get]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	events, err := h.uc.Subscribe(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Events: usecase Subscribe failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
