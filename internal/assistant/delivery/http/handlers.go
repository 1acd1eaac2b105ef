package http

import (
	"partner-dashboard-srv/pkg/response"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Get - Assistant page state
// @Summary Get assistant transcript
// @Description Returns the persisted transcript, the time-of-day greeting and example questions. With both sources uploaded the default source is combined.
// @Tags Assistant
// @Produce json
// @Param source query string false "Data source" Enums(myAffiliate, dynamicWorks, combined)
// @Success 200 {object} assistantResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/assistant [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Get(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAssistantResp(o))
}

// Send - Ask the assistant a question
// @Summary Send assistant message
// @Description Appends the question and the answer to the transcript. Analysis failures are answered with an apology message, not an error status.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body sendReq true "Question"
// @Success 200 {object} transcriptResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/assistant/messages [post]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processSendRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Send: processSendRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Send(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Send: usecase Send failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTranscriptResp(o))
}

// Clear - Reset the assistant transcript
// @Summary Clear assistant transcript
// @Tags Assistant
// @Produce json
// @Success 200 {object} transcriptResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/assistant/messages [delete]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Clear(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Clear: usecase Clear failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTranscriptResp(o))
}

// GetWidget - Floating chat widget transcript
// @Summary Get widget transcript
// @Tags Widget
// @Produce json
// @Success 200 {object} widgetResp
// @Router /api/v1/widget/messages [get]
func (h *handler) GetWidget(c *gin.Context) {
	ctx := c.Request.Context()

	msgs, err := h.uc.GetWidget(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.GetWidget: usecase GetWidget failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWidgetResp(msgs))
}

// SendWidget - Ask the widget a question
// @Summary Send widget message
// @Description Single-turn question against the current file. Errors are shown as chat messages.
// @Tags Widget
// @Accept json
// @Produce json
// @Param body body sendReq true "Question"
// @Success 200 {object} widgetResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/widget/messages [post]
func (h *handler) SendWidget(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processSendRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.SendWidget: processSendRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	msgs, err := h.uc.SendWidget(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.SendWidget: usecase SendWidget failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWidgetResp(msgs))
}
