package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"partner-dashboard-srv/pkg/discord"
	pkgErrors "partner-dashboard-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response. HTTPError and ValidationError keep their
// status and message; anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   validationErr.Error(),
			Errors:    validationErr.Fields,
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, rec))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}
