package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/pipeline"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// ErrorHandler writes errors attached with c.Error in the same JSON shape
// and with the same CORS headers as pipeline responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		resp := pipeline.ErrorResponse(err)

		if appErr, ok := err.(*apperrors.AppError); ok {
			logger.LogHTTPError(c, err, resp.StatusCode, fmt.Sprintf("%s error", appErr.Type))
		} else {
			logger.LogHTTPError(c, err, resp.StatusCode, "Unexpected server error")
		}

		write(c, resp)
	}
}

// Recovery turns a handler panic into the generic 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := pipeline.PanicError(recovered)
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Recovered from panic")
		write(c, pipeline.FaultResponse(err))
		c.Abort()
	})
}

func write(c *gin.Context, resp types.Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, pipeline.ContentTypeJSONHeader, []byte(resp.Body))
}
