package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/pipeline"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// SubmissionPipeline runs one submission to completion.
type SubmissionPipeline interface {
	Handle(ctx context.Context, kind types.Kind, req types.Request) *pipeline.Result
}

// SubmissionHandler adapts the submission pipeline to gin. The pipeline
// owns the status code, headers and body; the handler only copies them.
type SubmissionHandler struct {
	pipeline SubmissionPipeline
}

func NewSubmissionHandler(p SubmissionPipeline) *SubmissionHandler {
	return &SubmissionHandler{pipeline: p}
}

// Contact handles POST and OPTIONS on the contact route.
func (h *SubmissionHandler) Contact(c *gin.Context) {
	h.handle(c, types.KindContact)
}

// Order handles POST and OPTIONS on the orders route.
func (h *SubmissionHandler) Order(c *gin.Context) {
	h.handle(c, types.KindOrder)
}

func (h *SubmissionHandler) handle(c *gin.Context, kind types.Kind) {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(apperrors.InvalidRequest("Failed to read request body", err))
		return
	}

	req := types.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Body:      body,
		RequestID: c.GetString(logger.RequestIDKey),
	}

	res := h.pipeline.Handle(c.Request.Context(), kind, req)
	writeResponse(c, res.Response)
}

func writeResponse(c *gin.Context, resp types.Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, pipeline.ContentTypeJSONHeader, []byte(resp.Body))
}
