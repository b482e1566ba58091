package main

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/pipeline"
	"github.com/rrinconline/sticker-lab-backend/types"
)

type submissionPipeline interface {
	Handle(ctx context.Context, kind types.Kind, req types.Request) *pipeline.Result
}

// handler adapts API Gateway proxy events to the submission pipeline.
type handler struct {
	pipeline submissionPipeline
}

func newHandler(p submissionPipeline) *handler {
	return &handler{pipeline: p}
}

func (h *handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			requestID = lc.AwsRequestID
		}
	}
	ctx = logger.WithRequestID(ctx, requestID)

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			logger.LogError(ctx, err, "Failed to decode request body", nil)
			return toProxyResponse(pipeline.ErrorResponse(apperrors.InvalidRequest(pipeline.InvalidJSONMessage, err))), nil
		}
		body = decoded
	}

	res := h.pipeline.Handle(ctx, kindFor(event.Path), types.Request{
		Method:    event.HTTPMethod,
		Path:      event.Path,
		Body:      body,
		RequestID: requestID,
	})
	return toProxyResponse(res.Response), nil
}

// kindFor routes on the path suffix; anything but /orders is a contact.
func kindFor(path string) types.Kind {
	if strings.HasSuffix(strings.TrimRight(path, "/"), "/orders") {
		return types.KindOrder
	}
	return types.KindContact
}

func toProxyResponse(resp types.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
