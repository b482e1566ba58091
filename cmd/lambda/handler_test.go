package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rrinconline/sticker-lab-backend/pipeline"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPipeline struct {
	kind types.Kind
	req  types.Request
}

func (r *recordingPipeline) Handle(ctx context.Context, kind types.Kind, req types.Request) *pipeline.Result {
	r.kind = kind
	r.req = req
	return &pipeline.Result{
		State:    pipeline.StateResponded,
		Response: pipeline.AcceptedResponse(kind, "CONTACT-0a1b2c3d"),
	}
}

func TestHandleRoutesByPath(t *testing.T) {
	tests := []struct {
		path string
		kind types.Kind
	}{
		{"/prod/contact", types.KindContact},
		{"/prod/orders", types.KindOrder},
		{"/orders/", types.KindOrder},
		{"/", types.KindContact},
	}

	for _, tt := range tests {
		p := &recordingPipeline{}
		_, err := newHandler(p).Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Path:       tt.path,
			Body:       `{}`,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.kind, p.kind, tt.path)
	}
}

func TestHandleDecodesBase64Body(t *testing.T) {
	p := &recordingPipeline{}
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/contact",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"name":"John"}`)),
		IsBase64Encoded: true,
		RequestContext:  events.APIGatewayProxyRequestContext{RequestID: "apigw-1"},
	}

	resp, err := newHandler(p).Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, `{"name":"John"}`, string(p.req.Body))
	assert.Equal(t, "apigw-1", p.req.RequestID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Contains(t, resp.Body, "CONTACT-0a1b2c3d")
}

func TestHandleRejectsBadBase64(t *testing.T) {
	p := &recordingPipeline{}
	resp, err := newHandler(p).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/contact",
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Invalid JSON in request body"}`, resp.Body)
	assert.Empty(t, p.kind)
}
