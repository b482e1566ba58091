package types

// Request is the transport-neutral view of an inbound submission. The gin
// handlers and the Lambda adapter both reduce their requests to it.
type Request struct {
	Method    string
	Path      string
	Body      []byte
	RequestID string
}

// Response is the HTTP-shaped result of a pipeline run. Body is already JSON.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}
