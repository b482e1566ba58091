package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// Response bodies and messages returned to callers.
const (
	PreflightMessage      = "CORS preflight successful"
	InvalidJSONMessage    = "Invalid JSON in request body"
	ValidationMessage     = "Validation failed"
	ContactAcceptedText   = "Your message has been received. We will get back to you soon!"
	OrderAcceptedText     = "Your order has been received. A confirmation email is on its way."
	InternalErrorMessage  = "Internal server error"
	UpstreamErrorMessage  = "Failed to process your message. Please try again later."
	AllowedHeadersValue   = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	AllowedMethodsValue   = "POST,OPTIONS"
	AllowedOriginValue    = "*"
	ContentTypeJSONHeader = "application/json"
)

// Headers returns the headers carried by every pipeline response.
func Headers() map[string]string {
	return map[string]string{
		"Content-Type":                 ContentTypeJSONHeader,
		"Access-Control-Allow-Origin":  AllowedOriginValue,
		"Access-Control-Allow-Headers": AllowedHeadersValue,
		"Access-Control-Allow-Methods": AllowedMethodsValue,
	}
}

type errorBody struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type acceptedBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
}

func respond(status int, body any) types.Response {
	payload, err := json.Marshal(body)
	if err != nil {
		payload = []byte(`{"success":false,"error":"` + InternalErrorMessage + `"}`)
		status = http.StatusInternalServerError
	}
	return types.Response{
		StatusCode: status,
		Headers:    Headers(),
		Body:       string(payload),
	}
}

// PreflightResponse answers a CORS preflight.
func PreflightResponse() types.Response {
	return respond(http.StatusOK, map[string]string{"message": PreflightMessage})
}

// InvalidJSONResponse is returned when the body is not a JSON object.
func InvalidJSONResponse() types.Response {
	return respond(http.StatusBadRequest, errorBody{Error: InvalidJSONMessage})
}

// ValidationResponse lists every violated rule.
func ValidationResponse(details []string) types.Response {
	return respond(http.StatusBadRequest, errorBody{Error: ValidationMessage, Details: details})
}

// AcceptedResponse confirms a submission and carries its record id.
func AcceptedResponse(kind types.Kind, id string) types.Response {
	body := acceptedBody{Success: true}
	switch kind {
	case types.KindOrder:
		body.Message = OrderAcceptedText
		body.OrderID = id
	default:
		body.Message = ContactAcceptedText
		body.ContactID = id
	}
	return respond(http.StatusOK, body)
}

// FaultResponse is the generic 500. Upstream failures get a retry hint;
// nothing from err itself is returned.
func FaultResponse(err error) types.Response {
	message := InternalErrorMessage
	if err != nil && apperrors.TypeOf(err) == apperrors.UpstreamError {
		message = UpstreamErrorMessage
	}
	return respond(http.StatusInternalServerError, errorBody{Error: message})
}

// ErrorResponse maps an AppError raised outside the pipeline (for example
// by the HTTP layer) to the pipeline's error shape.
func ErrorResponse(err error) types.Response {
	switch apperrors.TypeOf(err) {
	case apperrors.InvalidRequestError:
		return InvalidJSONResponse()
	case apperrors.ValidationError:
		var details []string
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			details = appErr.Details
		}
		return ValidationResponse(details)
	default:
		return FaultResponse(err)
	}
}
