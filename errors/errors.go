package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
	"github.com/rrinconline/sticker-lab-backend/logger"
)

type ErrorType string

const (
	ValidationError     ErrorType = "VALIDATION_ERROR"
	InvalidRequestError ErrorType = "INVALID_REQUEST"
	StoreError          ErrorType = "STORE_ERROR"
	MailError           ErrorType = "MAIL_ERROR"
	UpstreamError       ErrorType = "UPSTREAM_ERROR"
	ServerError         ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Details    []string  `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status recorded on the error, falling back to
// the default for its type.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context. An err that already carries
// an AppError keeps its classification.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed carries every violated rule so callers can report them all at once.
func ValidationFailed(message string, details []string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidRequest(message string, err error) *AppError {
	appErr := &AppError{
		Type:       InvalidRequestError,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Raw:        err,
	}
	if err != nil {
		appErr.Detail = err.Error()
	}
	return appErr
}

// Upstream marks a failure reported by a cloud or third-party dependency.
func Upstream(service string, err error) *AppError {
	logger.GetLogger().Errorw("Upstream error", "service", service, "error", err)
	return &AppError{
		Type:       UpstreamError,
		Code:       service,
		Message:    "Upstream service failed",
		Detail:     detailOf(err),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// FromAWS marks err as an upstream failure of service when an AWS API error
// is in its chain. Any other error is returned unchanged.
func FromAWS(service string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return Upstream(service, err)
	}
	return err
}

func detailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// TypeOf reports the AppError type found in err's chain, or ServerError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ServerError
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, InvalidRequestError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
