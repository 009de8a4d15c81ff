package eventmodels

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited")
	ErrUpstream    = errors.New("upstream error")
	ErrValidation  = errors.New("validation error")

	ErrInvalidRequestType = errors.New("invalid request type")
)

const (
	RateLimitedMessage   = "Rate limit exceeded. Please wait a moment before trying again."
	NoOptionsDataMessage = "No options data available"
	UpstreamErrorMessage = "Internal Server Error"
)

// WebError is an error that carries the user facing message and the status
// code it maps to. Kind is one of the Err* sentinels above so callers can
// branch with errors.Is.
type WebError struct {
	Kind       error
	StatusCode int
	Message    string
	Cause      error
}

func (e *WebError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *WebError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

func NewWebError(kind error, statusCode int, message string, cause error) *WebError {
	return &WebError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

func NewSymbolNotFoundError(symbol StockSymbol, cause error) *WebError {
	msg := fmt.Sprintf("Could not fetch price data for %s. Please verify the symbol is correct.", symbol)
	return NewWebError(ErrNotFound, http.StatusNotFound, msg, cause)
}

func NewNoOptionsDataError() *WebError {
	return NewWebError(ErrNotFound, http.StatusNotFound, NoOptionsDataMessage, nil)
}

func NewRateLimitedError(cause error) *WebError {
	return NewWebError(ErrRateLimited, http.StatusTooManyRequests, RateLimitedMessage, cause)
}

// NewUpstreamError keeps the cause out of the response body. Error() still
// carries it for the logs.
func NewUpstreamError(cause error) *WebError {
	return NewWebError(ErrUpstream, http.StatusInternalServerError, UpstreamErrorMessage, cause)
}

func NewValidationError(cause error) *WebError {
	return NewWebError(ErrValidation, http.StatusUnprocessableEntity, cause.Error(), cause)
}
