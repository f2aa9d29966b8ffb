package mkterr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeStorageFailure       = "STORAGE_FAILURE"
	CodeRelayFailure         = "RELAY_FAILURE"
)

var (
	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUnauthorized is returned on bad credentials or an unknown api key.
	// The requested mutation has not taken place.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "unauthorized: invalid credentials or api key")

	// ErrInvalidConfiguration is returned when a submitted drop table violates
	// the table invariants, or when the selector is handed an empty table.
	ErrInvalidConfiguration = New(fiber.StatusBadRequest, CodeInvalidConfiguration, "invalid configuration: drop table is malformed")

	// ErrStorageFailure is returned when a snapshot cannot be read or written.
	// Storage failures are surfaced, not retried.
	ErrStorageFailure = New(fiber.StatusInternalServerError, CodeStorageFailure, "storage failure: snapshot could not be read or written")

	// ErrRelayFailure describes an unreachable or rejecting notification sink.
	// It is logged locally and never fails the caller's request.
	ErrRelayFailure = New(fiber.StatusBadGateway, CodeRelayFailure, "relay failure: notification sink unreachable or rejected the message")
)

type Extras map[string]interface{}

type MarketError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *MarketError {
	return &MarketError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e MarketError) Msg(format string, parts ...interface{}) *MarketError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e MarketError) WithExtras(extras Extras) *MarketError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *MarketError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *MarketError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
