package types

import (
	"fmt"
)

type ErrorKind string

const (
	ErrorKindAuthentication      ErrorKind = "AuthenticationError"
	ErrorKindInvalidOrder        ErrorKind = "InvalidOrder"
	ErrorKindExchangeRejected    ErrorKind = "ExchangeRejected"
	ErrorKindEmptyResponse       ErrorKind = "EmptyResponse"
	ErrorKindMalformedMarketData ErrorKind = "MalformedMarketData"
	ErrorKindMalformedPayload    ErrorKind = "MalformedPayload"
)

// ExchangeError is an adapter failure of a known kind.
// errors.Is matches any ExchangeError of the same kind.
type ExchangeError struct {
	Kind    ErrorKind
	Message string

	// Detail holds the serialized venue response for rejected requests.
	Detail string
}

func (e *ExchangeError) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return msg
}

func (e *ExchangeError) Is(target error) bool {
	t, ok := target.(*ExchangeError)
	return ok && t.Kind == e.Kind
}

var (
	ErrAuthentication      = &ExchangeError{Kind: ErrorKindAuthentication}
	ErrInvalidOrder        = &ExchangeError{Kind: ErrorKindInvalidOrder}
	ErrExchangeRejected    = &ExchangeError{Kind: ErrorKindExchangeRejected}
	ErrEmptyResponse       = &ExchangeError{Kind: ErrorKindEmptyResponse}
	ErrMalformedMarketData = &ExchangeError{Kind: ErrorKindMalformedMarketData}
	ErrMalformedPayload    = &ExchangeError{Kind: ErrorKindMalformedPayload}

	ErrMissingCredentials = &ExchangeError{Kind: ErrorKindAuthentication, Message: "missing credentials"}
)

func NewInvalidOrderError(format string, args ...interface{}) error {
	return &ExchangeError{Kind: ErrorKindInvalidOrder, Message: fmt.Sprintf(format, args...)}
}

func NewExchangeRejectedError(message string, body []byte) error {
	return &ExchangeError{Kind: ErrorKindExchangeRejected, Message: message, Detail: string(body)}
}

func NewEmptyResponseError(format string, args ...interface{}) error {
	return &ExchangeError{Kind: ErrorKindEmptyResponse, Message: fmt.Sprintf(format, args...)}
}

func NewMalformedMarketDataError(format string, args ...interface{}) error {
	return &ExchangeError{Kind: ErrorKindMalformedMarketData, Message: fmt.Sprintf(format, args...)}
}

func NewMalformedPayloadError(format string, args ...interface{}) error {
	return &ExchangeError{Kind: ErrorKindMalformedPayload, Message: fmt.Sprintf(format, args...)}
}
