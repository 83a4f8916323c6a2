package core

import (
	"errors"
	"fmt"
)

// Business-logic sentinel errors surfaced to API callers
var (
	ErrOracleNotFound      = errors.New("oracle not found")
	ErrOracleAlreadyExists = errors.New("oracle already exists")
	ErrUserNotFound        = errors.New("user has no registered oracles")
	ErrNotOwner            = errors.New("caller is not the owner of the oracle")
	ErrAnonymousOwner      = errors.New("owner address is anonymous")
	ErrEmptyUpdate         = errors.New("at least one metadata field must be set")
	ErrFeedNotFound        = errors.New("feed not found")
	ErrFeedAlreadyExists   = errors.New("feed already exists")
)

// HttpError ... Transport, status or body decoding failure while
// talking to an external endpoint
type HttpError struct {
	Msg string
}

func (e *HttpError) Error() string {
	return "http error: " + e.Msg
}

// NewHttpError ... Constructs an HTTP failure from a cause
func NewHttpError(format string, args ...interface{}) error {
	return &HttpError{Msg: fmt.Sprintf(format, args...)}
}

// JsonRpcError ... Remote call returned an application-level error
type JsonRpcError struct {
	Method string
	Msg    string
}

func (e *JsonRpcError) Error() string {
	return fmt.Sprintf("json-rpc error on %s: %s", e.Method, e.Msg)
}

// ParseErrorKind ... Discriminates JSON path walk failures
type ParseErrorKind uint8

const (
	KeyNotFound ParseErrorKind = iota
	NotAnObject
	NotNumeric
)

// ParseError ... Price-path extraction failure
type ParseError struct {
	Kind ParseErrorKind
	Key  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KeyNotFound:
		return fmt.Sprintf("key '%s' not found", e.Key)

	case NotAnObject:
		return fmt.Sprintf("'%s' is not an object", e.Key)

	case NotNumeric:
		return fmt.Sprintf("'%s' is not a numeric value", e.Key)
	}

	return "unknown parse error"
}
