package nxt

import (
	"errors"
	"fmt"
)

// TransportError reports a failed API call: a network failure, a non-200 response
// or an error object returned by the node.
type TransportError struct {
	Op         string
	HTTPStatus int
	RemoteCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.RemoteCode != 0:
		return fmt.Sprintf("%s: node error %d: %s", e.Op, e.RemoteCode, e.Message)
	case e.HTTPStatus != 0:
		return fmt.Sprintf("%s: http status %d: %s", e.Op, e.HTTPStatus, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response that could not be decoded.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err carries an error object returned by the node.
func IsRemote(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.RemoteCode != 0
}
