package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Invalid    Kind = "invalid"
	NotFound   Kind = "not_found"
	StoreRead  Kind = "store_read"
	StoreWrite Kind = "store_write"
	Internal   Kind = "internal"
)

type Error struct {
	Kind      Kind
	PublicMsg string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidErr(publicMsg string) *Error {
	return &Error{Kind: Invalid, PublicMsg: publicMsg}
}

func NotFoundErr(publicMsg string) *Error {
	return &Error{Kind: NotFound, PublicMsg: publicMsg}
}

func StoreReadErr(publicMsg string, err error) *Error {
	return &Error{Kind: StoreRead, PublicMsg: publicMsg, Err: err}
}

func StoreWriteErr(publicMsg string, err error) *Error {
	return &Error{Kind: StoreWrite, PublicMsg: publicMsg, Err: err}
}

// Wrap marks an unexpected internal error; the public message stays generic.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Internal, PublicMsg: "Internal server error", Err: err}
}

func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid:
			return http.StatusBadRequest
		case NotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "Internal server error"
}
