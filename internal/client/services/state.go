package services

import (
	"bytes"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Fallback messages recorded when the server gives no usable error payload.
const (
	MsgLoginFailed         = "Ошибка входа"
	MsgRegistrationFailed  = "Ошибка регистрации"
	MsgProfileUpdateFailed = "Ошибка обновления профиля"
	MsgSessionSaveFailed   = "Ошибка сохранения сессии"
)

// State is a point-in-time copy of the auth store.
type State struct {
	User    models.User
	Loading bool
	Error   *ErrorInfo
}

// IsAuthenticated reports whether a user is signed in.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// ErrorInfo is the last failure recorded by the store, in a form a UI can
// show. StatusCode and Payload are set only when the server answered.
type ErrorInfo struct {
	Message    string
	StatusCode int
	Payload    []byte
}

func (e *ErrorInfo) String() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *ErrorInfo) clone() *ErrorInfo {
	if e == nil {
		return nil
	}
	c := *e
	c.Payload = bytes.Clone(e.Payload)
	return &c
}

// newErrorInfo prefers the message the server sent over fallback.
func newErrorInfo(err error, fallback string) *ErrorInfo {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return &ErrorInfo{Message: fallback}
	}

	info := &ErrorInfo{
		Message:    fallback,
		StatusCode: apiErr.StatusCode,
		Payload:    bytes.Clone(apiErr.Body),
	}
	if msg := apiErr.Message(); msg != "" {
		info.Message = msg
	}
	return info
}
