package api

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку обращения к серверу
type Kind string

const (
	// KindInvalidTarget адрес запроса не удалось построить
	KindInvalidTarget Kind = "invalid_target"
	// KindInvalidRequest тело запроса не удалось сериализовать
	KindInvalidRequest Kind = "invalid_request"
	// KindTransportFailure нет соединения, DNS, TLS, таймаут
	KindTransportFailure Kind = "transport_failure"
	// KindServerRejected сервер ответил не-2xx статусом
	KindServerRejected Kind = "server_rejected"
	// KindEmptyResponse успешный статус, но тело отсутствует
	KindEmptyResponse Kind = "empty_response"
	// KindDecodeFailure тело не соответствует ожидаемой схеме
	KindDecodeFailure Kind = "decode_failure"
)

// Error ошибка gateway клиента.
// Сравнивается с sentinel-ошибками по Kind: errors.Is(err, ErrServerRejected).
type Error struct {
	Err     error
	Kind    Kind
	Op      string // например "list posts"
	Message string // сообщение сервера для KindServerRejected
	Status  int    // HTTP статус, если ответ был получен
}

// Sentinel errors for use with errors.Is
var (
	ErrInvalidTarget    = &Error{Kind: KindInvalidTarget}
	ErrInvalidRequest   = &Error{Kind: KindInvalidRequest}
	ErrTransportFailure = &Error{Kind: KindTransportFailure}
	ErrServerRejected   = &Error{Kind: KindServerRejected}
	ErrEmptyResponse    = &Error{Kind: KindEmptyResponse}
	ErrDecodeFailure    = &Error{Kind: KindDecodeFailure}
)

// Error implements the error interface
func (e *Error) Error() string {
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}

	switch {
	case e.Kind == KindServerRejected && e.Message != "":
		return fmt.Sprintf("%s: server error (%d): %s", prefix, e.Status, e.Message)
	case e.Kind == KindServerRejected:
		return fmt.Sprintf("%s: request failed with status %d", prefix, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return prefix
	}
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf возвращает Kind ошибки или пустую строку, если это не ошибка gateway
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound проверяет, что сервер ответил 404
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServerRejected && e.Status == 404
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
