package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Категории ошибок, по которым транспортный слой выбирает код ответа.
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Error доменная ошибка с сообщением для клиента.
type Error struct {
	err    error
	detail string
}

func Wrap(err error, format string, args ...any) error {
	return &Error{
		err:    err,
		detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return e.detail
}

func (e *Error) Unwrap() error {
	return e.err
}

// Detail достает клиентское сообщение из цепочки, если его нет, то текст самой ошибки.
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.detail
	}
	return err.Error()
}

// ValidationError перечисляет все нарушения входных данных сразу.
type ValidationError struct {
	Violations []string
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Add(violation string) {
	e.Violations = append(e.Violations, violation)
}

func (e *ValidationError) Addf(format string, args ...any) {
	e.Add(fmt.Sprintf(format, args...))
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// OrNil нужен чтобы не вернуть типизированный nil как error.
func (e *ValidationError) OrNil() error {
	if !e.HasViolations() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
