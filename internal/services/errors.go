// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
)

// BusinessError is a rule violation reported to the user with a localized
// message, not a system fault. Handlers map it to a 400 envelope.
type BusinessError struct {
	Key  string
	Args []interface{}
}

func (e *BusinessError) Error() string {
	return e.Key
}

// Localize resolves the user-facing message for the given language.
func (e *BusinessError) Localize(lang string) string {
	return i18n.T(lang, e.Key, e.Args...)
}

func NewBusinessError(key string, args ...interface{}) error {
	return &BusinessError{Key: key, Args: args}
}

func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// NotFoundError marks a missing entity; handlers map it to 404.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return e.Key
}

func NewNotFoundError(key string) error {
	return &NotFoundError{Key: key}
}

func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

// UpstreamError describes a failed call to an external platform. Step names
// the sub-resource that failed so aggregation failures are attributable.
type UpstreamError struct {
	System  string // "acronis" or "parasut"
	Step    string // e.g. "mfa", "pricing", "brand", "users"
	Status  int    // upstream HTTP status, 0 if the request never completed
	Timeout bool
	Auth    bool
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Auth:
		return fmt.Sprintf("%s: authentication failed", e.System)
	case e.Timeout:
		return fmt.Sprintf("%s: %s timed out", e.System, e.Step)
	default:
		return fmt.Sprintf("%s: %s failed with status %d", e.System, e.Step, e.Status)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
