package validation

import (
	"errors"

	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

// PayloadError names the translated message a rejected payload maps to.
type PayloadError struct {
	MsgKey string
}

func (e *PayloadError) Error() string {
	return "invalid payload: " + e.MsgKey
}

func (e *PayloadError) Unwrap() error {
	return domain.ErrInvalidInput
}

func invalid(msgKey string) error {
	return &PayloadError{MsgKey: msgKey}
}

// MsgKey returns the message key for err, defaulting to the generic
// invalid payload message.
func MsgKey(err error) string {
	var payloadErr *PayloadError
	if errors.As(err, &payloadErr) {
		return payloadErr.MsgKey
	}
	return apierrors.MsgInvalidPayload
}
