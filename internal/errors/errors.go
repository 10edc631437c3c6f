package errors

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid bootstrap configuration")
	ErrPolicyViolation = errors.New("bootstrap configuration rejected by guardrail policy")
	ErrUnknownFormat   = errors.New("unknown output format")
)
