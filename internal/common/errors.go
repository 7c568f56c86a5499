// Package common defines shared sentinel errors used across the voxlate
// server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. Expired tokens are reported separately from tokens
	// that are malformed or carry a bad signature.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Pipeline step errors. Each orchestration step fails with its own
	// kind so the boundary can tell which stage aborted the request.
	ErrorValidation  = errors.New("validation error")
	ErrorInference   = errors.New("inference error")
	ErrorPersistence = errors.New("persistence error")
	ErrorSynthesis   = errors.New("synthesis error")
	ErrorAudioDecode = errors.New("audio decode error")
)
