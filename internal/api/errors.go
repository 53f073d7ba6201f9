package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the API server could not be reached.
	ErrUnavailable = errors.New("checklist api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("checklist api request timed out")

	// ErrUnauthorized indicates the API rejected the credentials or token.
	ErrUnauthorized = errors.New("checklist api rejected credentials")

	// ErrBadResponse indicates a 2xx response whose body could not be decoded.
	ErrBadResponse = errors.New("malformed checklist api response")

	// ErrStatus matches every *StatusError.
	ErrStatus = errors.New("checklist api returned an error status")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("checklist api returned status %d", e.Code)
	}
	return fmt.Sprintf("checklist api returned status %d: %s", e.Code, e.Body)
}

// Is lets errors.Is match ErrStatus, and ErrUnauthorized for 401/403.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrStatus:
		return true
	case ErrUnauthorized:
		return e.Code == 401 || e.Code == 403
	}
	return false
}
