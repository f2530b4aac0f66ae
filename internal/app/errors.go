package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	err = errors.Cause(err)
	if ire, ok := err.(invalidReqErr); ok {
		return ire.IsInvalidRequest()
	}

	return false
}

// ProfileNotFoundError is special error type returned when the primary
// profile lookup fails. The upstream doesn't let us tell a bad username
// from a provider outage, so both map here.
type ProfileNotFoundError string

// Error implements error interface
func (e ProfileNotFoundError) Error() string {
	return string(e)
}

// IsProfileNotFound tells that this error is 'profile not found'.
// Returns always true.
func (ProfileNotFoundError) IsProfileNotFound() bool {
	return true
}

// IsProfileNotFoundError checks if given error is caused by a failed profile lookup
func IsProfileNotFoundError(err error) bool {
	type profileNotFoundErr interface {
		IsProfileNotFound() bool
	}

	err = errors.Cause(err)
	if pnf, ok := err.(profileNotFoundErr); ok {
		return pnf.IsProfileNotFound()
	}

	return false
}

// TooManyRequestsError is special error type returned when an outbound
// call is rejected by the client-side rate limiter
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by rate limiting
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	err = errors.Cause(err)
	if tmr, ok := err.(tooManyReqErr); ok {
		return tmr.IsTooManyRequests()
	}

	return false
}
