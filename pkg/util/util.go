package util

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Error carries a code next to the wrapped error so callers can pick a response without
// matching on every domain sentinel.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// WrapErrorf wraps orig with a message and a sentinel code that the request layer maps to a status.
func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode returns the code of the first *Error in err's chain, or nil.
func ErrorCode(err error) error {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Code()
	}
	return nil
}

var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("not found")
	ErrBadParamInput       = errors.New("invalid parameter")
	ErrTimeout             = errors.New("timed out")
)

const MessageInternalServerError = "internal server error"

// RoundFloat rounds val half away from zero to precision decimals.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ReverseG reversed copy of arr. arr itself is left untouched, nil stays nil.
func ReverseG[T any](arr []T) []T {
	if arr == nil {
		return nil
	}
	reversed := make([]T, len(arr))
	for i, v := range arr {
		reversed[len(arr)-1-i] = v
	}
	return reversed
}

// StopConcurrentOperation reports whether ctx is already done, without blocking.
func StopConcurrentOperation(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
