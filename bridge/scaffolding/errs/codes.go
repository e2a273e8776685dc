package errs

import (
	"fmt"
	"net/http"
)

// ErrCode represents a machine-readable error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (ec *ErrCode) UnmarshalText(data []byte) error {
	code, exists := codeNumbers[string(data)]
	if !exists {
		return fmt.Errorf("unknown error code %q", string(data))
	}

	*ec = code
	return nil
}

// Set of possible error codes. Caller-correctable problems get 4xx
// statuses; unexpected failures stay 5xx.
var (
	InvalidArgument   = ErrCode{value: 1}
	NotFound          = ErrCode{value: 2}
	ResourceExhausted = ErrCode{value: 3}
	Internal          = ErrCode{value: 4}
	Unavailable       = ErrCode{value: 5}

	// InternalOnlyLog marks errors whose detail must not leave the
	// process; the boundary replaces them with a generic Internal.
	InternalOnlyLog = ErrCode{value: 6}
)

var codeNames = map[ErrCode]string{
	InvalidArgument:   "invalid_argument",
	NotFound:          "not_found",
	ResourceExhausted: "resource_exhausted",
	Internal:          "internal",
	Unavailable:       "unavailable",
	InternalOnlyLog:   "internal",
}

var codeNumbers = map[string]ErrCode{
	"invalid_argument":   InvalidArgument,
	"not_found":          NotFound,
	"resource_exhausted": ResourceExhausted,
	"internal":           Internal,
	"unavailable":        Unavailable,
}

var httpStatus = map[ErrCode]int{
	InvalidArgument:   http.StatusBadRequest,
	NotFound:          http.StatusNotFound,
	ResourceExhausted: http.StatusTooManyRequests,
	Internal:          http.StatusInternalServerError,
	Unavailable:       http.StatusServiceUnavailable,
	InternalOnlyLog:   http.StatusInternalServerError,
}
