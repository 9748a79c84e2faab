package errors

import "fmt"

// Errno identifies a specific error kind produced by the core packages.
type Errno int

// Values holds the formatting arguments for a CoreError.
type Values []interface{}

// CoreError is the error type returned across the core/shell boundary.
// It is never produced from inside the CPU or PPU execute loop, only
// from load/reset/step entry points that can fail cleanly.
type CoreError struct {
	Errno  Errno
	Values Values
}

// New creates a CoreError of the given kind.
func New(errno Errno, values ...interface{}) CoreError {
	return CoreError{Errno: errno, Values: values}
}

func (e CoreError) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}

// Is reports whether err is a CoreError of the given kind. It allows
// callers to use errors.Is(err, errors.RomTooLarge) style checks despite
// CoreError not being a sentinel value.
func Is(err error, errno Errno) bool {
	ce, ok := err.(CoreError)
	return ok && ce.Errno == errno
}
