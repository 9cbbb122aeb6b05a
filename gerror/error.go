package gerror

import "fmt"

// GenesisError is the error type used for programmer errors raised from
// assertions inside the simulation core.
type GenesisError struct {
	Err string
}

func New(format string, args ...interface{}) *GenesisError {
	return &GenesisError{Err: fmt.Sprintf(format, args...)}
}

func (e *GenesisError) Error() string {
	return e.Err
}
