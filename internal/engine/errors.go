package engine

import (
	"errors"
	"fmt"
)

// ErrNoItems reports an organize run against a project with no items. It is
// a precondition failure, not a host fault: the run report carries
// success=false and zero moves.
var ErrNoItems = errors.New("no items to organize")

// HostError wraps a failure raised by the item repository. Fatal errors
// abort the run with partial counts; non-fatal ones skip the current item.
type HostError struct {
	Err   error
	Op    string
	Fatal bool
}

// Error implements the error interface.
func (e *HostError) Error() string {
	return fmt.Sprintf("host %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying host failure.
func (e *HostError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a fatal host failure.
func IsFatal(err error) bool {
	var herr *HostError
	return errors.As(err, &herr) && herr.Fatal
}
