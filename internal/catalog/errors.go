package catalog

import (
	"errors"
	"fmt"
)

// ErrLoadFailure matches every error returned by Remote.Load.
var ErrLoadFailure = errors.New("catalog load failed")

// LoadError describes why a remote catalog could not be loaded.
type LoadError struct {
	Location string // URL or path that was requested
	Op       string // "fetch" or "decode"
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %s: %v", e.Location, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoadFailure.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// EntryError reports a catalog entry dropped by schema validation.
type EntryError struct {
	Index int
	Err   error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e EntryError) Unwrap() error {
	return e.Err
}
