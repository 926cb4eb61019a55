package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// A broken hull invariant is a bug in the calling triangulator, and there is
// nothing sensible to do but stop. Internally we panic with a *HullError, and
// the public API recovers to convert it to an error.

type HullError struct {
	Op    string
	Point PointIndex
	Err   error
}

func (e *HullError) Error() string {
	if e.Point == Empty {
		return fmt.Sprintf("hull %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hull %s(%d): %v", e.Op, e.Point, e.Err)
}

func (e *HullError) Unwrap() error {
	return e.Err
}

// Panic with a *HullError for the given operation and point.
func fatalf(op string, p PointIndex, format string, args ...interface{}) {
	panic(&HullError{Op: op, Point: p, Err: errors.Errorf(format, args...)})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(*HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
