package result

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedResultType is returned when a result type is not allowed.
var ErrUnsupportedResultType = errors.New("unsupported result type")

// ErrAlreadyNavigatedBack is returned when NavigateBack is called a second time on the same navigator.
var ErrAlreadyNavigatedBack = errors.New("already navigated back")

// ErrStaleNavigator is returned when the navigator's entry is no longer on top of the back stack.
var ErrStaleNavigator = errors.New("navigator entry is not the current entry")

// UnsupportedResultTypeError describes why a result type was rejected.
type UnsupportedResultTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedResultTypeError) Error() string {
	return fmt.Sprintf("%s: %v (%s)", ErrUnsupportedResultType, e.Type, e.Reason)
}

// Unwrap allows errors.Is(err, ErrUnsupportedResultType).
func (e *UnsupportedResultTypeError) Unwrap() error {
	return ErrUnsupportedResultType
}
