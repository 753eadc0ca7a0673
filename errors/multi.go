package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// Consistent with the fail-fast approach, the first error determines
// the code and the cause of the combined error.
func Append(errs ...error) error {
	var flat []error
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case *multiError:
			flat = append(flat, e.errs...)
		default:
			flat = append(flat, err)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiError{errs: flat}
	}
}

type multiError struct {
	errs []error
}

var (
	_ error  = (*multiError)(nil)
	_ coder  = (*multiError)(nil)
	_ causer = (*multiError)(nil)
)

func (e *multiError) Error() string {
	points := make([]string, len(e.errs))
	for i, err := range e.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s",
		len(e.errs), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first error.
func (e *multiError) ABCICode() uint32 {
	return ABCICode(e.errs[0])
}

// Cause returns the first error.
func (e *multiError) Cause() error {
	return e.errs[0]
}
