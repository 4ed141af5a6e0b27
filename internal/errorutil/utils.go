package errorutil

import "errors"

// IsAdvisory returns true if the error only advises the caller and never aborts an operation.
func IsAdvisory(err error) bool {
	var e interface{ Advisory() bool }
	return errors.As(err, &e) && e.Advisory()
}
