// Package util provides common utility functions.
package util

func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
