// Package types contains common types and host helpers used across the furl packages.
package types

import (
	"io"
)

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// ASCIIHost renders internationalized host names in their Punycode form.
	ASCIIHost bool `json:"ascii_host,omitempty"`
}

// WantASCIIHost is a nil-safe accessor of [RenderOptions.ASCIIHost].
func (o *RenderOptions) WantASCIIHost() bool {
	return o != nil && o.ASCIIHost
}

// Equalable is implemented by values comparable with values of other types.
type Equalable interface {
	Equal(val any) bool
}

// Cloneable is implemented by values that can be deep-copied.
type Cloneable[T any] interface {
	Clone() T
}
