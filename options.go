package furl

import (
	"context"
	"log/slog"

	"github.com/dubizzle/furl/internal/log"
)

// Options configure a [URL] and its components.
// A nil *Options is valid and means default options.
type Options struct {
	// Strict enables reporting of improperly encoded path, query and host input
	// as [ErrImproperEncoding] advisories.
	Strict bool
	// Logger is the logger used to report advisories.
	// If nil, the default logger is used, it writes warnings to stderr.
	Logger *slog.Logger
	// OnWarning is called with every advisory error, see [IsAdvisory].
	OnWarning func(err error)
	// Splitter splits raw URLs.
	// If nil, [DefaultSplitter] is used.
	Splitter Splitter
	// Joiner resolves references against base URLs.
	// If nil, [DefaultJoiner] is used.
	Joiner Joiner
	// Ports resolves scheme default ports.
	// If nil, [DefaultPorts] is used.
	Ports PortTable
}

func (o *Options) strict() bool {
	return o != nil && o.Strict
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Def
	}
	return o.Logger
}

func (o *Options) splitter() Splitter {
	if o == nil || o.Splitter == nil {
		return DefaultSplitter()
	}
	return o.Splitter
}

func (o *Options) joiner() Joiner {
	if o == nil || o.Joiner == nil {
		return DefaultJoiner()
	}
	return o.Joiner
}

func (o *Options) ports() PortTable {
	if o == nil || o.Ports == nil {
		return defPorts
	}
	return o.Ports
}

func (o *Options) warn(err error) {
	o.log().LogAttrs(context.Background(), slog.LevelWarn, "furl advisory", slog.Any("error", err))
	if o != nil && o.OnWarning != nil {
		o.OnWarning(err)
	}
}
