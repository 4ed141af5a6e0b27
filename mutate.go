package furl

import (
	"braces.dev/errtrace"
)

// AddOptions holds components added by [URL.Add].
// Nil fields are skipped.
type AddOptions struct {
	// Args is a shortcut for QueryParams, both are added when provided, Args first.
	Args QueryValue
	// Path is joined to the URL path.
	Path PathValue
	// QueryParams are appended to the URL query.
	QueryParams QueryValue
	// FragmentPath is joined to the fragment path.
	FragmentPath PathValue
	// FragmentArgs are appended to the fragment query.
	FragmentArgs QueryValue
}

// Add adds components to the URL.
// Providing both Args and QueryParams reports [ErrParamOverlap].
func (u *URL) Add(opts *AddOptions) *URL {
	if opts == nil {
		return u
	}
	u.init()

	if opts.Args != nil && opts.QueryParams != nil {
		u.opts.warn(newAdvisoryError(ErrParamOverlap,
			"both Args and QueryParams provided to URL.Add; Args is a shortcut for QueryParams, not to be used with it",
		))
	}

	if opts.Path != nil {
		u.path.Add(opts.Path)
	}
	if opts.Args != nil {
		u.query.Add(opts.Args)
	}
	if opts.QueryParams != nil {
		u.query.Add(opts.QueryParams)
	}
	if opts.FragmentPath != nil || opts.FragmentArgs != nil {
		u.fragment.Add(FragmentAdd{Path: opts.FragmentPath, Args: opts.FragmentArgs})
	}
	return u
}

// SetOptions holds components adopted by [URL.Set].
// Nil fields are skipped.
//
// Overlapping parameters report [ErrParamOverlap], the later ones in the following groups win:
//   - Netloc, then Host and Port;
//   - Query, then Args, then QueryParams;
//   - Fragment, then FragmentPath, FragmentArgs and FragmentSeparator.
type SetOptions struct {
	Args              QueryValue
	Path              PathValue
	Fragment          *string
	Scheme            *string
	Netloc            *string
	FragmentPath      PathValue
	FragmentArgs      QueryValue
	FragmentSeparator *bool
	Host              *string
	Port              *int
	Query             QueryValue
	QueryParams       QueryValue
	Username          *string
	Password          *string
}

// Set replaces components of the URL.
// It returns [ErrMalformedInput] or [ErrInvalidPort] leaving the URL unchanged.
func (u *URL) Set(opts *SetOptions) error {
	if opts == nil {
		return nil
	}
	u.init()
	u.warnSetOverlap(opts)

	// validate everything that may fail before the first mutation
	var (
		auth = u.auth
		host string
		err  error
	)
	if opts.Netloc != nil {
		if auth, err = parseNetloc(*opts.Netloc); err != nil {
			return errtrace.Wrap(err)
		}
		if !auth.hasPort {
			auth.port, auth.hasPort = u.defaultPort()
		}
	}
	if opts.Port != nil {
		if auth.port, err = validPort(*opts.Port); err != nil {
			return errtrace.Wrap(err)
		}
		auth.hasPort = true
	}
	if opts.Host != nil {
		if host, err = validHost(*opts.Host); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if opts.Netloc != nil {
		u.checkHostEncoding(auth.host)
	}
	if opts.Host != nil {
		u.checkHostEncoding(host)
	}

	u.auth = auth
	if opts.Username != nil {
		u.SetUsername(*opts.Username)
	}
	if opts.Password != nil {
		u.SetPassword(*opts.Password)
	}
	if opts.Scheme != nil {
		u.SetScheme(*opts.Scheme)
	}
	if opts.Host != nil {
		u.auth.host = host
	}

	if opts.Path != nil {
		u.path.Load(opts.Path)
	}
	if opts.Query != nil {
		u.query.Load(opts.Query)
	}
	if opts.Args != nil {
		u.query.Load(opts.Args)
	}
	if opts.QueryParams != nil {
		u.query.Load(opts.QueryParams)
	}
	if opts.Fragment != nil {
		u.fragment.Load(*opts.Fragment)
	}
	if opts.FragmentPath != nil {
		u.fragment.path.Load(opts.FragmentPath)
	}
	if opts.FragmentArgs != nil {
		u.fragment.query.Load(opts.FragmentArgs)
	}
	if opts.FragmentSeparator != nil {
		u.fragment.SetSeparator(*opts.FragmentSeparator)
	}
	return nil
}

func (u *URL) warnSetOverlap(opts *SetOptions) {
	if opts.Netloc != nil && (opts.Host != nil || opts.Port != nil) {
		u.opts.warn(newAdvisoryError(ErrParamOverlap, "Netloc and Host or Port provided to URL.Set"))
	}

	var n int
	for _, v := range []QueryValue{opts.Query, opts.Args, opts.QueryParams} {
		if v != nil {
			n++
		}
	}
	if n > 1 {
		u.opts.warn(newAdvisoryError(ErrParamOverlap, "Query, Args and/or QueryParams provided to URL.Set"))
	}

	if opts.Fragment != nil &&
		(opts.FragmentPath != nil || opts.FragmentArgs != nil || opts.FragmentSeparator != nil) {
		u.opts.warn(newAdvisoryError(ErrParamOverlap,
			"Fragment and FragmentPath, FragmentArgs or FragmentSeparator provided to URL.Set",
		))
	}
}

// RemoveOptions describes components removed by [URL.Remove].
type RemoveOptions struct {
	// Args is a shortcut for QueryParams.
	Args []string
	// Path is removed from the end of the URL path, [WholePath] removes the whole path.
	Path PathValue
	// Fragment removes the whole fragment.
	Fragment bool
	// Query removes the whole query.
	Query bool
	// QueryParams are keys removed from the query.
	QueryParams []string
	// Port reverts the port to the default port of the scheme.
	Port bool
	// FragmentPath is removed from the end of the fragment path.
	FragmentPath PathValue
	// FragmentArgs are keys removed from the fragment query.
	FragmentArgs []string
	// Username removes the username.
	Username bool
	// Password removes the password.
	Password bool
	// Scheme removes the scheme.
	Scheme bool
}

// Remove removes components of the URL.
func (u *URL) Remove(opts *RemoveOptions) *URL {
	if opts == nil {
		return u
	}
	u.init()

	if opts.Scheme {
		u.SetScheme("")
	}
	if opts.Port {
		u.ResetPort()
	}
	if opts.Username {
		u.RemoveUsername()
	}
	if opts.Password {
		u.RemovePassword()
	}
	if opts.Path != nil {
		u.path.Remove(opts.Path)
	}
	if len(opts.Args) > 0 {
		u.query.Remove(opts.Args...)
	}
	if opts.Query {
		u.query.Clear()
	}
	if opts.Fragment {
		u.fragment.Remove(FragmentRemove{All: true})
	}
	if len(opts.QueryParams) > 0 {
		u.query.Remove(opts.QueryParams...)
	}
	if opts.FragmentPath != nil || len(opts.FragmentArgs) > 0 {
		u.fragment.Remove(FragmentRemove{Path: opts.FragmentPath, Args: opts.FragmentArgs})
	}
	return u
}
