package furl

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/dubizzle/furl/internal/types"
	"github.com/dubizzle/furl/internal/util"
)

// authority holds the userinfo, host and port of a URL.
type authority struct {
	user, pass       string
	hasUser, hasPass bool
	host             string
	port             uint16
	hasPort          bool
}

// parseNetloc parses netloc "[user[:pass]@]host[:port]".
// Empty user, password and host are absent. Port is absent when netloc has no port.
func parseNetloc(netloc string) (authority, error) {
	var auth authority
	if !types.ValidBrackets(netloc) {
		return auth, errtrace.Wrap(NewMalformedInputError("invalid IPv6 netloc %q", netloc))
	}

	hostport := netloc
	if userinfo, rest, ok := strings.Cut(netloc, "@"); ok {
		hostport = rest
		auth.user, auth.pass, _ = strings.Cut(userinfo, ":")
		auth.hasUser, auth.hasPass = auth.user != "", auth.pass != ""
	}

	var (
		host, port string
		hasPort    bool
	)
	colon := strings.LastIndexByte(hostport, ':')
	switch {
	case colon < 0:
		host = normHost(hostport)
	case strings.Contains(hostport, "]"):
		bracket := strings.LastIndexByte(hostport, ']')
		switch {
		case colon > bracket+1:
			return auth, errtrace.Wrap(NewMalformedInputError("invalid netloc %q", netloc))
		case colon == bracket+1:
			host, port, hasPort = hostport[:colon], hostport[colon+1:], true
		default:
			host = hostport
		}
	default:
		host, port, hasPort = normHost(hostport[:colon]), hostport[colon+1:], true
	}

	if hasPort {
		p, err := ParsePort(port)
		if err != nil {
			return auth, errtrace.Wrap(err)
		}
		auth.port, auth.hasPort = p, true
	}
	auth.host = host
	return auth, nil
}

func normHost(host string) string {
	if types.IsIPv6Literal(host) {
		return host
	}
	return util.LCase(host)
}

func (auth *authority) render(host string, defPort uint16, hasDefPort bool) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if auth.hasUser || auth.hasPass {
		sb.WriteString(auth.user)
		if auth.hasPass {
			sb.WriteByte(':')
			sb.WriteString(auth.pass)
		}
		sb.WriteByte('@')
	}
	sb.WriteString(host)
	if auth.hasPort && (!hasDefPort || auth.port != defPort) {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(auth.port)))
	}
	return sb.String()
}

// Username returns the username and whether it is set.
func (u *URL) Username() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.auth.user, u.auth.hasUser
}

// SetUsername sets the username, the empty username renders as "@host".
func (u *URL) SetUsername(user string) *URL {
	u.auth.user, u.auth.hasUser = user, true
	return u
}

// RemoveUsername unsets the username.
func (u *URL) RemoveUsername() *URL {
	u.auth.user, u.auth.hasUser = "", false
	return u
}

// Password returns the password and whether it is set.
func (u *URL) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.auth.pass, u.auth.hasPass
}

// SetPassword sets the password.
func (u *URL) SetPassword(pass string) *URL {
	u.auth.pass, u.auth.hasPass = pass, true
	return u
}

// RemovePassword unsets the password.
func (u *URL) RemovePassword() *URL {
	u.auth.pass, u.auth.hasPass = "", false
	return u
}

// Host returns the host, IPv6 literals are returned with brackets.
func (u *URL) Host() string {
	if u == nil {
		return ""
	}
	return u.auth.host
}

// SetHost sets the host.
// Hosts are lowercased except IPv6 literals. The empty host unsets the host.
// It returns [ErrMalformedInput] on unbalanced IPv6 literal brackets.
func (u *URL) SetHost(host string) error {
	host, err := u.checkHost(host)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.auth.host = host
	return nil
}

func (u *URL) checkHost(host string) (string, error) {
	host, err := validHost(host)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	u.checkHostEncoding(host)
	return host, nil
}

func validHost(host string) (string, error) {
	if !types.ValidBrackets(host) {
		return "", errtrace.Wrap(NewMalformedInputError("invalid IPv6 host %q", host))
	}
	return normHost(host), nil
}

func (u *URL) checkHostEncoding(host string) {
	if host != "" && u.opts.strict() && !types.IsHostName(host) {
		u.opts.warn(newAdvisoryError(ErrImproperEncoding, "improper host received: %q", host))
	}
}

// ASCIIHost returns the host with internationalized labels converted to Punycode.
func (u *URL) ASCIIHost() (string, error) {
	if u == nil {
		return "", nil
	}
	return errtrace.Wrap2(types.ToASCII(u.auth.host))
}

// Port returns the port and whether it is set.
// A URL without an explicit port has the default port of its scheme, if known.
func (u *URL) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.auth.port, u.auth.hasPort
}

// SetPort sets the port.
// It returns [ErrInvalidPort] when port is out of range 1-65535.
func (u *URL) SetPort(port int) error {
	p, err := validPort(port)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.auth.port, u.auth.hasPort = p, true
	return nil
}

// ResetPort reverts the port to the default port of the scheme.
// The port is unset when the scheme has no default port.
func (u *URL) ResetPort() *URL {
	u.auth.port, u.auth.hasPort = u.defaultPort()
	return u
}

func (u *URL) defaultPort() (uint16, bool) {
	if u.scheme == "" {
		return 0, false
	}
	return u.opts.ports().DefaultPort(u.scheme)
}

// Netloc returns the network location "[user[:pass]@]host[:port]".
// The port is omitted when it equals the default port of the scheme.
func (u *URL) Netloc() string { return u.RenderNetloc(nil) }

// RenderNetloc returns the network location the way [URL.Render] writes it with the same options.
func (u *URL) RenderNetloc(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	host := u.auth.host
	if opts.WantASCIIHost() {
		if ascii, err := types.ToASCII(host); err == nil {
			host = ascii
		}
	}
	defPort, ok := u.defaultPort()
	return u.auth.render(host, defPort, ok)
}

// SetNetloc replaces username, password, host and port with the ones parsed from netloc.
// A netloc without port sets the default port of the scheme.
// It returns [ErrMalformedInput] or [ErrInvalidPort] leaving the URL unchanged.
func (u *URL) SetNetloc(netloc string) error {
	auth, err := parseNetloc(netloc)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !auth.hasPort {
		auth.port, auth.hasPort = u.defaultPort()
	}
	u.checkHostEncoding(auth.host)
	u.auth = auth
	return nil
}
