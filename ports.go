package furl

import (
	"maps"

	"braces.dev/errtrace"

	"github.com/dubizzle/furl/internal/util"
)

// PortTable resolves the default port of a URL scheme.
type PortTable interface {
	// DefaultPort returns the default port of the lowercase scheme.
	DefaultPort(scheme string) (uint16, bool)
}

// PortMap is a [PortTable] backed by a map of lowercase schemes to ports.
type PortMap map[string]uint16

// DefaultPort implements [PortTable].
func (m PortMap) DefaultPort(scheme string) (uint16, bool) {
	port, ok := m[util.LCase(scheme)]
	return port, ok && port > 0
}

// Clone returns a copy of the port map.
func (m PortMap) Clone() PortMap { return maps.Clone(m) }

var defPorts = PortMap{
	"ftp":   21,
	"ssh":   22,
	"http":  80,
	"https": 443,
}

// DefaultPorts returns the default scheme to port table.
func DefaultPorts() PortMap { return defPorts.Clone() }

// ParsePort parses a port string.
// Valid ports consist of ASCII digits only and lie in range 1-65535.
func ParsePort(s string) (uint16, error) {
	if s == "" {
		return 0, errtrace.Wrap(newInvalidPortError(s))
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errtrace.Wrap(newInvalidPortError(s))
		}
		n = n*10 + uint32(c-'0')
		if n > 65535 {
			return 0, errtrace.Wrap(newInvalidPortError(s))
		}
	}
	if n == 0 {
		return 0, errtrace.Wrap(newInvalidPortError(s))
	}
	return uint16(n), nil
}

func validPort(port int) (uint16, error) {
	if port < 1 || port > 65535 {
		return 0, errtrace.Wrap(newInvalidPortError(port))
	}
	return uint16(port), nil
}
