package types

//go:generate go tool errtrace -w .

import (
	"net"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// NetlocEnd returns the index where the authority part of s ends, i.e. the first "/", "?" or "#".
func NetlocEnd(s string) int {
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		return i
	}
	return len(s)
}

// ValidBrackets reports whether square brackets of an IP-literal in the authority part of s
// are balanced, i.e. either both "[" and "]" are present or none of them.
func ValidBrackets(s string) bool {
	s = s[:NetlocEnd(s)]
	return strings.Contains(s, "[") == strings.Contains(s, "]")
}

// IsIPv6Literal reports whether host looks like a bracketed IPv6 literal.
func IsIPv6Literal(host string) bool { return strings.Contains(host, "]") }

// IP returns the parsed IP address of host if it is an IPv4 address or an IPv6 literal, otherwise nil.
func IP(host string) net.IP {
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if v := ip.To4(); v != nil {
		ip = v
	}
	return ip
}

// IsHostName reports whether host is a valid IP address or a domain name.
// Internationalized names are accepted as long as they convert to ASCII.
func IsHostName(host string) bool {
	if host == "" {
		return false
	}
	if IP(host) != nil {
		return true
	}
	if IsIPv6Literal(host) {
		return false
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return false
	}
	_, ok := dns.IsDomainName(ascii)
	return ok
}

// ToASCII converts internationalized host to its Punycode form.
// IP addresses and ASCII names are returned unchanged.
func ToASCII(host string) (string, error) {
	if host == "" || IP(host) != nil || IsIPv6Literal(host) {
		return host, nil
	}
	return errtrace.Wrap2(idna.Lookup.ToASCII(host))
}
