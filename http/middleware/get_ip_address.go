package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/unitconv"
)

const unknownIPAddress = "0.0.0.0"

// nonPublicPrefixes are the IANA defined IPv4 non-public ranges
// beyond those covered by netip.Addr.IsPrivate.
var nonPublicPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the IP address of the client making the *http.Request
// and promotes it to *http.Request.Context under unitconv.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIPAddress(r)
			r = r.Clone(context.WithValue(r.Context(), unitconv.IpAddrKey, ip))
			h.ServeHTTP(w, r)
		})
	}
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// from the request.
//
// GetIPAddress skips addresses from non-public ranges.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			addr, err := netip.ParseAddr(ip)
			if err != nil || !isPublic(addr) {
				continue
			}

			return ip
		}
	}

	return unknownIPAddress
}

// ClientIPAddress returns the address GetIPAddress finds in the proxy headers of r,
// falling back to the host of r.RemoteAddr when the headers carry no public address.
func ClientIPAddress(r *http.Request) string {
	if ip := GetIPAddress(r.Header); ip != unknownIPAddress {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if _, err := netip.ParseAddr(host); err != nil {
		return unknownIPAddress
	}

	return host
}

// isPublic checks whether addr is a global unicast address outside any private subnet.
func isPublic(addr netip.Addr) bool {
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range nonPublicPrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
