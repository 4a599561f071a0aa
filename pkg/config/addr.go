package config

import (
	"fmt"
	"net"
	"net/netip"
)

const (
	// DefaultGossipPort is the port the gossip layer listens on and the port assumed for peers
	DefaultGossipPort uint16 = 9638

	// DefaultHTTPPort is the HTTP gateway port
	DefaultHTTPPort uint16 = 9631
)

// AddressParseError is returned when a listen address is neither a full
// ip:port socket address nor a bare IP
type AddressParseError struct {
	Input string
	Err   error
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("invalid listen address %q: %v", e.Input, e.Err)
}

func (e *AddressParseError) Unwrap() error {
	return e.Err
}

// parseListenAddr accepts "ip:port", "[ipv6]:port" or a bare IP, which gets defaultPort
func parseListenAddr(s string, defaultPort uint16) (netip.AddrPort, error) {
	if addr, err := netip.ParseAddrPort(s); err == nil {
		return addr, nil
	}

	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.AddrPort{}, &AddressParseError{Input: s, Err: err}
	}
	return netip.AddrPortFrom(ip, defaultPort), nil
}

// orDefault resolves the zero AddrPort to 0.0.0.0:port so zero values stay usable
func orDefault(addr netip.AddrPort, port uint16) netip.AddrPort {
	if addr.IsValid() {
		return addr
	}
	return netip.AddrPortFrom(netip.IPv4Unspecified(), port)
}

// GossipListenAddr is the socket address the gossip layer binds.
// The zero value is 0.0.0.0:9638.
type GossipListenAddr struct {
	addr netip.AddrPort
}

// DefaultGossipListenAddr returns 0.0.0.0:9638
func DefaultGossipListenAddr() GossipListenAddr {
	return GossipListenAddr{addr: orDefault(netip.AddrPort{}, DefaultGossipPort)}
}

// ParseGossipListenAddr parses "ip:port" or a bare IP, which gets DefaultGossipPort.
// Host names are not accepted.
func ParseGossipListenAddr(s string) (GossipListenAddr, error) {
	addr, err := parseListenAddr(s, DefaultGossipPort)
	if err != nil {
		return GossipListenAddr{}, err
	}
	return GossipListenAddr{addr: addr}, nil
}

// AddrPort returns the fully resolved socket address
func (a GossipListenAddr) AddrPort() netip.AddrPort { return orDefault(a.addr, DefaultGossipPort) }

// IP returns the IP component
func (a GossipListenAddr) IP() netip.Addr { return a.AddrPort().Addr() }

// Port returns the port component
func (a GossipListenAddr) Port() uint16 { return a.AddrPort().Port() }

// SetIP replaces the IP and keeps the port
func (a *GossipListenAddr) SetIP(ip netip.Addr) {
	a.addr = netip.AddrPortFrom(ip, a.Port())
}

// SetPort replaces the port and keeps the IP
func (a *GossipListenAddr) SetPort(port uint16) {
	a.addr = netip.AddrPortFrom(a.IP(), port)
}

// Network implements net.Addr. Membership probes travel over UDP.
func (a GossipListenAddr) Network() string { return "udp" }

func (a GossipListenAddr) String() string { return a.AddrPort().String() }

// TCPAddr returns the address as a *net.TCPAddr for the rumor listener
func (a GossipListenAddr) TCPAddr() *net.TCPAddr { return net.TCPAddrFromAddrPort(a.AddrPort()) }

// UDPAddr returns the address as a *net.UDPAddr for the membership listener
func (a GossipListenAddr) UDPAddr() *net.UDPAddr { return net.UDPAddrFromAddrPort(a.AddrPort()) }

// ResolveAddrs returns the concrete endpoints for this address. A listen
// address is always a literal IP, so this never performs a lookup.
func (a GossipListenAddr) ResolveAddrs() []netip.AddrPort {
	return []netip.AddrPort{a.AddrPort()}
}

// Set implements pflag.Value
func (a *GossipListenAddr) Set(s string) error {
	parsed, err := ParseGossipListenAddr(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value
func (a *GossipListenAddr) Type() string { return "ip:port" }

// MarshalText implements encoding.TextMarshaler
func (a GossipListenAddr) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (a *GossipListenAddr) UnmarshalText(text []byte) error { return a.Set(string(text)) }

// HTTPListenAddr is the socket address the HTTP gateway binds.
// The zero value is 0.0.0.0:9631.
type HTTPListenAddr struct {
	addr netip.AddrPort
}

// DefaultHTTPListenAddr returns 0.0.0.0:9631
func DefaultHTTPListenAddr() HTTPListenAddr {
	return HTTPListenAddr{addr: orDefault(netip.AddrPort{}, DefaultHTTPPort)}
}

// ParseHTTPListenAddr parses "ip:port" or a bare IP, which gets DefaultHTTPPort
func ParseHTTPListenAddr(s string) (HTTPListenAddr, error) {
	addr, err := parseListenAddr(s, DefaultHTTPPort)
	if err != nil {
		return HTTPListenAddr{}, err
	}
	return HTTPListenAddr{addr: addr}, nil
}

func (a HTTPListenAddr) AddrPort() netip.AddrPort { return orDefault(a.addr, DefaultHTTPPort) }
func (a HTTPListenAddr) IP() netip.Addr { return a.AddrPort().Addr() }
func (a HTTPListenAddr) Port() uint16 { return a.AddrPort().Port() }

func (a *HTTPListenAddr) SetIP(ip netip.Addr) {
	a.addr = netip.AddrPortFrom(ip, a.Port())
}

func (a *HTTPListenAddr) SetPort(port uint16) {
	a.addr = netip.AddrPortFrom(a.IP(), port)
}

func (a HTTPListenAddr) Network() string { return "tcp" }
func (a HTTPListenAddr) String() string { return a.AddrPort().String() }
func (a HTTPListenAddr) TCPAddr() *net.TCPAddr { return net.TCPAddrFromAddrPort(a.AddrPort()) }
func (a HTTPListenAddr) ResolveAddrs() []netip.AddrPort {
	return []netip.AddrPort{a.AddrPort()}
}

// Set implements pflag.Value
func (a *HTTPListenAddr) Set(s string) error {
	parsed, err := ParseHTTPListenAddr(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a *HTTPListenAddr) Type() string { return "ip:port" }

func (a HTTPListenAddr) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *HTTPListenAddr) UnmarshalText(text []byte) error { return a.Set(string(text)) }
