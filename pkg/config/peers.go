package config

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// NormalizePeers returns a copy of peers in the same order where every entry
// without a port gets DefaultGossipPort. Entries that already carry a port are
// returned unchanged.
//
// Normalization never fails. An entry that is neither host:port nor a bare
// host is passed through as given; the gossip layer rejects it when it dials.
//
// IPv6 literals are detected structurally, so "::1" and "[::1]" both become
// "[::1]:9638" while "[::1]:4000" is left alone. A trailing colon with no port
// ("10.0.0.1:", "[::1]:") also gets DefaultGossipPort.
func NormalizePeers(peers []string) []string {
	if peers == nil {
		return nil
	}

	normalized := make([]string, len(peers))
	for i, peer := range peers {
		normalized[i] = normalizePeer(peer)
	}
	return normalized
}

func normalizePeer(peer string) string {
	defaultPort := strconv.Itoa(int(DefaultGossipPort))

	if host, port, err := net.SplitHostPort(peer); err == nil {
		// "10.0.0.1:" and "[::1]:" name a host but no port
		if port == "" && host != "" {
			return net.JoinHostPort(host, defaultPort)
		}
		return peer
	}

	host := peer
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	if ip, err := netip.ParseAddr(host); err == nil {
		return netip.AddrPortFrom(ip, DefaultGossipPort).String()
	}

	// Host names and anything else colon-free get the default port
	if host == "" || strings.ContainsAny(host, ":[]") {
		return peer
	}
	return net.JoinHostPort(host, defaultPort)
}
