package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePeers(t *testing.T) {
	input := []string{"10.0.0.1", "10.0.0.2:8000"}

	result := NormalizePeers(input)

	assert.Equal(t, []string{"10.0.0.1:9638", "10.0.0.2:8000"}, result)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2:8000"}, input, "input must not be modified")
}

func TestNormalizePeer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ipv4 without port", input: "192.168.0.10", expected: "192.168.0.10:9638"},
		{name: "ipv4 with port", input: "192.168.0.10:1234", expected: "192.168.0.10:1234"},
		{name: "host name without port", input: "peer.example.com", expected: "peer.example.com:9638"},
		{name: "host name with port", input: "peer.example.com:9000", expected: "peer.example.com:9000"},
		{name: "bare ipv6", input: "::1", expected: "[::1]:9638"},
		{name: "bracketed ipv6 without port", input: "[2001:db8::1]", expected: "[2001:db8::1]:9638"},
		{name: "bracketed ipv6 with port", input: "[2001:db8::1]:9000", expected: "[2001:db8::1]:9000"},
		{name: "ipv6 with zone", input: "fe80::1%eth0", expected: "[fe80::1%eth0]:9638"},
		{name: "ipv4 with empty port", input: "10.0.0.1:", expected: "10.0.0.1:9638"},
		{name: "ipv6 with empty port", input: "[::1]:", expected: "[::1]:9638"},
		{name: "host name with empty port", input: "host:", expected: "host:9638"},
		{name: "lone colon passes through", input: ":", expected: ":"},
		{name: "port out of range passes through", input: "10.0.0.1:99999", expected: "10.0.0.1:99999"},
		{name: "malformed passes through", input: "a:b:c", expected: "a:b:c"},
		{name: "unbalanced bracket passes through", input: "[10.0.0.1", expected: "[10.0.0.1"},
		{name: "empty passes through", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePeer(tt.input))
		})
	}
}

func TestNormalizePeersPreservesOrder(t *testing.T) {
	input := []string{"c", "a:1", "b", "::2"}
	assert.Equal(t, []string{"c:9638", "a:1", "b:9638", "[::2]:9638"}, NormalizePeers(input))
}

func TestNormalizePeersEmpty(t *testing.T) {
	assert.Nil(t, NormalizePeers(nil))
	assert.Equal(t, []string{}, NormalizePeers([]string{}))
}
