package health

import (
	"context"
	"fmt"
	"net"
	"time"
)

// TCPChecker checks that a gossip peer accepts TCP connections
type TCPChecker struct {
	// Address is the peer address, e.g. "10.0.0.1:9638"
	Address string

	// Timeout is the connection timeout (default: 2 seconds)
	Timeout time.Duration
}

// NewTCPChecker creates a new TCP health checker
func NewTCPChecker(address string) *TCPChecker {
	return &TCPChecker{
		Address: address,
		Timeout: DefaultConfig().Timeout,
	}
}

// Check performs the TCP health check
func (t *TCPChecker) Check(ctx context.Context) Result {
	start := time.Now()

	dialer := &net.Dialer{
		Timeout: t.Timeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", t.Address)
	if err != nil {
		return Result{
			Target:    t.Address,
			Healthy:   false,
			Message:   fmt.Sprintf("connection failed: %v", err),
			CheckedAt: start,
			Duration:  time.Since(start),
		}
	}
	defer conn.Close()

	return Result{
		Target:    t.Address,
		Healthy:   true,
		Message:   fmt.Sprintf("TCP connection to %s successful", t.Address),
		CheckedAt: start,
		Duration:  time.Since(start),
	}
}

// WithTimeout sets the connection timeout
func (t *TCPChecker) WithTimeout(timeout time.Duration) *TCPChecker {
	t.Timeout = timeout
	return t
}
