/*
Package health probes gossip peers for reachability.

At startup the supervisor dials each configured gossip peer over TCP so that
an operator sees typos and firewalled peers in the log right away. The probe
is advisory: peer lists are best-effort, an unreachable peer never aborts
startup, and the gossip layer keeps trying every peer regardless of what the
probe found.

# Usage

	results := health.ProbePeers(ctx, config.Current().GossipPeers(), health.DefaultConfig())
	for _, r := range results {
		if !r.Healthy {
			logger.Warn().Str("peer", r.Target).Msg(r.Message)
		}
	}
	metrics.GossipPeersReachable.Set(float64(health.Reachable(results)))

Each peer is retried until it accepts a connection or fails Config.Retries
times in a row, with Config.Interval between attempts. All peers are probed
concurrently, and results come back in the order the peers were given.

Checker is the extension point; TCPChecker is the only implementation.
*/
package health
