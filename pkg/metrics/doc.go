/*
Package metrics exposes the supervisor's Prometheus metrics and its
health/readiness state.

All collectors are registered with the default Prometheus registry at init
time and served by Handler on the HTTP gateway listen address.

# Metrics

Configuration:
  - hab_sup_config_published: 1 once the configuration is published
  - hab_sup_config_publish_calls_total{result}: "stored" for the single call
    whose value was kept, "ignored" for every later or losing call
  - hab_sup_config_info{command,topology,update_strategy}: constant 1

Gossip:
  - hab_sup_gossip_peers: number of configured (normalized) peers
  - hab_sup_gossip_peers_reachable: peers that accepted a TCP connection
    during the startup probe

Recording a publication:

	stored := config.Publish(cfg)
	metrics.RecordPublish(stored, cfg.Command().String(), cfg.Topology().String(),
		cfg.UpdateStrategy().String(), len(cfg.GossipPeers()))

config.Publish does this itself; callers only use RecordPublish directly in
tests.

# Health and Readiness

Components report their state with SetComponent. /health is "failing" while
any component has reported a failure. /ready only asks whether the
configuration is published, and carries the published command and topology
as detail:

	metrics.SetComponent(metrics.ComponentGossipPeers, false, "0/2 peers reachable")

	mux.Handle("/health", metrics.HealthHandler())
	mux.Handle("/ready", metrics.ReadyHandler())
	mux.Handle("/live", metrics.LiveHandler())
	mux.Handle("/metrics", metrics.Handler())

An unreachable gossip peer makes the supervisor fail /health but not /ready.
*/
package metrics
