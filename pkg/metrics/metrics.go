package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Configuration metrics
	ConfigPublished = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hab_sup_config_published",
			Help: "Whether the supervisor configuration has been published (1 = published)",
		},
	)

	ConfigPublishCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hab_sup_config_publish_calls_total",
			Help: "Total number of configuration publish calls by result (stored or ignored)",
		},
		[]string{"result"},
	)

	ConfigInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hab_sup_config_info",
			Help: "Published supervisor configuration, always 1",
		},
		[]string{"command", "topology", "update_strategy"},
	)

	// Gossip metrics
	GossipPeers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hab_sup_gossip_peers",
			Help: "Number of configured gossip peers",
		},
	)

	GossipPeersReachable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hab_sup_gossip_peers_reachable",
			Help: "Number of configured gossip peers that accepted a TCP connection at startup",
		},
	)
)

func init() {
	prometheus.MustRegister(ConfigPublished)
	prometheus.MustRegister(ConfigPublishCalls)
	prometheus.MustRegister(ConfigInfo)
	prometheus.MustRegister(GossipPeers)
	prometheus.MustRegister(GossipPeersReachable)
}

// RecordPublish counts a publish call. Only the stored call updates the config
// gauges and marks the config component ready.
func RecordPublish(stored bool, command, topology, updateStrategy string, peers int) {
	if !stored {
		ConfigPublishCalls.WithLabelValues("ignored").Inc()
		return
	}

	ConfigPublishCalls.WithLabelValues("stored").Inc()
	ConfigPublished.Set(1)
	ConfigInfo.Reset()
	ConfigInfo.WithLabelValues(command, topology, updateStrategy).Set(1)
	GossipPeers.Set(float64(peers))
	SetComponent(ComponentConfig, true,
		fmt.Sprintf("command=%s topology=%s update_strategy=%s", command, topology, updateStrategy))
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
