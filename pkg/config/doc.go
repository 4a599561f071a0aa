/*
Package config holds the supervisor's process-wide configuration.

The configuration is assembled once from command-line flags, published, and
then read by every subsystem (gossip, HTTP gateway, service management,
command handlers) without being passed around.

# Lifecycle

	┌──────────── STARTUP (single goroutine) ────────────┐
	│                                                     │
	│  flags ──► ParseGossipListenAddr / ParseCommand ... │
	│                     │                               │
	│                     ▼                               │
	│  cfg := config.New().SetGroup(g).SetRing(r) ...     │
	│                     │                               │
	│                     ▼                               │
	│  config.Publish(cfg)   (stores a sealed copy once)  │
	└─────────────────────┬───────────────────────────────┘
	                      │
	      ┌───────────────┼────────────────┐
	      ▼               ▼                ▼
	   gossip         HTTP gateway    service loop
	config.Current() config.Current() config.Current()

Publish is backed by sync.Once and an atomic.Pointer. The first call stores
a sealed deep copy; later and concurrent calls are ignored without error and
never replace the stored value. Because losing callers wait on the Once until
the winner finishes, every goroutine that calls Current after any Publish has
returned sees the complete configuration.

Current is a single atomic load. Calling it before Publish is a startup
ordering bug and returns nil.

# Building a Config

	gossip, err := config.ParseGossipListenAddr("192.168.1.5")
	if err != nil {
		return err // *config.AddressParseError
	}

	cfg := config.New().
		SetCommand(config.CommandStart).
		SetPackage(ident).
		SetGossipListen(gossip).              // 192.168.1.5:9638
		SetGossipPeers([]string{"10.0.0.1"}). // stored as 10.0.0.1:9638
		SetTopology(types.TopologyLeader).
		SetGroup("production")

	config.Publish(cfg)

Set methods never fail. Values that need validation (addresses, commands,
topologies) are parsed by their own Parse functions before they reach the
Config. The only normalization the Config does itself is running gossip
peers through NormalizePeers.

# Addresses

GossipListenAddr and HTTPListenAddr accept either a full socket address or a
bare IP, which gets the default port (9638 for gossip, 9631 for HTTP):

	"192.168.1.5"      → 192.168.1.5:9638
	"192.168.1.5:4444" → 192.168.1.5:4444
	"[::1]:4444"       → [::1]:4444
	"not-an-ip:::"     → *AddressParseError

Host names are rejected; a listen address must be bindable as is. Both types
implement pflag.Value so flags can parse straight into them.

Peers are looser. NormalizePeers never fails: entries without a port get
9638, entries with a port are kept, and anything it cannot make sense of is
passed through for the gossip layer to reject when it dials.

	"10.0.0.1"      → "10.0.0.1:9638"
	"10.0.0.2:8000" → "10.0.0.2:8000"
	"peer.local"    → "peer.local:9638"
	"::1"           → "[::1]:9638"

# Reading

	cfg := config.Current()
	if ring, ok := cfg.Ring(); ok {
		// load the ring key
	}
	for _, peer := range cfg.GossipPeers() {
		// dial
	}

Slice accessors return copies. The published Config is sealed and panics if
a Set method is called on it.
*/
package config
