package config

import (
	"net/netip"
	"slices"

	"github.com/bodymindarts/habitat/pkg/types"
)

// optional is a string that may be absent. An empty value that was set explicitly is present.
type optional struct {
	value string
	ok    bool
}

func some(v string) optional { return optional{value: v, ok: true} }

func (o optional) get() (string, bool) { return o.value, o.ok }

// Config holds the supervisor's configuration.
//
// It is built once at startup with the Set methods, which return the Config
// so calls can be chained, and then handed to Publish. Every subsystem reads
// it through Current afterwards. The published copy is sealed: calling a Set
// method on it panics.
type Config struct {
	httpListen      HTTPListenAddr
	gossipListen    GossipListenAddr
	command         Command
	pkg             types.PackageIdent
	localArtifact   optional
	url             string
	topology        types.Topology
	group           string
	binds           []string
	gossipPeers     []string
	gossipPermanent bool
	updateStrategy  types.UpdateStrategy
	organization    optional
	ring            optional
	configFrom      optional

	sealed bool
}

// New returns a Config with every field at its default
func New() *Config {
	return &Config{
		httpListen:     DefaultHTTPListenAddr(),
		gossipListen:   DefaultGossipListenAddr(),
		command:        CommandStart,
		topology:       types.TopologyStandalone,
		updateStrategy: types.UpdateStrategyNone,
	}
}

func (c *Config) mutable() *Config {
	if c.sealed {
		panic("config: Set called on the published configuration")
	}
	return c
}

// SetHTTPListen replaces the HTTP gateway listen address
func (c *Config) SetHTTPListen(addr HTTPListenAddr) *Config {
	c.mutable().httpListen = addr
	return c
}

// SetHTTPListenIP replaces only the IP of the HTTP gateway listen address
func (c *Config) SetHTTPListenIP(ip netip.Addr) *Config {
	c.mutable().httpListen.SetIP(ip)
	return c
}

// SetHTTPListenPort replaces only the port of the HTTP gateway listen address
func (c *Config) SetHTTPListenPort(port uint16) *Config {
	c.mutable().httpListen.SetPort(port)
	return c
}

func (c *Config) HTTPListen() HTTPListenAddr {
	return c.httpListen
}

// SetGossipListen replaces the gossip listen address
func (c *Config) SetGossipListen(addr GossipListenAddr) *Config {
	c.mutable().gossipListen = addr
	return c
}

// SetGossipListenIP replaces only the IP of the gossip listen address
func (c *Config) SetGossipListenIP(ip netip.Addr) *Config {
	c.mutable().gossipListen.SetIP(ip)
	return c
}

// SetGossipListenPort replaces only the port of the gossip listen address
func (c *Config) SetGossipListenPort(port uint16) *Config {
	c.mutable().gossipListen.SetPort(port)
	return c
}

func (c *Config) GossipListen() GossipListenAddr {
	return c.gossipListen
}

// SetCommand records the command that was invoked
func (c *Config) SetCommand(command Command) *Config {
	c.mutable().command = command
	return c
}

// Command returns the command that was invoked
func (c *Config) Command() Command {
	return c.command
}

// SetPackage sets the package to supervise
func (c *Config) SetPackage(ident types.PackageIdent) *Config {
	c.mutable().pkg = ident
	return c
}

func (c *Config) Package() types.PackageIdent {
	return c.pkg
}

// SetLocalArtifact sets the path of a local .hart file to install instead of downloading
func (c *Config) SetLocalArtifact(path string) *Config {
	c.mutable().localArtifact = some(path)
	return c
}

// LocalArtifact returns the local artifact path and whether one was given
func (c *Config) LocalArtifact() (string, bool) {
	return c.localArtifact.get()
}

// SetURL sets the depot URL. An empty URL means unset.
func (c *Config) SetURL(url string) *Config {
	c.mutable().url = url
	return c
}

func (c *Config) URL() string {
	return c.url
}

func (c *Config) SetTopology(topology types.Topology) *Config {
	c.mutable().topology = topology
	return c
}

func (c *Config) Topology() types.Topology {
	return c.topology
}

// SetGroup sets the service group. An empty group means unset.
func (c *Config) SetGroup(group string) *Config {
	c.mutable().group = group
	return c
}

func (c *Config) Group() string {
	return c.group
}

// SetBinds sets the service bindings, in order
func (c *Config) SetBinds(binds []string) *Config {
	c.mutable().binds = slices.Clone(binds)
	return c
}

// Binds returns a copy of the service bindings
func (c *Config) Binds() []string {
	return slices.Clone(c.binds)
}

// SetGossipPeers sets the initial gossip peers. Each entry is passed through
// NormalizePeers, so entries without a port get DefaultGossipPort.
func (c *Config) SetGossipPeers(peers []string) *Config {
	c.mutable().gossipPeers = NormalizePeers(peers)
	return c
}

// GossipPeers returns a copy of the normalized gossip peers
func (c *Config) GossipPeers() []string {
	return slices.Clone(c.gossipPeers)
}

// SetGossipPermanent marks this supervisor as a permanent gossip peer
func (c *Config) SetGossipPermanent(permanent bool) *Config {
	c.mutable().gossipPermanent = permanent
	return c
}

func (c *Config) GossipPermanent() bool {
	return c.gossipPermanent
}

func (c *Config) SetUpdateStrategy(strategy types.UpdateStrategy) *Config {
	c.mutable().updateStrategy = strategy
	return c
}

func (c *Config) UpdateStrategy() types.UpdateStrategy {
	return c.updateStrategy
}

func (c *Config) SetOrganization(org string) *Config {
	c.mutable().organization = some(org)
	return c
}

// Organization returns the organization and whether one was given
func (c *Config) Organization() (string, bool) {
	return c.organization.get()
}

// SetRing sets the name of the ring whose key authenticates gossip traffic
func (c *Config) SetRing(ring string) *Config {
	c.mutable().ring = some(ring)
	return c
}

// Ring returns the ring name and whether one was given
func (c *Config) Ring() (string, bool) {
	return c.ring.get()
}

// SetConfigFrom sets a directory to read the package's configuration templates from
func (c *Config) SetConfigFrom(dir string) *Config {
	c.mutable().configFrom = some(dir)
	return c
}

// ConfigFrom returns the configuration directory override and whether one was given
func (c *Config) ConfigFrom() (string, bool) {
	return c.configFrom.get()
}

// Clone returns an unsealed deep copy of c
func (c *Config) Clone() *Config {
	clone := *c
	clone.binds = slices.Clone(c.binds)
	clone.gossipPeers = slices.Clone(c.gossipPeers)
	clone.sealed = false
	return &clone
}

// Equal reports whether c and other hold the same values. Whether either
// side is published is not compared.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.httpListen.AddrPort() == other.httpListen.AddrPort() &&
		c.gossipListen.AddrPort() == other.gossipListen.AddrPort() &&
		c.command == other.command &&
		c.pkg == other.pkg &&
		c.localArtifact == other.localArtifact &&
		c.url == other.url &&
		c.topology == other.topology &&
		c.group == other.group &&
		slices.Equal(c.binds, other.binds) &&
		slices.Equal(c.gossipPeers, other.gossipPeers) &&
		c.gossipPermanent == other.gossipPermanent &&
		c.updateStrategy == other.updateStrategy &&
		c.organization == other.organization &&
		c.ring == other.ring &&
		c.configFrom == other.configFrom
}
