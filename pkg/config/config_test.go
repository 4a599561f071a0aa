package config

import (
	"bytes"
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/bodymindarts/habitat/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	c := New()

	assert.Equal(t, types.TopologyStandalone, c.Topology())
	assert.Equal(t, CommandStart, c.Command())
	assert.Equal(t, "", c.URL())
	assert.Equal(t, "0.0.0.0:9638", c.GossipListen().String())
	assert.Equal(t, "0.0.0.0:9631", c.HTTPListen().String())
	assert.Equal(t, types.UpdateStrategyNone, c.UpdateStrategy())
	assert.Equal(t, "", c.Group())
	assert.False(t, c.GossipPermanent())
	assert.Empty(t, c.Binds())
	assert.Empty(t, c.GossipPeers())
	assert.True(t, c.Package().IsZero())

	_, ok := c.LocalArtifact()
	assert.False(t, ok)
	_, ok = c.Organization()
	assert.False(t, ok)
	_, ok = c.Ring()
	assert.False(t, ok)
	_, ok = c.ConfigFrom()
	assert.False(t, ok)
}

func TestZeroConfigMatchesNew(t *testing.T) {
	var zero Config
	assert.True(t, zero.Equal(New()))
}

func TestSetters(t *testing.T) {
	ident := types.PackageIdent{Origin: "core", Name: "redis"}
	gossip, err := ParseGossipListenAddr("10.0.0.1:5000")
	require.NoError(t, err)

	c := New()
	c.SetCommand(CommandShellBash)
	c.SetPackage(ident)
	c.SetURL("http://foolio.com")
	c.SetTopology(types.TopologyLeader)
	c.SetGroup("production")
	c.SetBinds([]string{"db:redis.default"})
	c.SetGossipPeers([]string{"10.0.0.9"})
	c.SetGossipPermanent(true)
	c.SetUpdateStrategy(types.UpdateStrategyRolling)
	c.SetLocalArtifact("/tmp/core-redis.hart")
	c.SetOrganization("acme")
	c.SetRing("acme-ring")
	c.SetConfigFrom("/src/redis")
	c.SetGossipListen(gossip)

	assert.Equal(t, CommandShellBash, c.Command())
	assert.Equal(t, ident, c.Package())
	assert.Equal(t, "http://foolio.com", c.URL())
	assert.Equal(t, types.TopologyLeader, c.Topology())
	assert.Equal(t, "production", c.Group())
	assert.Equal(t, []string{"db:redis.default"}, c.Binds())
	assert.Equal(t, []string{"10.0.0.9:9638"}, c.GossipPeers())
	assert.True(t, c.GossipPermanent())
	assert.Equal(t, types.UpdateStrategyRolling, c.UpdateStrategy())
	assert.Equal(t, gossip, c.GossipListen())

	artifact, ok := c.LocalArtifact()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/core-redis.hart", artifact)

	org, ok := c.Organization()
	assert.True(t, ok)
	assert.Equal(t, "acme", org)

	ring, ok := c.Ring()
	assert.True(t, ok)
	assert.Equal(t, "acme-ring", ring)

	dir, ok := c.ConfigFrom()
	assert.True(t, ok)
	assert.Equal(t, "/src/redis", dir)
}

func TestListenIPAndPortSetters(t *testing.T) {
	c := New().
		SetHTTPListenIP(netip.MustParseAddr("127.0.0.1")).
		SetHTTPListenPort(8080).
		SetGossipListenPort(7000).
		SetGossipListenIP(netip.MustParseAddr("10.0.0.1"))

	assert.Equal(t, "127.0.0.1:8080", c.HTTPListen().String())
	assert.Equal(t, "10.0.0.1:7000", c.GossipListen().String())

	c.SetHTTPListenIP(netip.MustParseAddr("::1"))
	assert.Equal(t, "[::1]:8080", c.HTTPListen().String())
}

func TestSetTwiceKeepsLast(t *testing.T) {
	c := New().SetGroup("first").SetGroup("second")
	assert.Equal(t, "second", c.Group())

	c.SetRing("a").SetRing("b")
	ring, _ := c.Ring()
	assert.Equal(t, "b", ring)

	c.SetGossipPeers([]string{"1.1.1.1"}).SetGossipPeers([]string{"2.2.2.2:1"})
	assert.Equal(t, []string{"2.2.2.2:1"}, c.GossipPeers())
}

func TestChainedEqualsSeparate(t *testing.T) {
	chained := New().
		SetURL("http://depot").
		SetTopology(types.TopologyLeader).
		SetGroup("prod").
		SetBinds([]string{"a:b.c"}).
		SetGossipPeers([]string{"10.0.0.1", "10.0.0.2:8000"}).
		SetUpdateStrategy(types.UpdateStrategyAtOnce).
		SetOrganization("org")

	separate := New()
	separate.SetURL("http://depot")
	separate.SetTopology(types.TopologyLeader)
	separate.SetGroup("prod")
	separate.SetBinds([]string{"a:b.c"})
	separate.SetGossipPeers([]string{"10.0.0.1", "10.0.0.2:8000"})
	separate.SetUpdateStrategy(types.UpdateStrategyAtOnce)
	separate.SetOrganization("org")

	assert.Equal(t, separate, chained)
	assert.True(t, chained.Equal(separate))
}

func TestSliceOwnership(t *testing.T) {
	binds := []string{"a:b.c"}
	peers := []string{"10.0.0.1:1"}

	c := New().SetBinds(binds).SetGossipPeers(peers)

	// Caller mutations after Set do not leak in
	binds[0] = "changed"
	peers[0] = "changed"
	assert.Equal(t, []string{"a:b.c"}, c.Binds())
	assert.Equal(t, []string{"10.0.0.1:1"}, c.GossipPeers())

	// Mutating returned slices does not leak in either
	got := c.Binds()
	got[0] = "changed"
	assert.Equal(t, []string{"a:b.c"}, c.Binds())

	gotPeers := c.GossipPeers()
	gotPeers[0] = "changed"
	assert.Equal(t, []string{"10.0.0.1:1"}, c.GossipPeers())
}

func TestEmptyOptionalIsPresent(t *testing.T) {
	c := New().SetOrganization("")
	org, ok := c.Organization()
	assert.True(t, ok)
	assert.Equal(t, "", org)
}

func TestCloneAndEqual(t *testing.T) {
	original := New().SetGroup("prod").SetGossipPeers([]string{"10.0.0.1"})
	clone := original.Clone()

	assert.True(t, original.Equal(clone))
	assert.NotSame(t, original, clone)

	clone.SetGossipPeers([]string{"10.0.0.2"})
	assert.False(t, original.Equal(clone))
	assert.Equal(t, []string{"10.0.0.1:9638"}, original.GossipPeers())

	var nilConfig *Config
	assert.True(t, nilConfig.Equal(nil))
	assert.False(t, nilConfig.Equal(original))
	assert.False(t, original.Equal(New().SetRing("")))
}

func TestSummaryYAML(t *testing.T) {
	ident, err := types.ParsePackageIdent("core/redis/3.2.4")
	require.NoError(t, err)

	c := New().
		SetPackage(ident).
		SetTopology(types.TopologyLeader).
		SetUpdateStrategy(types.UpdateStrategyRolling).
		SetGossipPeers([]string{"10.0.0.1"}).
		SetRing("acme")

	out, err := yaml.Marshal(c.Summary())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "start", doc["command"])
	assert.Equal(t, "core/redis/3.2.4", doc["package"])
	assert.Equal(t, "leader", doc["topology"])
	assert.Equal(t, "rolling", doc["update_strategy"])
	assert.Equal(t, "0.0.0.0:9638", doc["listen_gossip"])
	assert.Equal(t, "acme", doc["ring"])
	assert.Equal(t, []any{"10.0.0.1:9638"}, doc["peers"])
	assert.NotContains(t, doc, "organization")

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, c.Summary(), decoded)
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c := New().SetGroup("prod").SetOrganization("acme")
	logger.Info().Object("config", c).Msg("test")

	var entry struct {
		Config map[string]any `json:"config"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "start", entry.Config["command"])
	assert.Equal(t, "standalone", entry.Config["topology"])
	assert.Equal(t, "prod", entry.Config["group"])
	assert.Equal(t, "acme", entry.Config["organization"])
	assert.NotContains(t, entry.Config, "ring")
	assert.NotContains(t, entry.Config, "package")
}
