package config

import (
	"github.com/bodymindarts/habitat/pkg/types"
	"github.com/rs/zerolog"
)

// Summary is a flat, serializable view of a Config. Optional fields that
// were not given are nil.
type Summary struct {
	Command         Command              `yaml:"command" json:"command"`
	Package         types.PackageIdent   `yaml:"package,omitempty" json:"package,omitzero"`
	LocalArtifact   *string              `yaml:"local_artifact,omitempty" json:"local_artifact,omitempty"`
	URL             string               `yaml:"url,omitempty" json:"url,omitempty"`
	Topology        types.Topology       `yaml:"topology" json:"topology"`
	Group           string               `yaml:"group,omitempty" json:"group,omitempty"`
	Binds           []string             `yaml:"binds,omitempty" json:"binds,omitempty"`
	UpdateStrategy  types.UpdateStrategy `yaml:"update_strategy" json:"update_strategy"`
	Organization    *string              `yaml:"organization,omitempty" json:"organization,omitempty"`
	Ring            *string              `yaml:"ring,omitempty" json:"ring,omitempty"`
	ConfigFrom      *string              `yaml:"config_from,omitempty" json:"config_from,omitempty"`
	HTTPListen      HTTPListenAddr       `yaml:"listen_http" json:"listen_http"`
	GossipListen    GossipListenAddr     `yaml:"listen_gossip" json:"listen_gossip"`
	GossipPeers     []string             `yaml:"peers,omitempty" json:"peers,omitempty"`
	GossipPermanent bool                 `yaml:"permanent_peer" json:"permanent_peer"`
}

func (o optional) ptr() *string {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Summary returns a snapshot of c
func (c *Config) Summary() Summary {
	return Summary{
		Command:         c.command,
		Package:         c.pkg,
		LocalArtifact:   c.localArtifact.ptr(),
		URL:             c.url,
		Topology:        c.topology,
		Group:           c.group,
		Binds:           c.Binds(),
		UpdateStrategy:  c.updateStrategy,
		Organization:    c.organization.ptr(),
		Ring:            c.ring.ptr(),
		ConfigFrom:      c.configFrom.ptr(),
		HTTPListen:      c.httpListen,
		GossipListen:    c.gossipListen,
		GossipPeers:     c.GossipPeers(),
		GossipPermanent: c.gossipPermanent,
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("command", c.command).
		Stringer("topology", c.topology).
		Stringer("update_strategy", c.updateStrategy).
		Stringer("listen_http", c.httpListen).
		Stringer("listen_gossip", c.gossipListen).
		Strs("peers", c.gossipPeers).
		Bool("permanent_peer", c.gossipPermanent)

	if !c.pkg.IsZero() {
		e.Stringer("package", c.pkg)
	}
	if c.group != "" {
		e.Str("group", c.group)
	}
	if c.url != "" {
		e.Str("url", c.url)
	}
	if len(c.binds) > 0 {
		e.Strs("binds", c.binds)
	}
	if v, ok := c.localArtifact.get(); ok {
		e.Str("local_artifact", v)
	}
	if v, ok := c.organization.get(); ok {
		e.Str("organization", v)
	}
	if v, ok := c.ring.get(); ok {
		e.Str("ring", v)
	}
	if v, ok := c.configFrom.get(); ok {
		e.Str("config_from", v)
	}
}
