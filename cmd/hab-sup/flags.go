package main

import (
	"github.com/bodymindarts/habitat/pkg/config"
	"github.com/bodymindarts/habitat/pkg/types"
	"github.com/spf13/pflag"
)

// supervisorFlags are the options shared by every supervisor command
type supervisorFlags struct {
	listenGossip  config.GossipListenAddr
	listenHTTP    config.HTTPListenAddr
	peers         []string
	permanentPeer bool
	group         string
	topology      string
	strategy      string
	url           string
	org           string
	ring          string
	configFrom    string
	binds         []string
	localArtifact string
}

func newSupervisorFlags() *supervisorFlags {
	return &supervisorFlags{
		listenGossip: config.DefaultGossipListenAddr(),
		listenHTTP:   config.DefaultHTTPListenAddr(),
	}
}

func (f *supervisorFlags) register(fs *pflag.FlagSet) {
	fs.Var(&f.listenGossip, "listen-gossip", "The listen address for the gossip system [IP|IP:PORT]")
	fs.Var(&f.listenHTTP, "listen-http", "The listen address for the HTTP gateway [IP|IP:PORT]")
	fs.StringSliceVar(&f.peers, "peer", nil, "The address of an initial gossip peer (HOST[:PORT]); may be repeated")
	fs.BoolVar(&f.permanentPeer, "permanent-peer", false, "Mark this supervisor as a permanent gossip peer")
	fs.StringVar(&f.group, "group", "", "The service group; shared config and topology")
	fs.StringVarP(&f.topology, "topology", "t", types.TopologyStandalone.String(), "Service topology [standalone|leader]")
	fs.StringVarP(&f.strategy, "strategy", "s", types.UpdateStrategyNone.String(), "The update strategy [none|at-once|rolling]")
	fs.StringVarP(&f.url, "url", "u", "", "Use the specified package depot url")
	fs.StringVar(&f.org, "org", "", "The organization the supervisor and its services belong to")
	fs.StringVarP(&f.ring, "ring", "r", "", "Name of the ring key used to encrypt gossip traffic")
	fs.StringVar(&f.configFrom, "config-from", "", "Use package config from this path rather than the package itself")
	fs.StringArrayVar(&f.binds, "bind", nil, "Bind a service group to a name, NAME:SERVICE.GROUP; may be repeated")
	fs.StringVar(&f.localArtifact, "local-artifact", "", "Install the package from this local .hart file")
}

// configFromFlags builds the configuration for command. Errors from the
// value parsers are returned unchanged.
func configFromFlags(command config.Command, fs *pflag.FlagSet, f *supervisorFlags, args []string) (*config.Config, error) {
	topology, err := types.ParseTopology(f.topology)
	if err != nil {
		return nil, err
	}
	strategy, err := types.ParseUpdateStrategy(f.strategy)
	if err != nil {
		return nil, err
	}

	cfg := config.New().
		SetCommand(command).
		SetHTTPListen(f.listenHTTP).
		SetGossipListen(f.listenGossip).
		SetGossipPeers(f.peers).
		SetGossipPermanent(f.permanentPeer).
		SetGroup(f.group).
		SetTopology(topology).
		SetUpdateStrategy(strategy).
		SetURL(f.url).
		SetBinds(f.binds)

	if len(args) > 0 {
		ident, err := types.ParsePackageIdent(args[0])
		if err != nil {
			return nil, err
		}
		cfg.SetPackage(ident)
	}

	if fs.Changed("local-artifact") {
		cfg.SetLocalArtifact(f.localArtifact)
	}
	if fs.Changed("org") {
		cfg.SetOrganization(f.org)
	}
	if fs.Changed("ring") {
		cfg.SetRing(f.ring)
	}
	if fs.Changed("config-from") {
		cfg.SetConfigFrom(f.configFrom)
	}

	return cfg, nil
}
