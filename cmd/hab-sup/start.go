package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bodymindarts/habitat/pkg/api"
	"github.com/bodymindarts/habitat/pkg/config"
	"github.com/bodymindarts/habitat/pkg/health"
	"github.com/bodymindarts/habitat/pkg/log"
	"github.com/bodymindarts/habitat/pkg/metrics"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var startFlags = newSupervisorFlags()

var startCmd = &cobra.Command{
	Use:   "start PKG_IDENT",
	Short: "Start a Habitat-supervised service from a package",
	Long: `Start a package as a supervised service.

The package is named origin/name[/version[/release]].

Examples:
  # Run redis on its own
  hab-sup start core/redis

  # Join a leader topology through two peers
  hab-sup start core/redis --topology leader --group prod --peer 10.0.0.1 --peer 10.0.0.2:9000

  # Print the effective configuration without starting
  hab-sup start core/redis --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	startFlags.register(startCmd.Flags())
	startCmd.Flags().Bool("dry-run", false, "Print the effective configuration as YAML and exit")
}

func runStart(cmd *cobra.Command, args []string) error {
	command, err := config.ParseCommand(cmd.Name())
	if err != nil {
		return err
	}
	cfg, err := configFromFlags(command, cmd.Flags(), startFlags, args)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		out, err := yaml.Marshal(cfg.Summary())
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	config.Publish(cfg)
	return runSupervisor(cmd.Context())
}

// runSupervisor runs until interrupted. Everything below here reads the
// published configuration.
func runSupervisor(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := config.Current()
	// A fresh member ID per run; gossip treats a restarted supervisor as a new member
	memberID := uuid.NewString()
	logger := log.WithService(cfg.Package().String(), cfg.Group()).With().Str("member_id", memberID).Logger()
	logger.Info().
		Stringer("topology", cfg.Topology()).
		Stringer("listen_gossip", cfg.GossipListen()).
		Msg("Starting supervisor")

	srv := api.NewStatusServer()
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.HTTPListen()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP gateway error: %w", err)
		}
	}()

	go probeGossipPeers(ctx, cfg.GossipPeers())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		logger.Info().Stringer("signal", sig).Msg("Shutting down")
	case runErr = <-errCh:
		logger.Error().Err(runErr).Msg("Shutting down")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP gateway did not shut down cleanly")
	}

	return runErr
}

// probeGossipPeers reports unreachable peers. It never fails startup.
func probeGossipPeers(ctx context.Context, peers []string) {
	if len(peers) == 0 {
		return
	}

	logger := log.WithComponent("gossip")
	results := health.ProbePeers(ctx, peers, health.DefaultConfig())
	reachable := health.Reachable(results)

	for _, r := range results {
		if r.Healthy {
			logger.Debug().Str("peer", r.Target).Dur("took", r.Duration).Msg("Peer reachable")
		} else {
			logger.Warn().Str("peer", r.Target).Msg(r.Message)
		}
	}

	metrics.GossipPeersReachable.Set(float64(reachable))
	metrics.SetComponent(metrics.ComponentGossipPeers, reachable > 0,
		fmt.Sprintf("%d/%d peers reachable", reachable, len(peers)))
}
