package main

import (
	"fmt"
	"os"

	"github.com/bodymindarts/habitat/pkg/log"
	"github.com/bodymindarts/habitat/pkg/metrics"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hab-sup",
	Short: "The Habitat Supervisor",
	Long: `The Habitat Supervisor runs a package as a service, keeps it
configured and up to date, and gossips with its peers about the
state of every service in the ring.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"hab-sup version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level [debug|info|warn|error]")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(bashCmd)
	rootCmd.AddCommand(shCmd)
}

func initLogging(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	jsonOutput, _ := cmd.Flags().GetBool("log-json")

	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}

	log.Init(log.Config{
		Level:      level,
		JSONOutput: jsonOutput,
		Output:     cmd.ErrOrStderr(),
	})
	metrics.SetVersion(Version)
	return nil
}
