package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/bodymindarts/habitat/pkg/config"
	"github.com/bodymindarts/habitat/pkg/log"
	"github.com/spf13/cobra"
)

var (
	bashFlags = newSupervisorFlags()
	shFlags   = newSupervisorFlags()
)

var bashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Start an interactive bash shell in the supervisor environment",
	Args:  cobra.NoArgs,
	RunE:  runShell(bashFlags),
}

var shCmd = &cobra.Command{
	Use:   "sh",
	Short: "Start an interactive sh shell in the supervisor environment",
	Args:  cobra.NoArgs,
	RunE:  runShell(shFlags),
}

func init() {
	bashFlags.register(bashCmd.Flags())
	shFlags.register(shCmd.Flags())
}

func runShell(flags *supervisorFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		command, err := config.ParseCommand(cmd.Name())
		if err != nil {
			return err
		}
		cfg, err := configFromFlags(command, cmd.Flags(), flags, args)
		if err != nil {
			return err
		}

		config.Publish(cfg)
		return execShell(config.Current())
	}
}

// execShell runs the shell named by the published command with the
// terminal attached and returns when it exits
func execShell(cfg *config.Config) error {
	if !cfg.Command().IsShell() {
		return fmt.Errorf("%s is not a shell command", cfg.Command())
	}

	path, err := exec.LookPath(cfg.Command().String())
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", cfg.Command(), err)
	}

	logger := log.WithComponent("shell")
	logger.Debug().Str("path", path).Msg("Starting shell")

	shell := exec.Command(path)
	shell.Stdin = os.Stdin
	shell.Stdout = os.Stdout
	shell.Stderr = os.Stderr
	shell.Env = os.Environ()
	return shell.Run()
}
