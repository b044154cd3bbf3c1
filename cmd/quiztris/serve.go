package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Quiztris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game; players never share a board.
Reconnecting with the same user name resumes an unfinished game.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quiztris/host_key

Defaults for --ssh and --idle-timeout come from the server section of the
configuration file.

Examples:
  quiztris serve                           # Listen on :23234 with auto-generated key
  quiztris serve --ssh :2222               # Listen on port 2222
  quiztris serve --host-key ./my_host_key  # Use specific host key
  quiztris serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("quiztris-ssh")
	if err != nil {
		return err
	}
	game, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     game.Server.Address,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: game.Server.IdleTimeout(),
		Seed:        flagSeed,
		Game:        game,
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Quiztris SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
