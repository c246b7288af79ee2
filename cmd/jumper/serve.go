package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Dungeon Jump over SSH",
	Long: `Host Dungeon Jump over SSH.

Every connection opens its own hero picker and plays its own runs. All players
share the server's leaderboard, and the SSH user name is offered when a score
makes it.

Without --host-key a key is generated at ~/.dungeon-jump/host_key on first start.

Examples:
  jumper serve
  jumper serve --ssh :2222 --idle-timeout 10m
  jumper serve --host-key ./host_key --db ./scores.db

Players connect with:
  ssh -p 23234 <host>`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Custom game config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		Game:        gameCfg,
		TickRate:    flagFPS,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, port, err := net.SplitHostPort(server.Addr()); err == nil {
		fmt.Fprintf(out, "Connect with: ssh -p %s localhost\n", port)
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
