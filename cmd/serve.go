package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appsdothingsiguess/portfoliosite/pkg/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveRoot string

//nolint:gochecknoglobals // Cobra boilerplate
var servePort int

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site",
	Long: `Serve the static build directory over HTTP.

Existing files are served with long-lived cache headers. Paths with a known asset
extension that do not exist answer 404; every other path answers with the entry
document so the client-side router can render it.

The entry document must exist before the port is bound.

Example:
  portfolio serve
  portfolio serve --root ./dist --port 3002
  PORT=8080 portfolio serve`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "Static build directory (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config or PORT)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg.Server.Root = pick(serveRoot, cfg.Server.Root)
	if servePort != 0 {
		cfg.Server.Port = servePort
		err = cfg.Validate()
		if err != nil {
			return err
		}
	}

	var srv *server.Server
	srv, err = server.New(cfg.Server, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.Run(ctx)
	return err
}
