package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mkarpinski/fakturnik/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use: "serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Short = getMessage("serve_short")
	serveCmd.Long = getMessage("serve_long")
}

func runServer() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(log, cfg)
	if err := srv.Start(ctx); err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	log.Info("server_stopped").Send()
	log.Info("operation_completed").
		Str("operation", "serve").
		Send()

	return nil
}
