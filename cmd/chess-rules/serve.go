package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

// serve runs the HTTP game server until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	srv := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "serving on %s", cfg.Server.Addr)
	case sig := <-stop:
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "received %v, shutting down with %d games\n", sig, srv.Manager().Len())
		}
		return srv.Shutdown()
	}
}
