package api

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const shutdownGrace = 5 * time.Second

// Serve runs the API until SIGINT or SIGTERM, then drains open requests.
func (app *Application) Serve(mux *http.ServeMux) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.serve(ctx, app.newServer(mux))
}

func (app *Application) newServer(mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// serve listens until ctx is done and gives open requests shutdownGrace to finish
func (app *Application) serve(ctx context.Context, srv *http.Server) error {
	logger := log.WithField("addr", srv.Addr)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server")
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("stopped server")
	return nil
}
