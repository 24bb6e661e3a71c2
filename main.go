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

	intconfig "itinerary/internal/config"
	intdb "itinerary/internal/db"
	router "itinerary/internal/http"
	"itinerary/internal/itinerary"
	"itinerary/internal/repositories"
	"itinerary/internal/services"
	"itinerary/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "itinerary",
		Usage: "travel ticket service that chains tickets into a readable itinerary",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create missing tables and seed default transport types",
				Action: migrate,
			},
			{
				Name:   "itinerary",
				Usage:  "print the ordered itinerary of the stored tickets",
				Action: printItinerary,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func setup() (intconfig.Env, error) {
	env, err := intconfig.LoadEnv()
	if err != nil {
		utils.SetupLogger("console")
		return env, err
	}
	utils.SetupLogger(env.LogFormat)
	return env, nil
}

func serve(c *cli.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()
	log.Info().Str("host", env.DB.Host).Str("database", env.DB.Name).Msg("connected to MySQL")

	r := router.NewRouter(env, db)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", env.AppAddr).Bool("auth", env.Auth.Enabled()).Bool("strict", env.Itinerary.Strict).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func migrate(c *cli.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}
	db, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(c.Context, db); err != nil {
		return err
	}
	log.Info().Strs("tables", intdb.Tables).Msg("schema ready")
	return nil
}

func printItinerary(c *cli.Context) error {
	env, err := setup()
	if err != nil {
		return err
	}
	db, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	svc := services.TicketService{
		Tickets:        repositories.TicketRepository{DB: db},
		TransportTypes: repositories.TransportTypeRepository{DB: db},
		Reconstructor:  itinerary.Reconstructor{Strict: env.Itinerary.Strict},
	}
	text, err := svc.OrderedItinerary(c.Context)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, text)
	return err
}
