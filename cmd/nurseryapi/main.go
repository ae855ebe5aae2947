// Command nurseryapi serves the nursery REST API for local development.
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

	"github.com/darshan2121/PlantApp/backup"
	"github.com/darshan2121/PlantApp/config"
	orderControllers "github.com/darshan2121/PlantApp/controllers/order"
	"github.com/darshan2121/PlantApp/logger"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/darshan2121/PlantApp/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "nurseryapi",
		Short:         "Nursery plant booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), envFiles)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(envFiles)
			if err != nil {
				return err
			}
			dsn := cfg.DSN()
			if dsn == "" {
				return errors.New("no database configured: set DATABASE_URL or DB_HOST")
			}
			if _, err := repository.Open(dsn); err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}
			log.Info().Msg("database migrated")
			return nil
		},
	})
	return root
}

func load(envFiles []string) (config.Server, zerolog.Logger, error) {
	cfg, err := config.LoadServer(envFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cfg, zerolog.Nop(), err
	}
	return cfg, logger.JSON(cfg.LogLevel, os.Stdout), nil
}

func openStore(cfg config.Server, log zerolog.Logger) (repository.Store, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		log.Warn().Msg("no database configured, using in-memory store")
		return repository.NewMemory(), nil
	}
	store, err := repository.Open(dsn)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("connected to postgres")
	return store, nil
}

func serve(ctx context.Context, envFiles []string) error {
	cfg, log, err := load(envFiles)
	if err != nil {
		return err
	}
	log.Info().Msg("starting nursery api")

	store, err := openStore(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("database unavailable")
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Seed {
		if err := repository.Seed(ctx, store, log); err != nil {
			log.Error().Err(err).Msg("seeding catalog failed")
			return err
		}
	}

	if cfg.BackupDir != "" {
		sched := &backup.Scheduler{
			Src:       cfg.UploadDir,
			Dest:      cfg.BackupDir,
			Retention: cfg.BackupRetention,
			Hour:      cfg.BackupHour,
			Log:       log,
		}
		go sched.Run(ctx)
	}

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(routes.Server{
		Config: cfg,
		Store:  store,
		Hub:    orderControllers.NewHub(log),
		Log:    log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
