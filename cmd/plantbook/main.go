// Command plantbook is the terminal client for the municipal free plant scheme.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/darshan2121/PlantApp/app"
	"github.com/darshan2121/PlantApp/catalog"
	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/config"
	"github.com/darshan2121/PlantApp/console"
	"github.com/darshan2121/PlantApp/logger"
	"github.com/darshan2121/PlantApp/storage"
	"github.com/darshan2121/PlantApp/types"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	// each subcommand gets a restored app and a shell writing to stdout
	withShell := func(cmd *cobra.Command, fn func(ctx context.Context, s *console.Shell) error) error {
		a, err := setup(cmd.Context(), envFiles)
		if err != nil {
			return err
		}
		return fn(cmd.Context(), console.New(a, os.Stdin, cmd.OutOrStdout()))
	}

	root := &cobra.Command{
		Use:           "plantbook",
		Short:         "Browse and book free plants from the municipal nursery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error { return s.Run(ctx) })
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error { return s.Run(ctx) })
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and remember the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error {
				return s.Exec(ctx, "login "+args[0]+" "+args[1])
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error { return s.Exec(ctx, "logout") })
		},
	})

	var category string
	catalogCmd := &cobra.Command{
		Use:   "catalog [search]",
		Short: "List the plants on offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error {
				if category != "" {
					if err := s.Exec(ctx, "category "+category); err != nil {
						return err
					}
					if len(args) == 0 {
						return nil
					}
				}
				return s.Exec(ctx, "plants "+strings.Join(args, " "))
			})
		},
	}
	catalogCmd.Flags().StringVar(&category, "category", "", "only list this category")
	root.AddCommand(catalogCmd)

	root.AddCommand(&cobra.Command{
		Use:   "orders [id]",
		Short: "List my orders, or show one with its tracking history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShell(cmd, func(ctx context.Context, s *console.Shell) error {
				if len(args) == 1 {
					return s.Exec(ctx, "order "+args[0])
				}
				return s.Exec(ctx, "orders")
			})
		},
	})
	return root
}

func setup(ctx context.Context, envFiles []string) (*app.App, error) {
	cfg, err := config.LoadClient(envFiles...)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, os.Stderr)

	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		return nil, err
	}
	api := client.New(cfg.APIBaseURL,
		client.WithTimeout(cfg.HTTPTimeout),
		client.WithLogger(log),
	)

	lang, err := types.ParseLanguage(cfg.Language)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to English")
		lang = types.English
	}

	a := app.New(app.Deps{
		Backend:  api,
		Store:    store,
		Images:   catalog.ImageResolver{BaseURL: cfg.ImageBaseURL},
		Language: lang,
		Log:      log,
	})
	if a.Restore(ctx) {
		log.Debug().Msg("session restored")
	}
	return a, nil
}
