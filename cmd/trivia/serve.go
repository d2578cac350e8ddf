package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/demureom-ctrl/Game/internal/bootstrap"
	"github.com/demureom-ctrl/Game/internal/proverb"
	"github.com/demureom-ctrl/Game/internal/question"
	"github.com/demureom-ctrl/Game/internal/server"
	"github.com/demureom-ctrl/Game/internal/word"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game pages and the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}

			if cfg.Seed.OnServe {
				if err := seedOnStart(ctx, db, cfg.Seed.File, cmd.OutOrStdout()); err != nil {
					_ = db.Close()
					return err
				}
			}

			app := bootstrap.New(bootstrap.DefaultShutdownTimeout)
			app.AddShutdownHook("database", func(context.Context) error {
				return db.Close()
			})

			handler := server.NewRouter(server.RouterConfig{
				Questions:       question.NewDBQuestionRepository(db),
				Proverbs:        proverb.NewDBProverbRepository(db),
				Words:           word.NewDBWordRepository(db),
				StaticDirectory: cfg.Server.StaticDirectory,
				AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			})
			srv := server.NewHTTPServer(cfg.Server.Port, handler)
			app.AddShutdownHook("http server", srv.Shutdown)

			return app.Run(ctx, func(ctx context.Context) error {
				slog.Info("starting server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					_ = db.Close()
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			})
		},
	}
}
