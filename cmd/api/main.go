package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"paw-n-care/internal/adapters/storage/memory"
	"paw-n-care/internal/adapters/storage/sqldb"
	"paw-n-care/internal/config"
	"paw-n-care/internal/domain/auth"
	"paw-n-care/internal/platform/logger"
	"paw-n-care/internal/router"
)

func main() {
	app := &cli.Command{
		Name:  "paw-n-care",
		Usage: "Servicio de gestión de clínica veterinaria",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Ruta al archivo de configuración TOML",
				Value: "paw-n-care.toml",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			createUserCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta el servidor HTTP",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			logg := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    "paw-n-care",
			})

			backend, err := openBackend(ctx, cfg, true)
			if err != nil {
				return err
			}

			handler := router.NewRouter(router.Options{
				Backend: backend,
				Log:     logg,
				DevAuth: cfg.DevAuth,
			})

			srv := &http.Server{
				Addr:         cfg.Addr,
				Handler:      handler,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			logg.Info("starting server", map[string]any{
				"addr":   cfg.Addr,
				"driver": cfg.Storage.Driver,
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Crea el esquema en la base configurada",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if cfg.Storage.Driver == "memory" {
				return errors.New("migrate requiere un driver sql (pgx o sqlite3)")
			}

			db, err := sqldb.Open(cfg.Storage.Driver, cfg.Storage.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqldb.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Println("schema ok")
			return nil
		},
	}
}

func createUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "Registra una credencial de staff",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			backend, err := openBackend(ctx, cfg, false)
			if err != nil {
				return err
			}

			svc := auth.NewService(backend.Users())
			u, err := svc.Register(ctx, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("user %q created (id %d)\n", u.Username, u.ID)
			return nil
		},
	}
}

// openBackend elige el store según config. Con memory y migrate=true no hay
// nada que migrar; con sql corre el esquema al arrancar para simplificar dev.
func openBackend(ctx context.Context, cfg config.Config, migrate bool) (router.Backend, error) {
	if cfg.Storage.Driver == "memory" {
		return memory.NewStore(), nil
	}

	db, err := sqldb.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := sqldb.Migrate(ctx, db); err != nil {
			return nil, err
		}
	}
	return sqldb.NewStore(db), nil
}
