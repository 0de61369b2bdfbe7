package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rescue-ops/backend/internal/application/seed"
	"github.com/rescue-ops/backend/internal/infrastructure/config"
	"github.com/rescue-ops/backend/internal/infrastructure/logger"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence"
	"github.com/rescue-ops/backend/internal/infrastructure/remote"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type env struct {
	seeder *seed.Seeder
	log    *zap.Logger
	close  func()
}

func setup(logLevel string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	db, err := persistence.NewDatabase(&cfg.Database, nil)
	if err != nil {
		return nil, err
	}

	clients, err := remote.NewClients(remote.Endpoints{
		Status:  cfg.Remote.StatusURL,
		Address: cfg.Remote.AddressURL,
		Photo:   cfg.Remote.PhotoURL,
		User:    cfg.Remote.UserURL,
		Team:    cfg.Remote.TeamURL,
		Citizen: cfg.Remote.CitizenURL,
	}, cfg.Remote.Timeout, log, nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create remote clients: %w", err)
	}

	seeder := seed.NewSeeder(
		persistence.NewGormUserTypeRepository(db.DB),
		persistence.NewGormTeamTypeRepository(db.DB),
		persistence.NewGormIncidentRepository(db.DB),
		seed.Sources{
			Statuses:  seed.FromList(clients.Status.ListAll, func(s remote.StatusRef) int64 { return s.ID }),
			Citizens:  seed.FromList(clients.Citizen.ListAll, func(c remote.CitizenRef) int64 { return c.ID }),
			Addresses: seed.FromList(clients.Address.ListAll, func(a remote.AddressRef) int64 { return a.ID }),
		},
		log,
	)

	return &env{
		seeder: seeder,
		log:    log,
		close: func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
			_ = log.Sync()
		},
	}, nil
}

func logReport(log *zap.Logger, msg string, r *seed.Report) {
	log.Info(msg,
		zap.Int("user_types_created", r.UserTypesCreated),
		zap.Int("team_types_created", r.TeamTypesCreated),
		zap.Int("incidents_created", r.Created),
		zap.Bool("synthetic_statuses", r.SyntheticStatuses),
		zap.Bool("synthetic_citizens", r.SyntheticCitizens),
		zap.Bool("synthetic_addresses", r.SyntheticAddresses),
	)
}

func main() {
	cmd := &cli.Command{
		Name:  "seed",
		Usage: "Fill the rescue database with catalog rows and sample incidents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("RESCUE_LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "catalogs",
				Usage: "Create the default user and team types",
				Action: func(ctx context.Context, c *cli.Command) error {
					e, err := setup(c.String("log-level"))
					if err != nil {
						return err
					}
					defer e.close()

					report, err := e.seeder.SeedCatalogs(ctx)
					if err != nil {
						return err
					}
					logReport(e.log, "Catalogs seeded", report)
					return nil
				},
			},
			{
				Name:  "incidents",
				Usage: "Create sample incidents from identifiers the remote owners list",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Value: 100,
						Usage: fmt.Sprintf("Number of incidents to create (at most %d)", seed.MaxIncidents),
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					e, err := setup(c.String("log-level"))
					if err != nil {
						return err
					}
					defer e.close()

					report, err := e.seeder.SeedIncidents(ctx, c.Int("count"))
					if err != nil {
						return err
					}
					logReport(e.log, "Incidents seeded", report)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
