// Command backfill assigns books without an owner to a user, by default the
// oldest registered one. Run it once after upgrading a database created
// before ownership was enforced.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("storybook-backfill")
	cfg, err := config.GetBackfillConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("backfill failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.BackfillConfig, log *logger.Logger) error {
	db, err := store.NewConnect(ctx, config.DB{DSN: cfg.DSN}, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	storages := store.NewStorages(db, log)
	backfill := service.NewBackfillService(storages.UserRepository, storages.BookRepository, log)

	report, err := backfill.AssignOrphanBooks(ctx, cfg.Owner, cfg.DryRun)
	if err != nil {
		return err
	}

	printReport(os.Stdout, report)
	return nil
}

func printReport(w io.Writer, report models.BackfillReport) {
	if report.DryRun {
		fmt.Fprintf(w, "dry run: %d orphan book(s) would be assigned to %s (%s)\n", report.Orphans, report.Owner.Username, report.Owner.ID)
		return
	}
	fmt.Fprintf(w, "assigned %d of %d orphan book(s) to %s (%s)\n", report.Assigned, report.Orphans, report.Owner.Username, report.Owner.ID)
}
