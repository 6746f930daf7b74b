package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"wishlist/config"
	logs "wishlist/internal/infra/log"
	"wishlist/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     apply every pending migration
// - status: list migrations and whether they are applied

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	upTimeout := upCmd.Duration("timeout", time.Minute, "Abort when migrations take longer than this")

	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = runUp(*upTimeout)
	case "status":
		_ = statusCmd.Parse(os.Args[2:])
		err = runStatus()
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up      Apply pending migrations")
	fmt.Println("  status  Show migration status")
}

func runUp(timeout time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	sqlDB, closeDB, err := openPrimary(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return postgres.Migrate(ctx, sqlDB, logger)
}

func runStatus() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	sqlDB, closeDB, err := openPrimary(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	statuses, err := postgres.MigrationStatus(context.Background(), sqlDB)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, status := range statuses {
		appliedAt := "-"
		if !status.AppliedAt.IsZero() {
			appliedAt = status.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", status.Source.Version, status.State, appliedAt, status.Source.Path)
	}

	return errors.WithStack(w.Flush())
}

func openPrimary(cfg *config.Config) (*sql.DB, func(), error) {
	if cfg.Postgres == nil {
		return nil, nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, func() { _ = sqlDB.Close() }, nil
}
