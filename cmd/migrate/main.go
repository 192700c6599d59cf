package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"blog/config"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back the given number of steps
// - version: print the current schema version
// - force:   mark a version as applied after a failed run

type command struct {
	name  string
	dir   string
	steps int
}

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	upDir := upCmd.String("dir", "./migrations", "Migrations directory")

	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downDir := downCmd.String("dir", "./migrations", "Migrations directory")
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	versionDir := versionCmd.String("dir", "./migrations", "Migrations directory")

	forceCmd := flag.NewFlagSet("force", flag.ExitOnError)
	forceDir := forceCmd.String("dir", "./migrations", "Migrations directory")
	forceVersion := forceCmd.Int("version", -1, "Version to force")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := command{name: os.Args[1]}
	var err error
	switch cmd.name {
	case "up":
		err = upCmd.Parse(os.Args[2:])
		cmd.dir = *upDir
	case "down":
		err = downCmd.Parse(os.Args[2:])
		cmd.dir, cmd.steps = *downDir, *downSteps
	case "version":
		err = versionCmd.Parse(os.Args[2:])
		cmd.dir = *versionDir
	case "force":
		err = forceCmd.Parse(os.Args[2:])
		cmd.dir, cmd.steps = *forceDir, *forceVersion
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := run(db, logger, cmd)
	if err := app.Stop(ctx); err != nil {
		logger.Error("Failed to close database", slog.Any("error", err))
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func run(db *gorm.DB, logger *slog.Logger, cmd command) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cmd.dir, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}
	m.Log = &migrateLogger{logger: logger}

	switch cmd.name {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "up failed")
		}
		logger.Info("Migrations applied")

	case "down":
		if cmd.steps < 1 {
			return errors.Errorf("invalid steps %d", cmd.steps)
		}
		if err := m.Steps(-cmd.steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "down failed")
		}
		logger.Info("Migrations rolled back", slog.Int("steps", cmd.steps))

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return errors.Wrap(err, "version failed")
		}
		fmt.Printf("version: %d dirty: %v\n", version, dirty)

	case "force":
		if cmd.steps < 0 {
			return errors.New("force requires -version")
		}
		if err := m.Force(cmd.steps); err != nil {
			return errors.Wrap(err, "force failed")
		}
		logger.Info("Migration version forced", slog.Int("version", cmd.steps))
	}

	return nil
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool {
	return false
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back migrations (-steps N)")
	fmt.Println("  version  Print the current schema version")
	fmt.Println("  force    Force a version after a failed migration (-version V)")
	fmt.Println()
	fmt.Println("Every command accepts -dir to point at the migrations directory.")
}
