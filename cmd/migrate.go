package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("goose: failed to get DB handle: %v", err)
	}

	dialect, err := migrationDialect(cfg.Database.Driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		log.Fatalf("goose: unknown dialect: %v", err)
	}
	goose.SetTableName("schema_migrations")

	command := "up"
	if migrateRollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, sqlDB, migrateDir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	return nil
}

// migrationDialect maps the configured driver onto a goose dialect. The
// shipped migrations use sqlite forms (INTEGER PRIMARY KEY AUTOINCREMENT),
// so the postgres driver needs its own migration set before this can run.
func migrationDialect(driver string) (string, error) {
	switch driver {
	case "sqlite", "":
		return "sqlite3", nil
	case "postgres":
		return "", fmt.Errorf("the shipped migrations under db/migrations are sqlite-only; provide a postgres migration set before migrating with driver %q", driver)
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
