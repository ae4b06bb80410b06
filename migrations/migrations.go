package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"

	"archery/config"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

func main() {
	app := &cli.App{
		Name:  "migrations",
		Usage: "apply the numbered SQL migrations after the server has created its tables",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every migration newer than the recorded version",
				Action: withDB(migrateAll),
			},
			{
				Name:  "version",
				Usage: "print the recorded migration version",
				Action: withDB(func(c *cli.Context, db *sql.DB) error {
					version, err := getMigrationVersion(db)
					if err != nil {
						return err
					}
					fmt.Println(version)
					return nil
				}),
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func withDB(action func(*cli.Context, *sql.DB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := sql.Open("postgres", config.Env().DSN())
		if err != nil {
			return err
		}
		defer db.Close()
		return action(c, db)
	}
}

func migrateAll(c *cli.Context, db *sql.DB) error {
	version, err := getMigrationVersion(db)
	if err != nil {
		return err
	}
	for {
		next := version + 1
		file, err := migrationFiles.ReadFile(fmt.Sprintf("sql/%d.sql", next))
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Database is at version %d\n", version)
			return nil
		}
		if err != nil {
			return err
		}
		if err := migrateUp(db, next, string(file)); err != nil {
			return err
		}
		version = next
	}
}

func migrateUp(db *sql.DB, version int, statements string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(statements); err != nil {
		return fmt.Errorf("migration %d: %w", version, err)
	}
	if _, err := tx.Exec("UPDATE archery.migrations SET version = $1", version); err != nil {
		return fmt.Errorf("updating migration version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS archery"); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM archery.migrations").Scan(&version)
	if err != nil {
		return 0, generateMigrationTable(db)
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS archery.migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO archery.migrations (version) VALUES (0);
	`)
	return err
}
