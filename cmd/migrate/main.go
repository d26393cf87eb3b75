// Package main is the entry point for the nc-migrate CLI. It applies the
// embedded goose SQL migrations against DATABASE_URL.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/ffauzan/nc-api/db"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

// migrationsDir is where `create` writes new migration files; the server and
// the other subcommands read migrations from the embedded FS.
const migrationsDir = "db/migrations"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "nc-migrate",
		Short: "Database migration tool for the NextCourse API",
		Long: `nc-migrate manages the NextCourse database schema.
Migrations are SQL files embedded into the binary and applied in order.

The connection string is read from DATABASE_URL (a .env file is honored).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
		newCreateCommand(),
	)

	return rootCmd.Execute()
}

func openDB() (*sql.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	goose.SetBaseFS(db.MigrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	conn, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

func withDB(fn func(conn *sql.DB) error) error {
	conn, err := openDB()
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()
	return fn(conn)
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(conn *sql.DB) error {
				return goose.Up(conn, "migrations")
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(conn *sql.DB) error {
				return goose.Down(conn, "migrations")
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status of every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(conn *sql.DB) error {
				return goose.Status(conn, "migrations")
			})
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(conn *sql.DB) error {
				version, err := goose.GetDBVersion(conn)
				if err != nil {
					return err
				}
				fmt.Printf("Current migration version: %d\n", version)
				return nil
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new SQL migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Creation writes to the working tree, not the embedded FS.
			goose.SetBaseFS(nil)
			return goose.Create(nil, migrationsDir, args[0], "sql")
		},
	}
}
