package main

import (
	"context"
	"fmt"

	"grantflow-be/internal/config"
	"grantflow-be/internal/model"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/internal/seed"
	"grantflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load built-in library data (idempotent)",
	RunE:  runSeed,
}

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
	}
	return database.NewGormDBFromDSN(cfg.Database.Connection, database.DefaultOptions())
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	color.Cyan("Running migrations for %d tables...", len(model.All()))
	if err := model.Migrate(db); err != nil {
		color.Red("Migration failed: %v", err)
		return err
	}
	color.Green("Migration complete")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	data, err := seed.Load()
	if err != nil {
		return err
	}

	res, err := seed.Apply(context.Background(), unitofwork.NewRepositoryFactory(db), data)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		return err
	}
	color.Green("Seeded %d prompts, %d templates, %d notification types", res.Prompts, res.Templates, res.NotificationTypes)
	return nil
}
