package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gradevo/gradevo-api/internal/config"
	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/gradevo/gradevo-api/internal/repositories"
	"github.com/gradevo/gradevo-api/internal/schema"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type connectFunc func(ctx context.Context, cfg *config.Config) (*sqlx.DB, error)

// withDB loads the config, initializes logging, opens the database and hands it to fn.
type withDB func(cmd *cobra.Command, fn func(ctx context.Context, db *sqlx.DB) error) error

func newRootCmd(connect connectFunc) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "dbctl",
		Short:         "Gradevo database maintenance",
		Long:          "dbctl creates the schema, seeds default content, rewrites legacy portfolio categories and manages admin accounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	run := func(cmd *cobra.Command, fn func(ctx context.Context, db *sqlx.DB) error) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.App.LogLevel, "dbctl"); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logger.Sync()

		ctx := cmd.Context()
		db, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := fn(ctx, db); err != nil {
			logger.Log.Errorw("command failed", "command", cmd.Name(), "error", err)
			return err
		}
		return nil
	}

	root.AddCommand(
		newInitCmd(run),
		newSchemaCmd(run),
		newSeedCmd(run),
		newMigrateCategoriesCmd(run),
		newCategoriesCmd(run),
		newAdminCmd(run),
	)
	return root
}

func newInitCmd(run withDB) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the schema, then seed empty tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				if err := schema.Apply(ctx, db); err != nil {
					return err
				}
				if err := schema.Seed(ctx, db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Database initialized")
				return nil
			})
		},
	}
}

func newSchemaCmd(run withDB) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create missing tables and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				if err := schema.Apply(ctx, db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			})
		},
	}
}

func newSeedCmd(run withDB) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default content into empty tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				if err := schema.Seed(ctx, db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Seed complete")
				return nil
			})
		},
	}
}

func newMigrateCategoriesCmd(run withDB) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-categories",
		Short: "Rewrite legacy portfolio categories to the canonical labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				results, err := schema.MigrateCategories(ctx, db)
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%q -> %q: %d updated\n", r.From, r.To, r.Updated)
				}
				return nil
			})
		},
	}
}

func newCategoriesCmd(run withDB) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the distinct portfolio categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				categories, err := schema.ListCategories(ctx, db)
				if err != nil {
					return err
				}
				for _, c := range categories {
					if models.IsCanonicalCategory(c) {
						fmt.Fprintln(cmd.OutOrStdout(), c)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s (legacy, run migrate-categories)\n", c)
				}
				return nil
			})
		},
	}
}

func newAdminCmd(run withDB) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin account or reset its password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return errors.New("--username and --password are required")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			return run(cmd, func(ctx context.Context, db *sqlx.DB) error {
				if err := repositories.NewUserWriteRepository(db).Save(ctx, username, string(hash)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %q saved\n", username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", schema.DefaultAdminUsername, "Admin username")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	return cmd
}
