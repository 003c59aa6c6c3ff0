// Command migrate applies or reverts the region schema migrations outside the
// server process. It reads the same environment configuration as the API.
//
//	migrate up               apply all pending migrations
//	migrate down             revert the newest applied migration
//	migrate down-to VERSION  revert until VERSION is the newest applied
//	migrate reset            revert everything
//	migrate status           list migrations and whether they are applied
//	migrate version          print the newest applied version
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/sushi-api/backend/internal/config"
	"github.com/pkordes/sushi-api/backend/internal/database"
	"github.com/pkordes/sushi-api/backend/internal/migrate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. databaseURL overrides DATABASE_URL when set.
func newRootCmd() *cobra.Command {
	var databaseURL string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the region database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "",
		"database URL (defaults to $DATABASE_URL)")

	// withMigrator opens the database, builds a Migrator and hands it to fn.
	withMigrator := func(fn func(ctx context.Context, out io.Writer, m *migrate.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}

			ctx := cmd.Context()
			db, err := database.Open(ctx, cfg.DatabaseURL, cfg.Pool)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			m, err := migrate.New(db.DB.DB, db.Dialect, logger)
			if err != nil {
				return err
			}
			return fn(ctx, cmd.OutOrStdout(), m)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
				n, err := m.Up(ctx)
				if err != nil {
					if n > 0 {
						fmt.Fprintf(out, "applied %d migration(s) before failing\n", n)
					}
					return err
				}
				fmt.Fprintf(out, "applied %d migration(s)\n", n)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert the most recently applied migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
				if err := m.Down(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "reverted 1 migration")
				return nil
			}),
		},
		newDownToCmd(withMigrator),
		&cobra.Command{
			Use:   "reset",
			Short: "Revert every applied migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
				n, err := m.DownTo(ctx, 0)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "reverted %d migration(s)\n", n)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether each is applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				return printStatus(out, statuses)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the newest applied migration version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
				v, err := m.Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}),
		},
	)
	return root
}

type migratorFunc = func(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error) func(*cobra.Command, []string) error

func newDownToCmd(withMigrator migratorFunc) *cobra.Command {
	var version int64
	cmd := &cobra.Command{
		Use:   "down-to VERSION",
		Short: "Revert migrations until VERSION is the newest applied",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid version %q", args[0])
			}
			version = v
			return nil
		},
		RunE: withMigrator(func(ctx context.Context, out io.Writer, m *migrate.Migrator) error {
			n, err := m.DownTo(ctx, version)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "reverted %d migration(s)\n", n)
			return nil
		}),
	}
	return cmd
}

func printStatus(out io.Writer, statuses []migrate.Status) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tNAME")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Name)
	}
	return tw.Flush()
}
