package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Additional-Code/storehouse/internal/app"
	"github.com/Additional-Code/storehouse/internal/database"
	"github.com/Additional-Code/storehouse/internal/seeder"
)

const stopTimeout = 10 * time.Second

// NewRootCommand builds the root storehouse CLI command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storehouse",
		Short:         "Customer and product inventory service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newStartCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newSeedCmd())

	return root
}

// Execute runs the storehouse CLI until it finishes or the process is signalled.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "start",
		Aliases: []string{"run", "serve"},
		Short:   "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			application := fx.New(app.Module)
			if err := application.Start(cmd.Context()); err != nil {
				return err
			}
			<-cmd.Context().Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()
			return application.Stop(stopCtx)
		},
	}
}

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the customers and products tables if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			var conns *database.Connections
			opts := fx.Options(app.Core, fx.Populate(&conns))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				if err := database.CreateSchema(ctx, conns.Writer); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema created")
				return nil
			})
		},
	}

	dropCmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the customers and products tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("refusing to drop tables without --force")
			}
			var conns *database.Connections
			opts := fx.Options(app.Core, fx.Populate(&conns))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				if err := database.DropSchema(ctx, conns.Writer); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema dropped")
				return nil
			})
		},
	}
	dropCmd.Flags().Bool("force", false, "Confirm dropping every table and its data")

	cmd.AddCommand(createCmd, dropCmd)
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo customer and products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *seeder.Seeder
			opts := fx.Options(app.Core, seeder.Module, fx.Populate(&seed))
			return runWithApp(cmd.Context(), opts, func(ctx context.Context) error {
				if err := seed.Demo(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "seed data applied")
				return nil
			})
		},
	}
}

func runWithApp(ctx context.Context, opts fx.Option, fn func(context.Context) error) error {
	application := fx.New(opts, fx.NopLogger)
	if err := application.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		_ = application.Stop(stopCtx)
	}()
	return fn(ctx)
}
