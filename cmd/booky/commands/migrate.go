package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/schema"
)

func migrateCmd() *cobra.Command {
	var withSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded PostgreSQL schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := schema.Apply(ctx, db, withSeed, log); err != nil {
				return err
			}

			log.Info("Schema is up to date")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSeed, "seed", false, "also insert demo rooms")
	return cmd
}
