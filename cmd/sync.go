package main

import (
	"context"

	"registro/internal/config"
	"registro/internal/registry"
	"registro/pkg/domain"
	"registro/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCommand constructs the 'sync' subcommand that enqueues spreadsheet
// synchronization jobs. Jobs are picked up by the workers of a running
// 'serve' instance.
func syncCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Enqueues spreadsheet synchronization jobs",
		Run: func(cmd *cobra.Command, args []string) {
			sessionID, _ := cmd.Flags().GetInt64("session")
			master, _ := cmd.Flags().GetBool("master")

			ctx := context.Background()

			if sessionID == 0 && !master {
				logger.Fatal(ctx, "nothing to sync, pass --session and/or --master")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))

			if sessionID != 0 {
				queued, err := reg.EnqueueServedSync(ctx, domain.SessionID(sessionID))
				if err != nil {
					logger.Fatal(ctx, "could not enqueue served sync", zap.Error(err))
				}
				logger.Info(ctx, "served sync job",
					zap.Int64("sessionID", sessionID),
					zap.Bool("queued", queued))
			}

			if master {
				queued, err := reg.EnqueueMasterSync(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not enqueue master sync", zap.Error(err))
				}
				logger.Info(ctx, "master sync job", zap.Bool("queued", queued))
			}
		},
	}

	cmd.Flags().Int64("session", 0, "Session ID whose served meals should be uploaded")
	cmd.Flags().Bool("master", false, "Pull the master roster and reservation list")

	return cmd
}
