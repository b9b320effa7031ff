package main

import (
	"context"
	"fmt"

	"registro/internal/config"
	"registro/internal/exporter"
	"registro/internal/registry"
	"registro/pkg/domain"
	"registro/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that writes the served
// meals of a session to an Excel workbook.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the served meals of a session to an Excel workbook",
		Run: func(cmd *cobra.Command, args []string) {
			sessionID, _ := cmd.Flags().GetInt64("session")

			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))

			session, err := reg.SessionByID(ctx, domain.SessionID(sessionID))
			if err != nil {
				logger.Fatal(ctx, "could not fetch session", zap.Error(err))
			}
			meals, err := reg.ServedMeals(ctx, session.ID)
			if err != nil {
				logger.Fatal(ctx, "could not fetch served meals", zap.Error(err))
			}

			path, err := exporter.New(cfg.Export.OutputDir).ExportSession(ctx, session, meals)
			if err != nil {
				logger.Fatal(ctx, "could not export session", zap.Error(err))
			}

			fmt.Println(path) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("session", 0, "Session ID to export")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}
