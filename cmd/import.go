package main

import (
	"context"
	"os"

	"registro/internal/config"
	"registro/internal/importer"
	"registro/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importFile loads one CSV file through the given importer stage.
func importFile(ctx context.Context,
	path string,
	apply func(context.Context, [][]string) (importer.Summary, error)) {
	ctx = logger.WithFields(ctx, zap.String("file", path))

	file, err := os.Open(path)
	if err != nil {
		logger.Fatal(ctx, "could not open csv file", zap.Error(err))
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := importer.ReadCSV(file)
	if err != nil {
		logger.Fatal(ctx, "could not read csv file", zap.Error(err))
	}

	summary, err := apply(ctx, rows)
	if err != nil {
		logger.Fatal(ctx, "could not import csv file", zap.Error(err))
	}

	logger.Info(ctx, "imported csv file",
		zap.Int64("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped))
}

// importCommand constructs the 'import' subcommand that loads students and
// reservations from CSV files.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports students and reserves from CSV files",
		Run: func(cmd *cobra.Command, args []string) {
			studentsPath, _ := cmd.Flags().GetString("students")
			reservesPath, _ := cmd.Flags().GetString("reserves")
			if studentsPath == "" && reservesPath == "" {
				logger.Fatal(cmd.Context(), "nothing to import, pass --students and/or --reserves")
			}

			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			imp := importer.New(strg)
			// students first so reserve rows can resolve their badges
			if studentsPath != "" {
				importFile(ctx, studentsPath, imp.ImportStudents)
			}
			if reservesPath != "" {
				importFile(ctx, reservesPath, imp.ImportReserves)
			}
		},
	}

	cmd.Flags().String("students", "", "Students CSV file path")
	cmd.Flags().String("reserves", "", "Reserves CSV file path")

	return cmd
}
