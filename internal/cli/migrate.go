package cli

import (
	"context"
	"fmt"

	"github.com/mkarpinski/fakturnik/internal/migration"
	"github.com/mkarpinski/fakturnik/internal/scanner"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:  "migrate [katalog]",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrateComponents(inventoryDirs(args))
	},
}

func init() {
	migrateCmd.Short = getMessage("migrate_short")
	migrateCmd.Long = getMessage("migrate_long")
}

func migrateComponents(dirs []string) error {
	ctx := context.Background()

	inventoryScanner := scanner.NewScanner(log, cfg)

	var inventories []*types.Inventory
	for _, dir := range dirs {
		scanned, err := inventoryScanner.ScanDir(dir)
		if err != nil {
			log.Error("operation_failed").
				Str("dir", dir).
				Err(err).
				Send()
			continue
		}
		inventories = append(inventories, scanned...)
	}

	if len(inventories) == 0 {
		log.Warn("no_usages_to_migrate").Send()
		return nil
	}

	engine, err := migration.NewEngine(log, cfg)
	if err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	summary, err := engine.MigrateInventories(ctx, inventories)
	if err != nil {
		log.Error("migration_failed").Err(err).Send()
		return err
	}

	if summary.FailureCount > 0 {
		log.Warn("migration_had_failures").
			Int("failures", summary.FailureCount).
			Send()

		for _, result := range summary.Results {
			if !result.Success && !result.Skipped {
				log.Error("migration_failure_detail").
					Str("component", result.Usage.Component).
					Str("file", result.Usage.File).
					Err(result.Error).
					Send()
			}
		}

		return fmt.Errorf("migracja zakończona z %d błędami", summary.FailureCount)
	}

	log.Info("operation_completed").
		Str("operation", "migrate").
		Str("run_id", summary.RunID).
		Int("success", summary.SuccessCount).
		Int("skipped", summary.SkippedCount).
		Send()

	return nil
}
