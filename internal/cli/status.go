package cli

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/internal/migration"
	"github.com/mkarpinski/fakturnik/internal/scanner"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/spf13/cobra"
)

var checkThresholds bool

var statusCmd = &cobra.Command{
	Use:  "status [katalog]",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus(inventoryDirs(args))
	},
}

func init() {
	statusCmd.Short = getMessage("status_short")
	statusCmd.Long = getMessage("status_long")
	statusCmd.Flags().BoolVar(&checkThresholds, "check", false, "zakończ błędem, gdy progi jakości nie są spełnione")
}

func showStatus(dirs []string) error {
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

	status := migration.ComputeStatusAll(inventories)

	log.Info("status_computed").
		Int("total_components", status.TotalComponents).
		Int("migrated_components", status.MigratedComponents).
		Float64("migrated_percent", status.MigratedPercent).
		Float64("test_coverage", status.TestCoverage).
		Float64("accessibility_score", status.AccessibilityScore).
		Send()

	fmt.Println(renderStatus(status, cfg.Thresholds))

	if !checkThresholds {
		log.Info("operation_completed").
			Str("operation", "status").
			Send()
		return nil
	}

	violations := migration.CheckThresholds(status, cfg.Thresholds)
	if len(violations) > 0 {
		for _, violation := range violations {
			log.Warn("thresholds_not_met").
				Str("violation", violation).
				Send()
		}
		return fmt.Errorf("progi jakości niespełnione (%d naruszeń)", len(violations))
	}

	log.Info("thresholds_met").Send()
	log.Info("operation_completed").
		Str("operation", "status").
		Send()

	return nil
}
