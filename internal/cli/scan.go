package cli

import (
	"sort"
	"time"

	"github.com/mkarpinski/fakturnik/internal/scanner"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:  "scan [katalog]",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanInventories(inventoryDirs(args))
	},
}

func init() {
	scanCmd.Short = getMessage("scan_short")
	scanCmd.Long = getMessage("scan_long")
}

// inventoryDirs resolves the scan roots: an explicit argument wins over the
// configured inventory paths.
func inventoryDirs(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Inventory.Paths
}

func scanInventories(dirs []string) error {
	startTime := time.Now()

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

	merged := scanner.Merge(inventories)
	legacyUsages := merged.LegacyUsages()

	log.Info("legacy_usages_found").
		Int("inventories", len(inventories)).
		Int("total_components", len(merged.Components)).
		Int("distinct_components", len(merged.CountByComponent())).
		Int("legacy_usages", len(legacyUsages)).
		Send()

	printLegacyBreakdown(legacyUsages)

	log.Info("operation_completed").
		Str("operation", "scan").
		Str("duration", time.Since(startTime).String()).
		Send()

	return nil
}

func printLegacyBreakdown(usages []types.ComponentUsage) {
	counts := make(map[string]int)
	for _, usage := range usages {
		counts[usage.Component]++
	}

	components := make([]string, 0, len(counts))
	for component := range counts {
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool {
		if counts[components[i]] != counts[components[j]] {
			return counts[components[i]] > counts[components[j]]
		}
		return components[i] < components[j]
	})

	for _, component := range components {
		log.Info("scan_summary").
			Str("component", component).
			Int("usages", counts[component]).
			Send()
	}
}
