package migration

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/pkg/polish"
	"github.com/mkarpinski/fakturnik/pkg/types"
)

// ComputeStatus aggregates one inventory into the migration status snapshot
// displayed by the status command and thresholded in CI. Coverage and
// accessibility are per-usage means.
func ComputeStatus(inventory *types.Inventory) types.MigrationStatus {
	status := types.MigrationStatus{
		TotalComponents: len(inventory.Components),
	}

	if status.TotalComponents == 0 {
		return status
	}

	var coverageSum, accessibilitySum float64
	for _, usage := range inventory.Components {
		if !usage.Legacy {
			status.MigratedComponents++
		}
		coverageSum += usage.TestCoverage
		accessibilitySum += usage.AccessibilityScore
	}

	total := float64(status.TotalComponents)
	status.MigratedPercent = polish.Round2(float64(status.MigratedComponents) / total * 100)
	status.TestCoverage = polish.Round2(coverageSum / total)
	status.AccessibilityScore = polish.Round2(accessibilitySum / total)

	return status
}

func ComputeStatusAll(inventories []*types.Inventory) types.MigrationStatus {
	merged := &types.Inventory{}
	for _, inventory := range inventories {
		merged.Components = append(merged.Components, inventory.Components...)
	}
	return ComputeStatus(merged)
}

// CheckThresholds returns one violation per unmet quality threshold. An
// empty slice means the CI gate passes.
func CheckThresholds(status types.MigrationStatus, thresholds types.ThresholdsConfig) []string {
	var violations []string

	if status.TestCoverage < thresholds.MinTestCoverage {
		violations = append(violations, fmt.Sprintf(
			"pokrycie testami %.1f%% poniżej progu %.1f%%",
			status.TestCoverage, thresholds.MinTestCoverage))
	}
	if status.AccessibilityScore < thresholds.MinAccessibilityScore {
		violations = append(violations, fmt.Sprintf(
			"wynik dostępności %.1f%% poniżej progu %.1f%%",
			status.AccessibilityScore, thresholds.MinAccessibilityScore))
	}
	if status.MigratedPercent < thresholds.MinMigratedPercent {
		violations = append(violations, fmt.Sprintf(
			"zmigrowano %.1f%% komponentów, wymagane %.1f%%",
			status.MigratedPercent, thresholds.MinMigratedPercent))
	}

	return violations
}
