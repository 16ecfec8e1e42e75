package migration

import (
	"github.com/mkarpinski/fakturnik/pkg/types"
)

func (e *Engine) dryRunMigration(runID string, usages []*types.ComponentUsage) *types.MigrationSummary {
	e.logger.Info("dry_run_mode").
		Str("run_id", runID).
		Int("total_usages", len(usages)).
		Send()

	summary := &types.MigrationSummary{
		RunID:       runID,
		TotalUsages: len(usages),
		Results:     make([]*types.MigrationResult, 0, len(usages)),
	}

	for _, usage := range usages {
		result := e.migrateUsage(usage)

		if result.Success {
			e.logger.Info("dry_run_would_migrate").
				Str("component", usage.Component).
				Str("target", result.Target).
				Str("file", usage.File).
				Interface("mapped_props", result.MappedProps).
				Send()
		}

		summary.Results = append(summary.Results, result)
		e.updateSummaryCounters(summary, result)
	}

	return summary
}
