package migration

import (
	"context"
	"os"

	"github.com/mkarpinski/fakturnik/pkg/types"
)

func (e *Engine) updateSummaryCounters(summary *types.MigrationSummary, result *types.MigrationResult) {
	switch {
	case result.Success:
		summary.SuccessCount++
	case result.Skipped:
		summary.SkippedCount++
	default:
		summary.FailureCount++
		if result.Error != nil {
			summary.Errors = append(summary.Errors, result.Error)
		}
	}
}

func (e *Engine) notifyComplete(ctx context.Context, summary *types.MigrationSummary, isDryRun bool) {
	if e.discordWebhook == nil {
		return
	}
	if err := e.discordWebhook.SendMigrationComplete(ctx, summary, isDryRun); err != nil {
		e.logger.Warn("discord_webhook_failed").Err(err).Send()
	}
}

func (e *Engine) generateReport(summary *types.MigrationSummary, inventories []*types.Inventory, isDryRun bool) {
	if e.htmlReporter == nil {
		return
	}

	status := ComputeStatusAll(inventories)

	reportPath, err := e.htmlReporter.GenerateReport(summary, &status, e.config, isDryRun)
	if err != nil {
		e.logger.Warn("html_report_failed").Err(err).Send()
		return
	}

	e.logger.Info("html_report_ready").
		Str("path", reportPath).
		Send()
}

func collectLegacyUsages(inventories []*types.Inventory) []*types.ComponentUsage {
	var usages []*types.ComponentUsage
	for _, inventory := range inventories {
		for i := range inventory.Components {
			if inventory.Components[i].Legacy {
				usages = append(usages, &inventory.Components[i])
			}
		}
	}
	return usages
}

func maskWebhookURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:20] + "***"
}

func defaultWriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
