package migration

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/internal/propmap"
	"github.com/mkarpinski/fakturnik/internal/reporter"
	"github.com/mkarpinski/fakturnik/internal/webhook"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"gopkg.in/yaml.v3"
)

type Engine struct {
	mapper         *propmap.Mapper
	registry       map[string]*propmap.Mapping
	logger         *logger.Logger
	config         *types.Config
	concurrency    int
	discordWebhook *webhook.DiscordWebhook
	htmlReporter   *reporter.HTMLReporter
	writeFile      func(path string, data []byte) error
}

func NewEngine(log *logger.Logger, cfg *types.Config) (*Engine, error) {
	registry, err := propmap.BuildRegistry(cfg.MappingRules)
	if err != nil {
		return nil, err
	}

	concurrency := 3
	if cfg.Settings.Concurrency > 0 {
		concurrency = cfg.Settings.Concurrency
	}

	engine := &Engine{
		mapper:       propmap.NewMapper(log),
		registry:     registry,
		logger:       log,
		config:       cfg,
		concurrency:  concurrency,
		htmlReporter: reporter.NewHTMLReporter(log),
		writeFile:    defaultWriteFile,
	}

	if cfg.Webhooks.Discord.Enabled && cfg.Webhooks.Discord.URL != "" {
		engine.discordWebhook = webhook.NewDiscordWebhook(cfg.Webhooks.Discord, log)
		log.Info("discord_webhook_enabled").
			Str("url", maskWebhookURL(cfg.Webhooks.Discord.URL)).
			Send()
	}

	return engine, nil
}

// MigrateInventories runs every legacy usage through its prop mapping. In
// dry-run mode nothing is written; otherwise each inventory gets a
// *.migrated.yaml sibling, an HTML report is generated and the webhook is
// notified.
func (e *Engine) MigrateInventories(ctx context.Context, inventories []*types.Inventory) (*types.MigrationSummary, error) {
	usages := collectLegacyUsages(inventories)
	if len(usages) == 0 {
		e.logger.Info("no_usages_to_migrate").Send()
		return &types.MigrationSummary{RunID: uuid.New().String()}, nil
	}

	if len(e.registry) == 0 {
		err := fmt.Errorf("nie skonfigurowano żadnych mapowań komponentów")
		e.logger.Error("no_mappings_configured").Send()
		if e.discordWebhook != nil {
			e.discordWebhook.SendError(ctx, err.Error(), "Rejestr mapowań")
		}
		return nil, err
	}

	runID := uuid.New().String()

	e.logger.Info("migration_started").
		Str("run_id", runID).
		Int("total_usages", len(usages)).
		Int("inventories", len(inventories)).
		Int("concurrency", e.concurrency).
		Bool("dry_run", e.config.Settings.DryRun).
		Send()

	if e.discordWebhook != nil {
		if err := e.discordWebhook.SendMigrationStart(ctx, len(usages), len(inventories), e.config.Settings.DryRun); err != nil {
			e.logger.Warn("discord_webhook_failed").Err(err).Send()
		}
	}

	if e.config.Settings.DryRun {
		summary := e.dryRunMigration(runID, usages)
		e.notifyComplete(ctx, summary, true)
		e.generateReport(summary, inventories, true)
		return summary, nil
	}

	summary := &types.MigrationSummary{
		RunID:       runID,
		TotalUsages: len(usages),
		Results:     make([]*types.MigrationResult, 0, len(usages)),
	}

	semaphore := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, usage := range usages {
		wg.Add(1)
		go func(u *types.ComponentUsage) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result := e.migrateUsage(u)

			mu.Lock()
			summary.Results = append(summary.Results, result)
			e.updateSummaryCounters(summary, result)
			mu.Unlock()
		}(usage)
	}

	wg.Wait()

	if err := e.writeMigratedInventories(inventories, summary); err != nil {
		e.logger.Error("migrated_inventory_write_failed").Err(err).Send()
		summary.Errors = append(summary.Errors, err)
	}

	e.logger.Info("migration_completed").
		Str("run_id", summary.RunID).
		Int("total", summary.TotalUsages).
		Int("success", summary.SuccessCount).
		Int("skipped", summary.SkippedCount).
		Int("failures", summary.FailureCount).
		Send()

	e.notifyComplete(ctx, summary, false)
	e.generateReport(summary, inventories, false)

	return summary, nil
}

func (e *Engine) migrateUsage(usage *types.ComponentUsage) *types.MigrationResult {
	mapping, exists := e.registry[usage.Component]
	if !exists {
		e.logger.Warn("usage_skipped_no_mapping").
			Str("component", usage.Component).
			Str("file", usage.File).
			Send()
		return &types.MigrationResult{
			Usage:   usage,
			Skipped: true,
			Reason:  "brak mapowania dla komponentu",
		}
	}

	mapped := e.mapper.Apply(usage.Component, propmap.Props(usage.Props), mapping)

	e.logger.Debug("usage_migrated").
		Str("component", usage.Component).
		Str("target", mapping.Target()).
		Str("file", usage.File).
		Int("props", len(mapped)).
		Send()

	return &types.MigrationResult{
		Usage:       usage,
		Target:      mapping.Target(),
		MappedProps: mapped,
		Success:     true,
	}
}

// writeMigratedInventories produces one *.migrated.yaml per source
// inventory, with every successfully migrated usage replaced by its new
// component and props. Skipped usages are carried over unchanged.
func (e *Engine) writeMigratedInventories(inventories []*types.Inventory, summary *types.MigrationSummary) error {
	migratedByUsage := make(map[*types.ComponentUsage]*types.MigrationResult, len(summary.Results))
	for _, result := range summary.Results {
		if result.Success {
			migratedByUsage[result.Usage] = result
		}
	}

	for _, inventory := range inventories {
		out := &types.Inventory{App: inventory.App}
		for i := range inventory.Components {
			usage := &inventory.Components[i]
			result, migrated := migratedByUsage[usage]
			if !migrated {
				out.Components = append(out.Components, *usage)
				continue
			}
			out.Components = append(out.Components, types.ComponentUsage{
				Component:          result.Target,
				File:               usage.File,
				Line:               usage.Line,
				Legacy:             false,
				Props:              result.MappedProps,
				TestCoverage:       usage.TestCoverage,
				AccessibilityScore: usage.AccessibilityScore,
			})
		}

		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("nie można zserializować inwentarza %s: %w", inventory.SourcePath, err)
		}

		outPath := migratedPath(inventory.SourcePath)
		if err := e.writeFile(outPath, data); err != nil {
			return fmt.Errorf("nie można zapisać %s: %w", outPath, err)
		}

		e.logger.Info("migrated_inventory_written").
			Str("source", inventory.SourcePath).
			Str("target", outPath).
			Send()
	}

	return nil
}

func migratedPath(sourcePath string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(sourcePath, ".yaml"), ".yml")
	return trimmed + ".migrated.yaml"
}
