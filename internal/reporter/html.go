package reporter

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/pkg/types"
)

type HTMLReporter struct {
	logger     *logger.Logger
	reportsDir string
}

func NewHTMLReporter(logger *logger.Logger) *HTMLReporter {
	home, _ := os.UserHomeDir()
	reportsDir := filepath.Join(home, ".fakturnik", "reports")

	os.MkdirAll(reportsDir, 0755)

	return &HTMLReporter{
		logger:     logger,
		reportsDir: reportsDir,
	}
}

func (r *HTMLReporter) GenerateReport(summary *types.MigrationSummary, status *types.MigrationStatus, config *types.Config, isDryRun bool) (string, error) {
	timestamp := time.Now()
	filename := fmt.Sprintf("fakturnik-report-%s.html", timestamp.Format("2006-01-02_15-04-05"))
	if isDryRun {
		filename = fmt.Sprintf("fakturnik-dryrun-%s.html", timestamp.Format("2006-01-02_15-04-05"))
	}

	reportPath := filepath.Join(r.reportsDir, filename)

	data := r.buildReportData(summary, status, config, isDryRun, timestamp)

	htmlContent, err := r.generateHTML(data)
	if err != nil {
		return "", fmt.Errorf("nie udało się wygenerować HTML: %w", err)
	}

	if err := os.WriteFile(reportPath, []byte(htmlContent), 0644); err != nil {
		return "", fmt.Errorf("nie udało się zapisać raportu: %w", err)
	}

	r.logger.Info("html_report_generated").
		Str("file", reportPath).
		Str("mode", getExecutionMode(isDryRun)).
		Int("total_usages", summary.TotalUsages).
		Send()

	return reportPath, nil
}

func (r *HTMLReporter) buildReportData(summary *types.MigrationSummary, status *types.MigrationStatus, config *types.Config, isDryRun bool, timestamp time.Time) types.ReportData {
	enabledRules := []string{}
	for _, rule := range config.MappingRules {
		if rule.Enabled {
			enabledRules = append(enabledRules, fmt.Sprintf("%s → %s", rule.Component, rule.Target))
		}
	}

	return types.ReportData{
		Title:         getReportTitle(isDryRun),
		RunID:         summary.RunID,
		Timestamp:     timestamp.Format("2006-01-02 15:04:05"),
		ExecutionMode: getExecutionMode(isDryRun),
		Summary:       summary,
		Status:        status,
		Config: types.ReportConfig{
			Language:       config.Settings.Language,
			Concurrency:    config.Settings.Concurrency,
			TotalRules:     len(config.MappingRules),
			EnabledRules:   enabledRules,
			InventoryPaths: config.Inventory.Paths,
		},
		Statistics:     r.calculateStatistics(summary),
		ComponentStats: r.calculateComponentStats(summary),
		UsagesByStatus: r.buildUsageStatusList(summary),
		HasFailures:    summary.FailureCount > 0,
		HasSkipped:     summary.SkippedCount > 0,
	}
}

func (r *HTMLReporter) calculateStatistics(summary *types.MigrationSummary) types.ReportStatistics {
	total := float64(summary.TotalUsages)
	if total == 0 {
		total = 1
	}

	componentCount := make(map[string]int)
	for _, result := range summary.Results {
		if result.Success {
			componentCount[result.Usage.Component]++
		}
	}

	topComponent := ""
	maxCount := 0
	for component, count := range componentCount {
		if count > maxCount {
			maxCount = count
			topComponent = component
		}
	}

	return types.ReportStatistics{
		TotalUsages:  summary.TotalUsages,
		SuccessRate:  float64(summary.SuccessCount) / total * 100,
		FailureRate:  float64(summary.FailureCount) / total * 100,
		SkippedRate:  float64(summary.SkippedCount) / total * 100,
		TopComponent: topComponent,
	}
}

func (r *HTMLReporter) calculateComponentStats(summary *types.MigrationSummary) []types.ComponentStatistic {
	componentStats := make(map[string]*types.ComponentStatistic)

	for _, result := range summary.Results {
		stat, exists := componentStats[result.Usage.Component]
		if !exists {
			stat = &types.ComponentStatistic{
				Component: result.Usage.Component,
				Target:    result.Target,
			}
			componentStats[result.Usage.Component] = stat
		}
		stat.UsagesCount++
		if result.Success {
			stat.SuccessCount++
		} else if !result.Skipped {
			stat.FailureCount++
		}
	}

	var stats []types.ComponentStatistic
	for _, stat := range componentStats {
		if stat.UsagesCount > 0 {
			stat.SuccessRate = float64(stat.SuccessCount) / float64(stat.UsagesCount) * 100
		}
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].UsagesCount > stats[j].UsagesCount
	})

	return stats
}

func (r *HTMLReporter) buildUsageStatusList(summary *types.MigrationSummary) []types.UsageStatus {
	var usages []types.UsageStatus

	for _, result := range summary.Results {
		status := "Sukces"
		statusClass := "success"
		errorMsg := ""

		if result.Skipped {
			status = "Pominięto"
			statusClass = "warning"
			errorMsg = result.Reason
		} else if !result.Success {
			status = "Błąd"
			statusClass = "danger"
			if result.Error != nil {
				errorMsg = result.Error.Error()
			}
		}

		usages = append(usages, types.UsageStatus{
			Component:   result.Usage.Component,
			Target:      result.Target,
			File:        result.Usage.File,
			Status:      status,
			StatusClass: statusClass,
			Error:       errorMsg,
		})
	}

	return usages
}

func (r *HTMLReporter) generateHTML(data types.ReportData) (string, error) {
	tmpl := `<!DOCTYPE html>
<html lang="pl-PL">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Timestamp}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #f5f7fa; color: #333; line-height: 1.6; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #d43d51 0%, #8a2b3f 100%); color: white; padding: 30px; border-radius: 10px; margin-bottom: 30px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); }
        .header h1 { font-size: 2.5rem; margin-bottom: 10px; }
        .header p { font-size: 1.1rem; opacity: 0.9; }
        .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 20px; margin-bottom: 30px; }
        .stat-card { background: white; padding: 25px; border-radius: 10px; box-shadow: 0 5px 15px rgba(0,0,0,0.08); border-left: 5px solid #d43d51; }
        .stat-card h3 { color: #d43d51; font-size: 2rem; margin-bottom: 5px; }
        .stat-card p { color: #666; font-weight: 500; }
        .section { background: white; margin-bottom: 30px; border-radius: 10px; overflow: hidden; box-shadow: 0 5px 15px rgba(0,0,0,0.08); }
        .section-header { background: #d43d51; color: white; padding: 20px; font-size: 1.3rem; font-weight: 600; }
        .section-content { padding: 25px; }
        .table { width: 100%; border-collapse: collapse; margin-top: 10px; }
        .table th, .table td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
        .table th { background: #f8f9fa; font-weight: 600; color: #333; }
        .table tr:hover { background: #f8f9fa; }
        .badge { padding: 4px 12px; border-radius: 20px; font-size: 0.85rem; font-weight: 500; }
        .badge.success { background: #d4edda; color: #155724; }
        .badge.warning { background: #fff3cd; color: #856404; }
        .badge.danger { background: #f8d7da; color: #721c24; }
        .progress-bar { width: 100%; height: 8px; background: #eee; border-radius: 4px; overflow: hidden; }
        .progress-fill { height: 100%; transition: width 0.3s ease; }
        .progress-success { background: #28a745; }
        .progress-warning { background: #ffc107; }
        .progress-danger { background: #dc3545; }
        .config-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; }
        .config-item { padding: 15px; background: #f8f9fa; border-radius: 8px; border-left: 3px solid #d43d51; }
        .config-item strong { color: #d43d51; }
        .footer { text-align: center; padding: 30px; color: #666; border-top: 1px solid #eee; margin-top: 30px; }
        .truncate { max-width: 300px; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
        @media (max-width: 768px) { .stats-grid { grid-template-columns: 1fr; } .table { font-size: 0.9rem; } }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Raport wygenerowany {{.Timestamp}} | Tryb: {{.ExecutionMode}} | Przebieg: {{.RunID}}</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <h3>{{.Summary.TotalUsages}}</h3>
                <p>Użycia komponentów legacy</p>
            </div>
            <div class="stat-card">
                <h3>{{.Summary.SuccessCount}}</h3>
                <p>Zmigrowane</p>
            </div>
            <div class="stat-card">
                <h3>{{.Summary.SkippedCount}}</h3>
                <p>Pominięte</p>
            </div>
            <div class="stat-card">
                <h3>{{printf "%.1f%%" .Statistics.SuccessRate}}</h3>
                <p>Skuteczność migracji</p>
            </div>
        </div>

        {{if .Status}}
        <div class="section">
            <div class="section-header">Status migracji UI</div>
            <div class="section-content">
                <div class="config-grid">
                    <div class="config-item">
                        <strong>Komponenty:</strong><br>
                        {{.Status.MigratedComponents}} / {{.Status.TotalComponents}} zmigrowanych
                    </div>
                    <div class="config-item">
                        <strong>Postęp migracji:</strong><br>
                        {{printf "%.1f%%" .Status.MigratedPercent}}
                    </div>
                    <div class="config-item">
                        <strong>Pokrycie testami:</strong><br>
                        {{printf "%.1f%%" .Status.TestCoverage}}
                    </div>
                    <div class="config-item">
                        <strong>Wynik dostępności:</strong><br>
                        {{printf "%.1f%%" .Status.AccessibilityScore}}
                    </div>
                </div>
            </div>
        </div>
        {{end}}

        <div class="section">
            <div class="section-header">Statystyki szczegółowe</div>
            <div class="section-content">
                <div style="margin-bottom: 20px;">
                    <div style="display: flex; justify-content: space-between; margin-bottom: 5px;">
                        <span>Skuteczność migracji</span>
                        <span>{{printf "%.1f%%" .Statistics.SuccessRate}}</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill progress-success" style="width: {{.Statistics.SuccessRate}}%"></div>
                    </div>
                </div>

                {{if .HasFailures}}
                <div style="margin-bottom: 20px;">
                    <div style="display: flex; justify-content: space-between; margin-bottom: 5px;">
                        <span>Odsetek błędów</span>
                        <span>{{printf "%.1f%%" .Statistics.FailureRate}}</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill progress-danger" style="width: {{.Statistics.FailureRate}}%"></div>
                    </div>
                </div>
                {{end}}

                {{if .HasSkipped}}
                <div style="margin-bottom: 20px;">
                    <div style="display: flex; justify-content: space-between; margin-bottom: 5px;">
                        <span>Odsetek pominiętych</span>
                        <span>{{printf "%.1f%%" .Statistics.SkippedRate}}</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill progress-warning" style="width: {{.Statistics.SkippedRate}}%"></div>
                    </div>
                </div>
                {{end}}
            </div>
        </div>

        <div class="section">
            <div class="section-header">Konfiguracja przebiegu</div>
            <div class="section-content">
                <div class="config-grid">
                    <div class="config-item">
                        <strong>Język:</strong><br>
                        {{.Config.Language}}
                    </div>
                    <div class="config-item">
                        <strong>Współbieżność:</strong><br>
                        {{.Config.Concurrency}} wątki
                    </div>
                    <div class="config-item">
                        <strong>Reguły mapowań:</strong><br>
                        {{.Config.TotalRules}} skonfigurowanych
                    </div>
                    <div class="config-item">
                        <strong>Ścieżki inwentarza:</strong><br>
                        {{range .Config.InventoryPaths}}{{.}}<br>{{end}}
                    </div>
                </div>

                {{if .Config.EnabledRules}}
                <h4 style="margin: 20px 0 10px 0;">Aktywne reguły mapowań:</h4>
                <ul style="margin-left: 20px;">
                    {{range .Config.EnabledRules}}
                    <li>{{.}}</li>
                    {{end}}
                </ul>
                {{end}}
            </div>
        </div>

        {{if .ComponentStats}}
        <div class="section">
            <div class="section-header">Statystyki per komponent</div>
            <div class="section-content">
                <table class="table">
                    <thead>
                        <tr>
                            <th>Komponent legacy</th>
                            <th>Komponent docelowy</th>
                            <th>Użycia</th>
                            <th>Sukcesy</th>
                            <th>Błędy</th>
                            <th>Skuteczność</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .ComponentStats}}
                        <tr>
                            <td><strong>{{.Component}}</strong></td>
                            <td>{{.Target}}</td>
                            <td>{{.UsagesCount}}</td>
                            <td style="color: #28a745;">{{.SuccessCount}}</td>
                            <td style="color: #dc3545;">{{.FailureCount}}</td>
                            <td>{{printf "%.1f%%" .SuccessRate}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
        </div>
        {{end}}

        <div class="section">
            <div class="section-header">Szczegóły migracji</div>
            <div class="section-content">
                <table class="table">
                    <thead>
                        <tr>
                            <th>Komponent</th>
                            <th>Docelowy</th>
                            <th>Plik</th>
                            <th>Status</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .UsagesByStatus}}
                        <tr>
                            <td><strong>{{.Component}}</strong></td>
                            <td>{{.Target}}</td>
                            <td class="truncate" title="{{.File}}">{{.File}}</td>
                            <td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>
                        </tr>
                        {{if .Error}}
                        <tr style="background: #fff3cd;">
                            <td colspan="4" style="font-size: 0.9rem; color: #856404;">
                                <strong>Uwaga:</strong> {{.Error}}
                            </td>
                        </tr>
                        {{end}}
                        {{end}}
                    </tbody>
                </table>
            </div>
        </div>

        <div class="footer">
            <p><strong>Fakturnik</strong> | Raport wygenerowany automatycznie</p>
            <p style="font-size: 0.9rem; margin-top: 10px;">
                Raport zawiera szczegóły migracji komponentów UI aplikacji fakturowania.
            </p>
        </div>
    </div>
</body>
</html>`

	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func getReportTitle(isDryRun bool) string {
	if isDryRun {
		return "Fakturnik - Raport symulacji"
	}
	return "Fakturnik - Raport migracji"
}

func getExecutionMode(isDryRun bool) string {
	if isDryRun {
		return "Symulacja (dry run)"
	}
	return "Produkcja"
}
