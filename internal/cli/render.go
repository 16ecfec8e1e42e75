package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkarpinski/fakturnik/pkg/types"
)

var (
	accent  = lipgloss.Color("#D43D51")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	dim     = lipgloss.Color("#6B7280")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Width(56)

	labelStyle = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
)

func renderStatus(status types.MigrationStatus, thresholds types.ThresholdsConfig) string {
	var b strings.Builder

	title := headerStyle.Render("fakturnik")
	subtitle := labelStyle.Render("Status migracji UI")

	rows := []string{
		statusRow("Komponenty", fmt.Sprintf("%d / %d", status.MigratedComponents, status.TotalComponents), nil),
		statusRow("Postęp migracji", percent(status.MigratedPercent), meets(status.MigratedPercent, thresholds.MinMigratedPercent)),
		statusRow("Pokrycie testami", percent(status.TestCoverage), meets(status.TestCoverage, thresholds.MinTestCoverage)),
		statusRow("Dostępność", percent(status.AccessibilityScore), meets(status.AccessibilityScore, thresholds.MinAccessibilityScore)),
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + strings.Join(rows, "\n")))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(status.MigratedPercent))

	return b.String()
}

func statusRow(label, value string, ok *bool) string {
	style := lipgloss.NewStyle()
	if ok != nil {
		if *ok {
			style = passStyle
		} else {
			style = failStyle
		}
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-20s", label)), style.Render(value))
}

func renderProgressBar(migratedPercent float64) string {
	const width = 40

	filled := int(migratedPercent / 100 * width)
	if filled > width {
		filled = width
	}

	style := failStyle
	switch {
	case migratedPercent >= 80:
		style = passStyle
	case migratedPercent >= 40:
		style = warnStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) + labelStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, style.Render(percent(migratedPercent)))
}

func percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func meets(value, threshold float64) *bool {
	ok := value >= threshold
	return &ok
}
