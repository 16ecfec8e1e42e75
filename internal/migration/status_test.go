package migration

import (
	"testing"

	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	inventory := &types.Inventory{
		Components: []types.ComponentUsage{
			{Component: "Button", Legacy: false, TestCoverage: 100, AccessibilityScore: 90},
			{Component: "LegacyButton", Legacy: true, TestCoverage: 60, AccessibilityScore: 70},
			{Component: "Input", Legacy: false, TestCoverage: 80, AccessibilityScore: 95},
		},
	}

	status := ComputeStatus(inventory)

	assert.Equal(t, 3, status.TotalComponents)
	assert.Equal(t, 2, status.MigratedComponents)
	assert.Equal(t, 66.67, status.MigratedPercent)
	assert.Equal(t, 80.0, status.TestCoverage)
	assert.Equal(t, 85.0, status.AccessibilityScore)
}

func TestComputeStatusEmptyInventory(t *testing.T) {
	status := ComputeStatus(&types.Inventory{})

	assert.Equal(t, 0, status.TotalComponents)
	assert.Equal(t, 0, status.MigratedComponents)
	assert.Equal(t, 0.0, status.MigratedPercent)
	assert.Equal(t, 0.0, status.TestCoverage)
}

func TestComputeStatusAll(t *testing.T) {
	inventories := []*types.Inventory{
		{Components: []types.ComponentUsage{
			{Component: "Button", Legacy: false, TestCoverage: 100, AccessibilityScore: 100},
		}},
		{Components: []types.ComponentUsage{
			{Component: "LegacyTable", Legacy: true, TestCoverage: 50, AccessibilityScore: 60},
		}},
	}

	status := ComputeStatusAll(inventories)

	assert.Equal(t, 2, status.TotalComponents)
	assert.Equal(t, 1, status.MigratedComponents)
	assert.Equal(t, 50.0, status.MigratedPercent)
	assert.Equal(t, 75.0, status.TestCoverage)
	assert.Equal(t, 80.0, status.AccessibilityScore)
}

func TestCheckThresholds(t *testing.T) {
	thresholds := types.ThresholdsConfig{
		MinTestCoverage:       80,
		MinAccessibilityScore: 90,
		MinMigratedPercent:    50,
	}

	tests := []struct {
		name           string
		status         types.MigrationStatus
		wantViolations int
	}{
		{
			name: "all thresholds met",
			status: types.MigrationStatus{
				MigratedPercent:    75,
				TestCoverage:       85,
				AccessibilityScore: 95,
			},
			wantViolations: 0,
		},
		{
			name: "coverage below threshold",
			status: types.MigrationStatus{
				MigratedPercent:    75,
				TestCoverage:       79.9,
				AccessibilityScore: 95,
			},
			wantViolations: 1,
		},
		{
			name: "everything below thresholds",
			status: types.MigrationStatus{
				MigratedPercent:    10,
				TestCoverage:       20,
				AccessibilityScore: 30,
			},
			wantViolations: 3,
		},
		{
			name: "values equal to thresholds pass",
			status: types.MigrationStatus{
				MigratedPercent:    50,
				TestCoverage:       80,
				AccessibilityScore: 90,
			},
			wantViolations: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := CheckThresholds(tt.status, thresholds)
			assert.Len(t, violations, tt.wantViolations)
		})
	}
}

func TestCheckThresholdsViolationMessages(t *testing.T) {
	status := types.MigrationStatus{
		MigratedPercent:    10,
		TestCoverage:       20,
		AccessibilityScore: 30,
	}
	thresholds := types.ThresholdsConfig{
		MinTestCoverage:       80,
		MinAccessibilityScore: 90,
		MinMigratedPercent:    50,
	}

	violations := CheckThresholds(status, thresholds)

	assert.Contains(t, violations[0], "pokrycie testami")
	assert.Contains(t, violations[1], "wynik dostępności")
	assert.Contains(t, violations[2], "zmigrowano")
}
