package types

// MigrationResult is the outcome of migrating one component usage through
// its prop compatibility mapping.
type MigrationResult struct {
	Usage       *ComponentUsage        `json:"usage"`
	Target      string                 `json:"target,omitempty"`
	MappedProps map[string]interface{} `json:"mapped_props,omitempty"`
	Success     bool                   `json:"success"`
	Skipped     bool                   `json:"skipped,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
	Error       error                  `json:"error,omitempty"`
}

type MigrationSummary struct {
	RunID        string             `json:"run_id"`
	TotalUsages  int                `json:"total_usages"`
	SuccessCount int                `json:"success_count"`
	FailureCount int                `json:"failure_count"`
	SkippedCount int                `json:"skipped_count"`
	Results      []*MigrationResult `json:"results"`
	Errors       []error            `json:"-"`
}

// MigrationStatus is the aggregate snapshot displayed by the status command
// and thresholded by CI.
type MigrationStatus struct {
	TotalComponents    int     `json:"total_components"`
	MigratedComponents int     `json:"migrated_components"`
	MigratedPercent    float64 `json:"migrated_percent"`
	TestCoverage       float64 `json:"test_coverage"`
	AccessibilityScore float64 `json:"accessibility_score"`
}
