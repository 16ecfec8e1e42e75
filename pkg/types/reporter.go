package types

type ReportData struct {
	Title          string
	RunID          string
	Timestamp      string
	ExecutionMode  string
	Summary        *MigrationSummary
	Status         *MigrationStatus
	Config         ReportConfig
	Statistics     ReportStatistics
	ComponentStats []ComponentStatistic
	UsagesByStatus []UsageStatus
	HasFailures    bool
	HasSkipped     bool
}

type ReportConfig struct {
	Language       string
	Concurrency    int
	TotalRules     int
	EnabledRules   []string
	InventoryPaths []string
}

type ReportStatistics struct {
	TotalUsages  int
	SuccessRate  float64
	FailureRate  float64
	SkippedRate  float64
	TopComponent string
}

type ComponentStatistic struct {
	Component    string
	Target       string
	UsagesCount  int
	SuccessCount int
	FailureCount int
	SuccessRate  float64
}

type UsageStatus struct {
	Component   string
	Target      string
	File        string
	Status      string
	StatusClass string
	Error       string
}
