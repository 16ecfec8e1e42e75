package types

type SettingsConfig struct {
	Language    string `yaml:"language"`
	LogLevel    string `yaml:"log_level"`
	DryRun      bool   `yaml:"dry_run"`
	Concurrency int    `yaml:"concurrency"`
}

type InventoryConfig struct {
	Paths           []string `yaml:"paths"`
	IncludeMigrated bool     `yaml:"include_migrated"`
}

type MappingRuleConfig struct {
	Component string                 `yaml:"component"`
	Target    string                 `yaml:"target"`
	Renames   map[string]string      `yaml:"renames"`
	Drops     []string               `yaml:"drops,omitempty"`
	Fallback  map[string]interface{} `yaml:"fallback,omitempty"`
	Enabled   bool                   `yaml:"enabled"`
}

type ThresholdsConfig struct {
	MinTestCoverage       float64 `yaml:"min_test_coverage"`
	MinAccessibilityScore float64 `yaml:"min_accessibility_score"`
	MinMigratedPercent    float64 `yaml:"min_migrated_percent"`
}

type ServerConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DiscordWebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
	Avatar  string `yaml:"avatar,omitempty"`
}

type WebhookConfig struct {
	Discord DiscordWebhookConfig `yaml:"discord"`
}

type Config struct {
	Settings     SettingsConfig      `yaml:"settings"`
	Inventory    InventoryConfig     `yaml:"inventory"`
	MappingRules []MappingRuleConfig `yaml:"mapping_rules"`
	Thresholds   ThresholdsConfig    `yaml:"thresholds"`
	Server       ServerConfig        `yaml:"server"`
	Webhooks     WebhookConfig       `yaml:"webhooks"`
}
