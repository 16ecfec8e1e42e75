package config

import (
	"os"
	"path/filepath"

	"github.com/mkarpinski/fakturnik/pkg/types"
	"gopkg.in/yaml.v3"
)

func Load(configFile string) (*types.Config, error) {
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configFile = filepath.Join(home, ".fakturnik", "config.yaml")
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return GetDefaultConfig(), nil
		}
		return nil, err
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func GetDefaultConfig() *types.Config {
	config := &types.Config{
		Settings: types.SettingsConfig{
			Language:    "pl-PL",
			LogLevel:    "info",
			DryRun:      false,
			Concurrency: 3,
		},
		Inventory: types.InventoryConfig{
			Paths:           []string{"components"},
			IncludeMigrated: false,
		},
		MappingRules: []types.MappingRuleConfig{},
		Thresholds: types.ThresholdsConfig{
			MinTestCoverage:       80,
			MinAccessibilityScore: 90,
			MinMigratedPercent:    0,
		},
		Server: types.ServerConfig{
			Enabled:     false,
			Host:        "127.0.0.1",
			Port:        8385,
			CORSOrigins: []string{},
		},
		Webhooks: types.WebhookConfig{
			Discord: types.DiscordWebhookConfig{
				Enabled: false,
				URL:     "",
				Name:    "Fakturnik",
			},
		},
	}

	return config
}

func applyDefaults(config *types.Config) {
	if config.Settings.Language == "" {
		config.Settings.Language = "pl-PL"
	}
	if config.Settings.LogLevel == "" {
		config.Settings.LogLevel = "info"
	}
	if config.Settings.Concurrency == 0 {
		config.Settings.Concurrency = 3
	}

	if len(config.Inventory.Paths) == 0 {
		config.Inventory.Paths = []string{"components"}
	}

	if config.Thresholds.MinTestCoverage == 0 {
		config.Thresholds.MinTestCoverage = 80
	}
	if config.Thresholds.MinAccessibilityScore == 0 {
		config.Thresholds.MinAccessibilityScore = 90
	}

	if config.Server.Host == "" {
		config.Server.Host = "127.0.0.1"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8385
	}

	if config.Webhooks.Discord.Name == "" {
		config.Webhooks.Discord.Name = "Fakturnik"
	}
}

func Save(config *types.Config, configFile string) error {
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		configDir := filepath.Join(home, ".fakturnik")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return err
		}
		configFile = filepath.Join(configDir, "config.yaml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0644)
}
