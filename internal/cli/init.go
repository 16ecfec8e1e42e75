package cli

import (
	"os"
	"path/filepath"

	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use: "init",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			log = logger.New()
		}

		log.Info("app_started").
			Str("version", "v0.1.0").
			Str("operation", "init").
			Send()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	initCmd.Short = getMessage("init_short")
	initCmd.Long = getMessage("init_long")
}

func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	configDir := filepath.Join(home, ".fakturnik")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	exampleConfig := `settings:
  language: "pl-PL"  # pl-PL, en-US
  log_level: "info"  # debug, info, warn, error
  dry_run: false
  concurrency: 3

inventory:
  paths:
    - "components"  # katalogi z plikami inwentarza komponentów
  include_migrated: false

# Reguły mapowania propsów komponentów legacy na nowy design system.
# Wbudowane mapowania (LegacyButton, LegacyInput, LegacyTable, LegacyBadge)
# można nadpisać, podając regułę o tej samej nazwie komponentu.
mapping_rules:
  - component: "LegacyAlert"
    target: "Alert"
    enabled: true
    renames:
      messageText: "message"
      alertType: "severity"
    drops:
      - "dismissable"
    fallback:
      severity: "info"

thresholds:
  min_test_coverage: 80
  min_accessibility_score: 90
  min_migrated_percent: 0

server:
  enabled: false
  host: "127.0.0.1"
  port: 8385
  cors_origins: []

webhooks:
  discord:
    enabled: false
    url: ""  # webhook URL kanału Discord
    name: "Fakturnik"
`

	if _, err := os.Stat(configFile); err == nil {
		log.Warn("config_already_exists").Str("file", configFile).Send()
		return nil
	}

	if err := os.WriteFile(configFile, []byte(exampleConfig), 0644); err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	log.Info("config_created").Str("file", configFile).Send()
	log.Info("operation_completed").Str("operation", "init").Send()

	return nil
}
