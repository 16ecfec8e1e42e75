package cli

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/internal/config"
	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	language string
	logLevel string
	dryRun   bool
	log      *logger.Logger
	cfg      *types.Config
)

var rootCmd = &cobra.Command{
	Use:   "fakturnik",
	Short: "Narzędzia migracji UI i walidacji danych dla aplikacji fakturowania",
	Long: `Fakturnik migruje komponenty legacy aplikacji fakturowania na nowy design
system oraz udostępnia walidatory polskich danych biznesowych (NIP, REGON, VAT).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(cfgFile)
		if err != nil && cfgFile != "" {
			return fmt.Errorf("nie można wczytać konfiguracji: %w", err)
		}

		if cfg == nil {
			cfg = config.GetDefaultConfig()
		}

		if language != "" {
			cfg.Settings.Language = language
		}
		if logLevel != "" {
			cfg.Settings.LogLevel = logLevel
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.Settings.DryRun = dryRun
		}

		log = logger.NewWithConfig(cfg)

		if cfgFile == "" {
			log.Warn("config_not_found").Send()
		} else {
			log.Info("config_loaded").Str("file", cfgFile).Send()
		}

		log.Info("app_started").
			Str("version", "v0.1.0").
			Str("language", cfg.Settings.Language).
			Bool("dry_run", cfg.Settings.DryRun).
			Send()

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "plik konfiguracji (domyślnie: ~/.fakturnik/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "język logów (pl-PL, en-US)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "poziom logów (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "uruchom bez zapisywania zmian")

	addSubcommands()
}

func addSubcommands() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}
