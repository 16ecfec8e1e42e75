package logger

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type LocaleMessages struct {
	Messages map[string]string `yaml:"messages"`
}

func loadLocaleMessages(language string) (map[string]string, error) {
	filename := language + ".yaml"

	localeFile := filepath.Join("locales", filename)

	data, err := os.ReadFile(localeFile)
	if err != nil {
		fallbackFile := filepath.Join("locales", "en-US.yaml")
		data, err = os.ReadFile(fallbackFile)
		if err != nil {
			return getEmbeddedMessages("en-US"), nil
		}
	}

	var locale LocaleMessages
	if err := yaml.Unmarshal(data, &locale); err != nil {
		return getEmbeddedMessages(language), nil
	}

	return locale.Messages, nil
}

func getEmbeddedMessages(language string) map[string]string {
	switch strings.ToLower(language) {
	case "pl-pl":
		return map[string]string{
			"app_started":                     "Fakturnik uruchomiony",
			"config_not_found":                "Nie znaleziono pliku konfiguracji",
			"config_loaded":                   "Konfiguracja wczytana",
			"config_created":                  "Utworzono plik konfiguracji",
			"config_already_exists":           "Plik konfiguracji już istnieje",
			"operation_completed":             "Operacja zakończona",
			"operation_failed":                "Operacja nie powiodła się",
			"scanning_inventory":              "Skanowanie inwentarza komponentów",
			"inventory_loaded":                "Inwentarz wczytany",
			"inventory_load_failed":           "Nie udało się wczytać inwentarza",
			"legacy_usages_found":             "Znaleziono użycia komponentów legacy",
			"scan_summary":                    "Podsumowanie skanowania",
			"migration_started":               "Rozpoczęto migrację komponentów",
			"migration_completed":             "Migracja zakończona",
			"migration_failed":                "Migracja nie powiodła się",
			"migration_had_failures":          "Migracja zakończona z błędami",
			"migration_failure_detail":        "Szczegóły błędu migracji",
			"dry_run_mode":                    "Tryb symulacji - żadne zmiany nie zostaną zapisane",
			"dry_run_would_migrate":           "Symulacja: komponent zostałby zmigrowany",
			"usage_migrated":                  "Komponent zmigrowany",
			"usage_skipped_no_mapping":        "Pominięto - brak mapowania dla komponentu",
			"mapping_fn_failed":               "Funkcja mapująca zgłosiła błąd",
			"mapping_fallback_applied":        "Zastosowano wariant domyślny",
			"no_usages_to_migrate":            "Brak komponentów do migracji",
			"no_mappings_configured":          "Nie skonfigurowano żadnych mapowań",
			"migrated_inventory_written":      "Zapisano zmigrowany inwentarz",
			"migrated_inventory_write_failed": "Nie udało się zapisać zmigrowanego inwentarza",
			"status_computed":                 "Obliczono status migracji",
			"thresholds_met":                  "Progi jakości spełnione",
			"thresholds_not_met":              "Progi jakości niespełnione",
			"nip_valid":                       "NIP poprawny",
			"nip_invalid":                     "NIP niepoprawny",
			"regon_valid":                     "REGON poprawny",
			"regon_invalid":                   "REGON niepoprawny",
			"vat_calculated":                  "Obliczono VAT",
			"vat_rate_invalid":                "Nieobsługiwana stawka VAT",
			"server_starting":                 "Uruchamianie serwera walidacji",
			"server_started":                  "Serwer walidacji uruchomiony",
			"server_stopped":                  "Serwer walidacji zatrzymany",
			"server_shutdown_failed":          "Błąd podczas zatrzymywania serwera",
			"server_response_failed":          "Nie można zapisać odpowiedzi HTTP",
			"html_report_generated":           "Wygenerowano raport HTML",
			"html_report_ready":               "Raport HTML gotowy",
			"html_report_failed":              "Nie udało się wygenerować raportu HTML",
			"discord_webhook_enabled":         "Powiadomienia Discord włączone",
			"discord_webhook_failed":          "Nie udało się wysłać powiadomienia Discord",
		}
	default:
		return map[string]string{
			"app_started":                     "Fakturnik started",
			"config_not_found":                "Configuration file not found",
			"config_loaded":                   "Configuration loaded",
			"config_created":                  "Configuration file created",
			"config_already_exists":           "Configuration file already exists",
			"operation_completed":             "Operation completed",
			"operation_failed":                "Operation failed",
			"scanning_inventory":              "Scanning component inventory",
			"inventory_loaded":                "Inventory loaded",
			"inventory_load_failed":           "Failed to load inventory",
			"legacy_usages_found":             "Legacy component usages found",
			"scan_summary":                    "Scan summary",
			"migration_started":               "Component migration started",
			"migration_completed":             "Migration completed",
			"migration_failed":                "Migration failed",
			"migration_had_failures":          "Migration finished with failures",
			"migration_failure_detail":        "Migration failure detail",
			"dry_run_mode":                    "Dry run - no changes will be written",
			"dry_run_would_migrate":           "Dry run: component would be migrated",
			"usage_migrated":                  "Component migrated",
			"usage_skipped_no_mapping":        "Skipped - no mapping for component",
			"mapping_fn_failed":               "Mapping function failed",
			"mapping_fallback_applied":        "Fallback variant applied",
			"no_usages_to_migrate":            "No components to migrate",
			"no_mappings_configured":          "No mappings configured",
			"migrated_inventory_written":      "Migrated inventory written",
			"migrated_inventory_write_failed": "Failed to write migrated inventory",
			"status_computed":                 "Migration status computed",
			"thresholds_met":                  "Quality thresholds met",
			"thresholds_not_met":              "Quality thresholds not met",
			"nip_valid":                       "NIP is valid",
			"nip_invalid":                     "NIP is invalid",
			"regon_valid":                     "REGON is valid",
			"regon_invalid":                   "REGON is invalid",
			"vat_calculated":                  "VAT calculated",
			"vat_rate_invalid":                "Unsupported VAT rate",
			"server_starting":                 "Starting validation server",
			"server_started":                  "Validation server started",
			"server_stopped":                  "Validation server stopped",
			"server_shutdown_failed":          "Server shutdown failed",
			"server_response_failed":          "Failed to write HTTP response",
			"html_report_generated":           "HTML report generated",
			"html_report_ready":               "HTML report ready",
			"html_report_failed":              "Failed to generate HTML report",
			"discord_webhook_enabled":         "Discord notifications enabled",
			"discord_webhook_failed":          "Failed to send Discord notification",
		}
	}
}
