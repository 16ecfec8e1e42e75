package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func NewTest() *Logger {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	testLogger := zerolog.New(io.Discard).With().Timestamp().Logger()

	l := &Logger{
		logger:   testLogger,
		language: "en-US",
		messages: make(map[string]string),
	}

	l.messages = map[string]string{
		"migration_started":        "Component migration started",
		"migration_completed":      "Migration completed",
		"dry_run_would_migrate":    "Dry run: component would be migrated",
		"usage_migrated":           "Component migrated",
		"usage_skipped_no_mapping": "Skipped - no mapping for component",
		"mapping_fn_failed":        "Mapping function failed",
		"mapping_fallback_applied": "Fallback variant applied",
		"status_computed":          "Migration status computed",
		"inventory_loaded":         "Inventory loaded",
	}

	return l
}

func NewTestWithOutput() *Logger {
	testLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	l := &Logger{
		logger:   testLogger,
		language: "en-US",
		messages: make(map[string]string),
	}

	return l
}
