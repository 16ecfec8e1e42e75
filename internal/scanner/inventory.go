package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"gopkg.in/yaml.v3"
)

// Scanner loads component usage inventories exported by the invoicing
// application's build step (one yaml file per template or view).
type Scanner struct {
	logger *logger.Logger
	config *types.Config
}

func NewScanner(log *logger.Logger, cfg *types.Config) *Scanner {
	return &Scanner{
		logger: log,
		config: cfg,
	}
}

func (s *Scanner) LoadInventory(path string) (*types.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nie można odczytać inwentarza %s: %w", path, err)
	}

	var inventory types.Inventory
	if err := yaml.Unmarshal(data, &inventory); err != nil {
		return nil, fmt.Errorf("niepoprawny plik inwentarza %s: %w", path, err)
	}

	inventory.SourcePath = path

	s.logger.Debug("inventory_loaded").
		Str("file", path).
		Str("app", inventory.App).
		Int("components", len(inventory.Components)).
		Send()

	return &inventory, nil
}

// ScanDir collects every inventory file under dir. Files already produced by
// a migration run (*.migrated.yaml) are skipped unless the configuration
// asks for them.
func (s *Scanner) ScanDir(dir string) ([]*types.Inventory, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isInventoryFile(path) {
			return nil
		}
		if !s.config.Inventory.IncludeMigrated && strings.HasSuffix(path, ".migrated.yaml") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	var inventories []*types.Inventory
	for _, path := range paths {
		inventory, err := s.LoadInventory(path)
		if err != nil {
			s.logger.Error("inventory_load_failed").
				Str("file", path).
				Err(err).
				Send()
			continue
		}
		inventories = append(inventories, inventory)
	}

	s.logger.Info("scanning_inventory").
		Str("dir", dir).
		Int("files", len(inventories)).
		Send()

	return inventories, nil
}

// Merge flattens several inventories into one for aggregate reporting.
func Merge(inventories []*types.Inventory) *types.Inventory {
	merged := &types.Inventory{}
	for _, inventory := range inventories {
		if merged.App == "" {
			merged.App = inventory.App
		}
		merged.Components = append(merged.Components, inventory.Components...)
	}
	return merged
}

func isInventoryFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
