package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarpinski/fakturnik/internal/config"
	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `app: fakturnik-web
components:
  - component: LegacyButton
    file: templates/invoices/create.html
    line: 42
    legacy: true
    props:
      className: btn-primary
      small: true
    test_coverage: 85
    accessibility_score: 92
  - component: Button
    file: templates/invoices/list.html
    legacy: false
    props:
      variant: secondary
    test_coverage: 95
    accessibility_score: 98
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadInventory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "invoices.yaml", sampleInventory)

	s := NewScanner(logger.NewTest(), config.GetDefaultConfig())
	inventory, err := s.LoadInventory(path)

	require.NoError(t, err)
	assert.Equal(t, "fakturnik-web", inventory.App)
	assert.Equal(t, path, inventory.SourcePath)
	require.Len(t, inventory.Components, 2)

	first := inventory.Components[0]
	assert.Equal(t, "LegacyButton", first.Component)
	assert.True(t, first.Legacy)
	assert.Equal(t, "btn-primary", first.Props["className"])
	assert.InDelta(t, 85, first.TestCoverage, 0.001)
}

func TestLoadInventoryErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewScanner(logger.NewTest(), config.GetDefaultConfig())

	_, err := s.LoadInventory(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "components: {not: [valid")
	_, err = s.LoadInventory(bad)
	assert.Error(t, err)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoices.yaml", sampleInventory)
	writeFile(t, dir, "customers.yml", sampleInventory)
	writeFile(t, dir, "invoices.migrated.yaml", sampleInventory)
	writeFile(t, dir, "notes.txt", "not an inventory")

	s := NewScanner(logger.NewTest(), config.GetDefaultConfig())
	inventories, err := s.ScanDir(dir)

	require.NoError(t, err)
	assert.Len(t, inventories, 2, "migrated outputs and non-yaml files are skipped")
}

func TestScanDirIncludesMigratedWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoices.yaml", sampleInventory)
	writeFile(t, dir, "invoices.migrated.yaml", sampleInventory)

	cfg := config.GetDefaultConfig()
	cfg.Inventory.IncludeMigrated = true

	s := NewScanner(logger.NewTest(), cfg)
	inventories, err := s.ScanDir(dir)

	require.NoError(t, err)
	assert.Len(t, inventories, 2)
}

func TestMerge(t *testing.T) {
	a := &types.Inventory{App: "fakturnik-web", Components: []types.ComponentUsage{
		{Component: "LegacyButton", Legacy: true},
	}}
	b := &types.Inventory{App: "fakturnik-web", Components: []types.ComponentUsage{
		{Component: "Button"},
		{Component: "LegacyInput", Legacy: true},
	}}

	merged := Merge([]*types.Inventory{a, b})

	assert.Equal(t, "fakturnik-web", merged.App)
	assert.Len(t, merged.Components, 3)
	assert.Len(t, merged.LegacyUsages(), 2)
	assert.Equal(t, map[string]int{"LegacyButton": 1, "Button": 1, "LegacyInput": 1}, merged.CountByComponent())
}
