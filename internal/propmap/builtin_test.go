package propmap

import (
	"testing"

	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestVariantFromClass(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "Primary button class", value: "btn-primary", expected: "primary"},
		{name: "Variant among other classes", value: "mt-2 btn-danger w-full", expected: "danger"},
		{name: "No btn prefix", value: "card shadow", expected: "default"},
		{name: "Bare prefix", value: "btn-", expected: "default"},
		{name: "Not a string", value: 42, expected: "default"},
		{name: "Empty string", value: "", expected: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, variantFromClass(tt.value))
		})
	}
}

func TestBuiltinButtonMapping(t *testing.T) {
	mapper := NewMapper(logger.NewTest())
	mapping := BuiltinMappings()["LegacyButton"]

	result := mapper.Apply("LegacyButton", Props{
		"className": "btn-primary",
		"small":     true,
		"inline":    true,
		"disabled":  false,
	}, mapping)

	assert.Equal(t, Props{
		"variant":  "primary",
		"size":     "small",
		"disabled": false,
	}, result)
	assert.Equal(t, "Button", mapping.Target())
}

func TestBuildRegistry(t *testing.T) {
	tests := []struct {
		name        string
		rules       []types.MappingRuleConfig
		expectError bool
		check       func(t *testing.T, registry map[string]*Mapping)
	}{
		{
			name:  "No rules keeps the builtins",
			rules: nil,
			check: func(t *testing.T, registry map[string]*Mapping) {
				assert.Contains(t, registry, "LegacyButton")
				assert.Contains(t, registry, "LegacyInput")
				assert.Contains(t, registry, "LegacyTable")
				assert.Contains(t, registry, "LegacyBadge")
			},
		},
		{
			name: "Enabled rule adds a component",
			rules: []types.MappingRuleConfig{
				{
					Component: "LegacyCard",
					Target:    "Card",
					Renames:   map[string]string{"headerText": "title"},
					Enabled:   true,
				},
			},
			check: func(t *testing.T, registry map[string]*Mapping) {
				mapping, exists := registry["LegacyCard"]
				assert.True(t, exists)
				assert.Equal(t, "Card", mapping.Target())
				assert.True(t, mapping.Has("headerText"))
			},
		},
		{
			name: "Disabled rule is ignored",
			rules: []types.MappingRuleConfig{
				{
					Component: "LegacyCard",
					Target:    "Card",
					Enabled:   false,
				},
			},
			check: func(t *testing.T, registry map[string]*Mapping) {
				assert.NotContains(t, registry, "LegacyCard")
			},
		},
		{
			name: "Rule overrides a builtin",
			rules: []types.MappingRuleConfig{
				{
					Component: "LegacyBadge",
					Target:    "Chip",
					Renames:   map[string]string{"color": "hue"},
					Enabled:   true,
				},
			},
			check: func(t *testing.T, registry map[string]*Mapping) {
				assert.Equal(t, "Chip", registry["LegacyBadge"].Target())
			},
		},
		{
			name: "Rule without target fails",
			rules: []types.MappingRuleConfig{
				{Component: "LegacyCard", Enabled: true},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := BuildRegistry(tt.rules)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, registry)
		})
	}
}

func TestFromRuleAppliesFallback(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	rule := types.MappingRuleConfig{
		Component: "LegacyAlert",
		Target:    "Alert",
		Renames:   map[string]string{"messageText": "message"},
		Drops:     []string{"dismissable"},
		Fallback:  map[string]interface{}{"severity": "info"},
		Enabled:   true,
	}

	mapping := FromRule(rule)
	result := mapper.Apply("LegacyAlert", Props{
		"messageText": "Zapisano fakturę",
		"dismissable": true,
		"severity":    "success",
	}, mapping)

	assert.Equal(t, Props{"message": "Zapisano fakturę", "severity": "success"}, result)
}
