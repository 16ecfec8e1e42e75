package propmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkarpinski/fakturnik/pkg/types"
)

// Builtin mappings for the invoicing application's legacy components. The
// declarative rename-only rules from the configuration file extend (and can
// override) these.

func BuiltinMappings() map[string]*Mapping {
	return map[string]*Mapping{
		"LegacyButton": buttonMapping(),
		"LegacyInput":  inputMapping(),
		"LegacyTable":  tableMapping(),
		"LegacyBadge":  badgeMapping(),
	}
}

func buttonMapping() *Mapping {
	return NewMapping("Button").
		Transform("className", func(value interface{}) (Props, error) {
			return Props{"variant": variantFromClass(value)}, nil
		}).
		Transform("small", func(value interface{}) (Props, error) {
			if small, ok := value.(bool); ok && small {
				return Props{"size": "small"}, nil
			}
			return Props{"size": "medium"}, nil
		}).
		Drop("inline").
		Fallback(Props{"variant": "default"})
}

func inputMapping() *Mapping {
	return NewMapping("Input").
		Rename("labelText", "label").
		Rename("errorText", "error").
		Rename("helpText", "description").
		Fallback(Props{"variant": "default"})
}

func tableMapping() *Mapping {
	return NewMapping("Table").
		Rename("rows", "data").
		Rename("zebra", "striped").
		Drop("bordered").
		Fallback(Props{"variant": "default"})
}

func badgeMapping() *Mapping {
	return NewMapping("Badge").
		Rename("color", "tone").
		Fallback(Props{"tone": "neutral"})
}

// variantFromClass translates bootstrap-era class names like "btn-primary"
// into the new component's variant prop.
func variantFromClass(value interface{}) string {
	class, ok := value.(string)
	if !ok {
		return "default"
	}

	for _, part := range strings.Fields(class) {
		if variant, found := strings.CutPrefix(part, "btn-"); found && variant != "" {
			return variant
		}
	}
	return "default"
}

// FromRule builds a mapping from a declarative configuration rule.
func FromRule(rule types.MappingRuleConfig) *Mapping {
	m := NewMapping(rule.Target)
	// yaml maps carry no order; sort so declaration order stays deterministic
	legacyNames := make([]string, 0, len(rule.Renames))
	for legacy := range rule.Renames {
		legacyNames = append(legacyNames, legacy)
	}
	sort.Strings(legacyNames)
	for _, legacy := range legacyNames {
		m.Rename(legacy, rule.Renames[legacy])
	}
	for _, legacy := range rule.Drops {
		m.Drop(legacy)
	}
	if len(rule.Fallback) > 0 {
		m.Fallback(Props(rule.Fallback))
	}
	return m
}

// BuildRegistry merges the builtin mappings with the enabled configuration
// rules; a rule for an already-known component replaces the builtin one.
func BuildRegistry(rules []types.MappingRuleConfig) (map[string]*Mapping, error) {
	registry := BuiltinMappings()
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		if rule.Component == "" || rule.Target == "" {
			return nil, fmt.Errorf("reguła mapowania wymaga pól component i target")
		}
		registry[rule.Component] = FromRule(rule)
	}
	return registry, nil
}
