package propmap

import (
	"errors"
	"testing"

	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestMapperApply(t *testing.T) {
	tests := []struct {
		name     string
		legacy   Props
		mapping  func() *Mapping
		expected Props
	}{
		{
			name:   "ClassName maps to variant",
			legacy: Props{"className": "btn-primary"},
			mapping: func() *Mapping {
				return NewMapping("Button").Transform("className", func(value interface{}) (Props, error) {
					return Props{"variant": variantFromClass(value)}, nil
				})
			},
			expected: Props{"variant": "primary"},
		},
		{
			name:   "Unmapped props pass through unchanged",
			legacy: Props{"className": "btn-primary", "foo": "bar"},
			mapping: func() *Mapping {
				return NewMapping("Button").Rename("className", "variant")
			},
			expected: Props{"variant": "btn-primary", "foo": "bar"},
		},
		{
			name:   "Rename keeps the value",
			legacy: Props{"labelText": "Numer NIP"},
			mapping: func() *Mapping {
				return NewMapping("Input").Rename("labelText", "label")
			},
			expected: Props{"label": "Numer NIP"},
		},
		{
			name:   "Drop removes the prop",
			legacy: Props{"inline": true, "disabled": false},
			mapping: func() *Mapping {
				return NewMapping("Button").Drop("inline")
			},
			expected: Props{"disabled": false},
		},
		{
			name:   "Mapped result overwrites a passthrough prop of the same name",
			legacy: Props{"variant": "stale", "className": "btn-danger"},
			mapping: func() *Mapping {
				return NewMapping("Button").Transform("className", func(value interface{}) (Props, error) {
					return Props{"variant": variantFromClass(value)}, nil
				})
			},
			expected: Props{"variant": "danger"},
		},
		{
			name:   "Later declaration wins when two sources hit the same target",
			legacy: Props{"color": "red", "tone": "subtle"},
			mapping: func() *Mapping {
				return NewMapping("Badge").
					Rename("color", "tone").
					Rename("tone", "tone")
			},
			expected: Props{"tone": "subtle"},
		},
		{
			name:     "Nil mapping passes everything through",
			legacy:   Props{"a": 1, "b": 2},
			mapping:  func() *Mapping { return nil },
			expected: Props{"a": 1, "b": 2},
		},
		{
			name:   "Missing legacy prop leaves the entry unused",
			legacy: Props{"foo": "bar"},
			mapping: func() *Mapping {
				return NewMapping("Input").Rename("labelText", "label")
			},
			expected: Props{"foo": "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper := NewMapper(logger.NewTest())

			result := mapper.Apply("TestComponent", tt.legacy, tt.mapping())

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMapperApplyRecoversFromErrors(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	mapping := NewMapping("Button").
		Transform("className", func(interface{}) (Props, error) {
			return nil, errors.New("niepoprawna klasa")
		}).
		Rename("labelText", "label").
		Fallback(Props{"variant": "default"})

	legacy := Props{
		"className": "btn-primary",
		"labelText": "Zapisz",
		"disabled":  true,
	}

	var result Props
	assert.NotPanics(t, func() {
		result = mapper.Apply("LegacyButton", legacy, mapping)
	})

	assert.Equal(t, "Zapisz", result["label"], "later mappings still run after a failure")
	assert.Equal(t, true, result["disabled"], "passthrough props survive a failure")
	assert.Equal(t, "default", result["variant"], "fallback fills the missing target prop")
	assert.NotContains(t, result, "className")
}

func TestMapperApplyRecoversFromPanics(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	mapping := NewMapping("Table").
		Transform("rows", func(value interface{}) (Props, error) {
			rows := value.([]string) // deliberate bad assertion
			return Props{"data": rows}, nil
		}).
		Rename("zebra", "striped")

	legacy := Props{
		"rows":  42,
		"zebra": true,
	}

	var result Props
	assert.NotPanics(t, func() {
		result = mapper.Apply("LegacyTable", legacy, mapping)
	})

	assert.Equal(t, true, result["striped"])
	assert.NotContains(t, result, "rows")
	assert.NotContains(t, result, "data")
}

func TestMapperApplyFallbackDoesNotOverwrite(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	mapping := NewMapping("Button").
		Transform("broken", func(interface{}) (Props, error) {
			return nil, errors.New("boom")
		}).
		Rename("className", "variant").
		Fallback(Props{"variant": "default", "size": "medium"})

	result := mapper.Apply("LegacyButton", Props{"broken": 1, "className": "primary"}, mapping)

	assert.Equal(t, "primary", result["variant"], "fallback must not clobber a resolved prop")
	assert.Equal(t, "medium", result["size"], "fallback fills props nothing resolved")
}

func TestMapperApplyPassesHandlersThrough(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	clicked := false
	onClick := func() { clicked = true }

	mapping := NewMapping("Button").Rename("className", "variant")
	result := mapper.Apply("LegacyButton", Props{"className": "primary", "onClick": onClick}, mapping)

	handler, ok := result["onClick"].(func())
	assert.True(t, ok, "handler prop must pass through untouched")
	handler()
	assert.True(t, clicked)
}

func TestMappingTransformReplacesEarlierEntry(t *testing.T) {
	mapper := NewMapper(logger.NewTest())

	mapping := NewMapping("Badge").
		Rename("color", "tone").
		Transform("color", func(interface{}) (Props, error) {
			return Props{"tone": "overridden"}, nil
		})

	result := mapper.Apply("LegacyBadge", Props{"color": "red"}, mapping)

	assert.Equal(t, Props{"tone": "overridden"}, result)
}
