// Package propmap translates the props of a legacy UI component into the
// props of its replacement using a declarative per-component mapping table.
// It is the runtime half of the incremental migration: call sites keep
// passing legacy props and the mapper produces what the new component needs.
package propmap

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/internal/logger"
)

// Props is one component usage's resolved props.
type Props map[string]interface{}

// MapFn converts a single legacy prop value into a partial set of new props.
type MapFn func(value interface{}) (Props, error)

type entry struct {
	legacy string
	fn     MapFn
}

// Mapping is the declarative table for one legacy/replacement component
// pair. Entries are applied in declaration order, which is the documented
// tie-breaker when two legacy props map onto the same target prop:
// the later declaration wins.
type Mapping struct {
	target   string
	entries  []entry
	index    map[string]int
	fallback Props
}

func NewMapping(target string) *Mapping {
	return &Mapping{
		target: target,
		index:  make(map[string]int),
	}
}

func (m *Mapping) Target() string {
	return m.target
}

// Rename maps a legacy prop name to a new prop name, value unchanged.
func (m *Mapping) Rename(legacy, target string) *Mapping {
	return m.Transform(legacy, func(value interface{}) (Props, error) {
		return Props{target: value}, nil
	})
}

// Transform registers a conversion function for a legacy prop. Declaring the
// same legacy prop twice replaces the earlier entry in place.
func (m *Mapping) Transform(legacy string, fn MapFn) *Mapping {
	if i, exists := m.index[legacy]; exists {
		m.entries[i].fn = fn
		return m
	}
	m.index[legacy] = len(m.entries)
	m.entries = append(m.entries, entry{legacy: legacy, fn: fn})
	return m
}

// Drop removes a legacy prop without a replacement.
func (m *Mapping) Drop(legacy string) *Mapping {
	return m.Transform(legacy, func(interface{}) (Props, error) {
		return Props{}, nil
	})
}

// Fallback sets the props merged in when any mapping function fails, so the
// replacement component still renders with a sane default variant.
func (m *Mapping) Fallback(props Props) *Mapping {
	m.fallback = props
	return m
}

func (m *Mapping) Has(legacy string) bool {
	_, exists := m.index[legacy]
	return exists
}

// Mapper applies mappings and reports mapping failures without ever failing
// the caller's render.
type Mapper struct {
	logger *logger.Logger
}

func NewMapper(log *logger.Logger) *Mapper {
	return &Mapper{logger: log}
}

// Apply produces the replacement component's props from legacy props.
//
// Legacy props without a mapping entry pass through unchanged. Mapped
// entries run afterwards in declaration order, so a mapped result overwrites
// a passthrough prop of the same name and a later declaration overwrites an
// earlier one. A mapping function error or panic is logged with the
// component and prop name, the offending prop is dropped, the mapping's
// fallback props fill any still-missing keys, and the remaining props keep
// being processed. Apply never returns an error.
func (mp *Mapper) Apply(component string, legacy Props, m *Mapping) Props {
	result := make(Props, len(legacy))

	for name, value := range legacy {
		if m == nil || !m.Has(name) {
			result[name] = value
		}
	}

	if m == nil {
		return result
	}

	failed := false
	for _, e := range m.entries {
		value, present := legacy[e.legacy]
		if !present {
			continue
		}

		mapped, err := mp.invoke(e, value)
		if err != nil {
			failed = true
			mp.logger.Error("mapping_fn_failed").
				Str("component", component).
				Str("prop", e.legacy).
				Err(err).
				Send()
			continue
		}

		for key, mappedValue := range mapped {
			result[key] = mappedValue
		}
	}

	if failed && len(m.fallback) > 0 {
		for key, fallbackValue := range m.fallback {
			if _, exists := result[key]; !exists {
				result[key] = fallbackValue
			}
		}
		mp.logger.Debug("mapping_fallback_applied").
			Str("component", component).
			Send()
	}

	return result
}

func (mp *Mapper) invoke(e entry, value interface{}) (mapped Props, err error) {
	defer func() {
		if r := recover(); r != nil {
			mapped = nil
			err = fmt.Errorf("panika w funkcji mapującej propa %q: %v", e.legacy, r)
		}
	}()
	return e.fn(value)
}
