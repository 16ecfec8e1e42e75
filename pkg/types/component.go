package types

// ComponentUsage is a single occurrence of a UI component in the invoicing
// application, as recorded in a component inventory file.
type ComponentUsage struct {
	Component          string                 `yaml:"component" json:"component"`
	File               string                 `yaml:"file" json:"file"`
	Line               int                    `yaml:"line,omitempty" json:"line,omitempty"`
	Legacy             bool                   `yaml:"legacy" json:"legacy"`
	Props              map[string]interface{} `yaml:"props" json:"props"`
	TestCoverage       float64                `yaml:"test_coverage" json:"test_coverage"`
	AccessibilityScore float64                `yaml:"accessibility_score" json:"accessibility_score"`
}

// Inventory is the parsed contents of one component inventory file.
type Inventory struct {
	App        string           `yaml:"app" json:"app"`
	SourcePath string           `yaml:"-" json:"source_path,omitempty"`
	Components []ComponentUsage `yaml:"components" json:"components"`
}

func (i *Inventory) LegacyUsages() []ComponentUsage {
	var legacy []ComponentUsage
	for _, usage := range i.Components {
		if usage.Legacy {
			legacy = append(legacy, usage)
		}
	}
	return legacy
}

func (i *Inventory) CountByComponent() map[string]int {
	counts := make(map[string]int)
	for _, usage := range i.Components {
		counts[usage.Component]++
	}
	return counts
}
