package showcase

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Country is an option of the country select.
type Country struct {
	Code string `yaml:"code" validate:"required,len=2,uppercase"`
	Name string `yaml:"name" validate:"required"`
}

// Plan is an option of the plan select.
type Plan struct {
	ID    string `yaml:"id" validate:"required,oneof=free pro team"`
	Name  string `yaml:"name" validate:"required"`
	Price int    `yaml:"price" validate:"gte=0"`
}

// Label is the text shown for the plan in the select.
func (p Plan) Label() string {
	if p.Price == 0 {
		return p.Name
	}
	return fmt.Sprintf("%s ($%d/mo)", p.Name, p.Price)
}

// Catalog holds the option lists offered by the showcase form.
type Catalog struct {
	Countries []Country `yaml:"countries" validate:"required,min=1,dive"`
	Plans     []Plan    `yaml:"plans" validate:"required,min=1,dive"`
}

// DefaultCatalog parses the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validatorInstance().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Plan returns the plan with the given id.
func (c *Catalog) Plan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
