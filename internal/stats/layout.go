package stats

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// SourceRootTemplate marks the data field filled with the item's map key
const SourceRootTemplate = "root_template"

//go:embed layouts.yaml
var defaultLayouts []byte

// DataField is one `data "<Name>" "<value>"` line of a stat entry
type DataField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
	From  string `yaml:"from,omitempty"`
}

// Layouts maps a kind name to its data fields
type Layouts map[string][]DataField

// DefaultLayouts returns the embedded layouts
func DefaultLayouts() (Layouts, error) {
	return ParseLayouts(defaultLayouts)
}

// LoadLayouts reads layouts from a YAML file, or the embedded defaults
// when path is empty
func LoadLayouts(path string) (Layouts, error) {
	if path == "" {
		return DefaultLayouts()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFSf(err, "failed to read stat layouts %s", path).WithMeta("layouts", path)
	}

	layouts, err := ParseLayouts(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid stat layouts %s", path).WithMeta("layouts", path)
	}
	return layouts, nil
}

// ParseLayouts decodes and validates a layouts document
func ParseLayouts(data []byte) (Layouts, error) {
	var layouts Layouts
	if err := yaml.Unmarshal(data, &layouts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode stat layouts")
	}

	if err := layouts.Validate(); err != nil {
		return nil, err
	}
	return layouts, nil
}

// Validate checks that every kind has a layout with named fields and
// exactly one root template field
func (l Layouts) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, kind := range entities.Kinds() {
		fields, ok := l[kind.Name()]
		if !ok || len(fields) == 0 {
			vb.RequiredField(kind.Name())
			continue
		}

		roots := 0
		for i, f := range fields {
			if f.Name == "" {
				vb.Fieldf(kind.Name(), "field %d has no name", i+1)
			}
			switch f.From {
			case "":
			case SourceRootTemplate:
				roots++
			default:
				vb.Fieldf(kind.Name(), "field %q has unknown source %q", f.Name, f.From)
			}
		}
		if roots != 1 {
			vb.Fieldf(kind.Name(), "needs exactly one field from %s, got %d", SourceRootTemplate, roots)
		}
	}

	return vb.Build()
}
