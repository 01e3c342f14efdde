// Package stats renders stat entries for generated items.
//
// Every entry follows the game's stats text format:
//
//	new entry "GAB_example_armor_01"
//	type "Armor"
//	using ""
//	data "RootTemplate" "0b7d2f44-3f0e-4d6c-9a55-2a1b7c7e9f10"
//	data "ArmorClass" ""
//	...
//
// Only the root template is filled in; the rest is left for balancing by
// hand.
package stats

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Formatter renders stat entries from layouts
type Formatter struct {
	layouts Layouts
}

// NewFormatter creates a formatter. The layouts must pass Validate.
func NewFormatter(layouts Layouts) (*Formatter, error) {
	if err := layouts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid stat layouts")
	}
	return &Formatter{layouts: layouts}, nil
}

// NewDefaultFormatter uses the embedded layouts
func NewDefaultFormatter() (*Formatter, error) {
	layouts, err := DefaultLayouts()
	if err != nil {
		return nil, err
	}
	return NewFormatter(layouts)
}

// Format renders one entry followed by a blank line
func (f *Formatter) Format(kind entities.Kind, rec *entities.Record, ids entities.Identifiers) (string, error) {
	name, err := rec.Require(entities.FieldInternalName)
	if err != nil {
		return "", err
	}

	fields, ok := f.layouts[kind.Name()]
	if !ok {
		return "", errors.FailedPreconditionf("no stat layout for %s", kind.Name()).WithMeta("kind", kind.Name())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "new entry \"%s\"\n", name)
	fmt.Fprintf(&b, "type \"%s\"\n", kind.StatType())
	b.WriteString("using \"\"\n")
	for _, field := range fields {
		value := field.Value
		if field.From == SourceRootTemplate {
			value = ids.MapKey
		}
		fmt.Fprintf(&b, "data \"%s\" \"%s\"\n", field.Name, value)
	}
	b.WriteString("\n")

	return b.String(), nil
}
