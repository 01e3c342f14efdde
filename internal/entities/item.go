package entities

import (
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Record field labels as they appear in the values files
const (
	FieldDisplayName        = "Display name"
	FieldDescription        = "Description"
	FieldInternalName       = "Internal name tag"
	FieldIcon               = "Icon tag"
	FieldParentTemplateUUID = "Parent template UUID"
	FieldEquipmentTypeUUID  = "Equipment type UUID"
	FieldPhysicsTemplate    = "Physics template UUID"
	FieldVisualTemplate     = "Visual template UUID"
)

// Field describes one labelled value in an item record
type Field struct {
	Label string
	// Rule is a go-playground/validator tag applied to the value
	Rule string
}

// Record is one parsed item: field label to value
type Record struct {
	// Index is the 1-based position of the record in its source
	Index int
	// Line is the 1-based input line the record starts on
	Line   int
	Values map[string]string
}

// Get returns the value for a label, or "" if absent
func (r *Record) Get(label string) string {
	return r.Values[label]
}

// Require returns the value for a label or an InvalidArgument error
// identifying the record
func (r *Record) Require(label string) (string, error) {
	if v := r.Values[label]; v != "" {
		return v, nil
	}
	return "", errors.InvalidArgumentf("record %d (%s) is missing %q", r.Index, r.DisplayTag(), label).
		WithMeta("record", r.Index).
		WithMeta("internal_name", r.Get(FieldInternalName)).
		WithMeta("field", label)
}

// DisplayName is the in-game name of the item
func (r *Record) DisplayName() string { return r.Get(FieldDisplayName) }

// Description is the in-game description of the item
func (r *Record) Description() string { return r.Get(FieldDescription) }

// InternalName is the stats entry name used to reference the item
func (r *Record) InternalName() string { return r.Get(FieldInternalName) }

// DisplayTag identifies the record in messages
func (r *Record) DisplayTag() string {
	if name := r.InternalName(); name != "" {
		return name
	}
	if name := r.DisplayName(); name != "" {
		return name
	}
	return "unnamed"
}

// Identifiers are the fresh IDs generated for one item
type Identifiers struct {
	DisplayNameHandle string
	DescriptionHandle string
	MapKey            string
}

// GeneratedItem pairs a record with the identifiers it was written under
type GeneratedItem struct {
	Record      *Record
	Identifiers Identifiers
}
