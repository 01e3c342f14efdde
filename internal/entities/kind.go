package entities

import (
	"strings"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Root template attribute ids
const (
	AttrDescription      = "Description"
	AttrDisplayName      = "DisplayName"
	AttrMapKey           = "MapKey"
	AttrName             = "Name"
	AttrStats            = "Stats"
	AttrIcon             = "Icon"
	AttrParentTemplateID = "ParentTemplateId"
	AttrEquipmentTypeID  = "EquipmentTypeID"
	AttrPhysicsTemplate  = "PhysicsTemplate"
	AttrVisualTemplate   = "VisualTemplate"
)

// Attribute properties a binding can set
const (
	PropertyValue  = "value"
	PropertyHandle = "handle"
)

// Binding sets one property of one root template attribute
type Binding struct {
	Attribute string
	Property  string
	Value     string
}

// Kind is an item category the builder can generate. Parsing, identifier
// generation and localization are shared; each kind owns its field set,
// attribute bindings and stats shape.
type Kind interface {
	// Name is the lower-case kind name used in flags and layouts
	Name() string
	// StatType is the type written into stat entries
	StatType() string
	// Fields lists the record fields in input order
	Fields() []Field
	// Bindings maps a record and its identifiers onto template attributes
	Bindings(rec *Record, ids Identifiers) ([]Binding, error)
	// TemplateName is the file name of the base root template
	TemplateName() string
	// StatsFileName is the file stat entries are appended to
	StatsFileName() string
	// ValuesFileName is the default input file for this kind
	ValuesFileName() string
}

// Kinds supported by the builder
var (
	Weapon Kind = weaponKind{}
	Armor  Kind = armorKind{}
)

// BlockSize is the number of input lines making up one record
func BlockSize(k Kind) int {
	return 2 * len(k.Fields())
}

// Kinds returns every supported kind
func Kinds() []Kind {
	return []Kind{Weapon, Armor}
}

// ParseKind resolves a kind by name; "w" and "a" are accepted as shorthands
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "w", "weapon", "weapons":
		return Weapon, nil
	case "a", "armor", "armour":
		return Armor, nil
	}
	return nil, errors.InvalidArgumentf("unknown item kind %q (expected weapon or armor)", name).
		WithMeta("kind", name)
}

var commonFields = []Field{
	{Label: FieldDisplayName, Rule: "required"},
	{Label: FieldDescription, Rule: "required"},
	{Label: FieldInternalName, Rule: "required"},
	{Label: FieldIcon, Rule: "required"},
	{Label: FieldParentTemplateUUID, Rule: "required,uuid"},
}

// commonBindings are written for every kind
func commonBindings(rec *Record, ids Identifiers) ([]Binding, error) {
	internalName, err := rec.Require(FieldInternalName)
	if err != nil {
		return nil, err
	}
	icon, err := rec.Require(FieldIcon)
	if err != nil {
		return nil, err
	}
	parent, err := rec.Require(FieldParentTemplateUUID)
	if err != nil {
		return nil, err
	}

	return []Binding{
		{Attribute: AttrDescription, Property: PropertyHandle, Value: ids.DescriptionHandle},
		{Attribute: AttrDisplayName, Property: PropertyHandle, Value: ids.DisplayNameHandle},
		{Attribute: AttrMapKey, Property: PropertyValue, Value: ids.MapKey},
		{Attribute: AttrName, Property: PropertyValue, Value: internalName},
		{Attribute: AttrStats, Property: PropertyValue, Value: internalName},
		{Attribute: AttrIcon, Property: PropertyValue, Value: icon},
		{Attribute: AttrParentTemplateID, Property: PropertyValue, Value: parent},
	}, nil
}

type weaponKind struct{}

func (weaponKind) Name() string           { return "weapon" }
func (weaponKind) StatType() string       { return "Weapon" }
func (weaponKind) TemplateName() string   { return "WeaponTemplate.lsx" }
func (weaponKind) StatsFileName() string  { return "Weapon.txt" }
func (weaponKind) ValuesFileName() string { return "weapon_values.txt" }

func (weaponKind) Fields() []Field {
	fields := make([]Field, 0, len(commonFields)+3)
	fields = append(fields, commonFields...)
	return append(fields,
		Field{Label: FieldEquipmentTypeUUID, Rule: "required,uuid"},
		Field{Label: FieldPhysicsTemplate, Rule: "required,uuid"},
		Field{Label: FieldVisualTemplate, Rule: "required,uuid"},
	)
}

func (weaponKind) Bindings(rec *Record, ids Identifiers) ([]Binding, error) {
	bindings, err := commonBindings(rec, ids)
	if err != nil {
		return nil, err
	}

	for _, b := range []struct{ attr, field string }{
		{AttrEquipmentTypeID, FieldEquipmentTypeUUID},
		{AttrPhysicsTemplate, FieldPhysicsTemplate},
		{AttrVisualTemplate, FieldVisualTemplate},
	} {
		v, err := rec.Require(b.field)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Attribute: b.attr, Property: PropertyValue, Value: v})
	}

	return bindings, nil
}

type armorKind struct{}

func (armorKind) Name() string           { return "armor" }
func (armorKind) StatType() string       { return "Armor" }
func (armorKind) TemplateName() string   { return "ArmorTemplate.lsx" }
func (armorKind) StatsFileName() string  { return "Armor.txt" }
func (armorKind) ValuesFileName() string { return "armor_values.txt" }

func (armorKind) Fields() []Field {
	fields := make([]Field, len(commonFields))
	copy(fields, commonFields)
	return fields
}

func (armorKind) Bindings(rec *Record, ids Identifiers) ([]Binding, error) {
	return commonBindings(rec, ids)
}
