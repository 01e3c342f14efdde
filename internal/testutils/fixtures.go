// Package testutils provides fixtures shared by package tests
package testutils

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
)

// Example values taken from the values file documentation
const (
	ExampleArmorName     = "Example armor 1"
	ExampleArmorTag      = "GAB_example_armor_01"
	ExampleArmorIcon     = "Item_ARM_Leather_3"
	ExampleArmorParent   = "0985f767-4256-4f15-aabe-364e002f913f"
	ExampleWeaponName    = "Example weapon"
	ExampleWeaponTag     = "GAB_example_weapon_01"
	ExampleWeaponIcon    = "Item_WPN_HUM_HandCrossbow_A_1"
	ExampleWeaponParent  = "d2f396c2-9b1b-4eea-bf21-2f25934f092d"
	ExampleEquipmentType = "87fbc05b-c870-4bc1-fb95-ea56cb3f229e"
	ExamplePhysics       = "b34614de-6a17-d61b-6716-f47324aa1dff"
	ExampleVisual        = "79e935b4-9dca-7fdc-bc55-ba7e846909f9"
)

// ArmorValues returns the field values of the n-th example armor (1-based)
func ArmorValues(n int) map[string]string {
	return map[string]string{
		entities.FieldDisplayName:        fmt.Sprintf("Example armor %d", n),
		entities.FieldDescription:        fmt.Sprintf("This is example armor number %d.", n),
		entities.FieldInternalName:       fmt.Sprintf("GAB_example_armor_%02d", n),
		entities.FieldIcon:               ExampleArmorIcon,
		entities.FieldParentTemplateUUID: ExampleArmorParent,
	}
}

// WeaponValues returns the field values of the n-th example weapon (1-based)
func WeaponValues(n int) map[string]string {
	name := ExampleWeaponName
	if n > 1 {
		name = fmt.Sprintf("Example weapon %d", n)
	}
	return map[string]string{
		entities.FieldDisplayName:        name,
		entities.FieldDescription:        "This is indeed an example weapon.",
		entities.FieldInternalName:       fmt.Sprintf("GAB_example_weapon_%02d", n),
		entities.FieldIcon:               ExampleWeaponIcon,
		entities.FieldParentTemplateUUID: ExampleWeaponParent,
		entities.FieldEquipmentTypeUUID:  ExampleEquipmentType,
		entities.FieldPhysicsTemplate:    ExamplePhysics,
		entities.FieldVisualTemplate:     ExampleVisual,
	}
}

// ExampleArmorRecord is the single armor record used in documentation
func ExampleArmorRecord() *entities.Record {
	values := ArmorValues(1)
	values[entities.FieldDescription] = "desc"
	return &entities.Record{Index: 1, Line: 1, Values: values}
}

// ExampleWeaponRecord is the single weapon record used in documentation
func ExampleWeaponRecord() *entities.Record {
	return &entities.Record{Index: 1, Line: 1, Values: WeaponValues(1)}
}

// Records builds n records of a kind from the example values
func Records(kind entities.Kind, n int) []*entities.Record {
	records := make([]*entities.Record, n)
	for i := range records {
		records[i] = &entities.Record{
			Index:  i + 1,
			Line:   i*entities.BlockSize(kind) + 1,
			Values: valuesFor(kind, i+1),
		}
	}
	return records
}

// ValuesText renders n example records of a kind in the values file format
func ValuesText(kind entities.Kind, n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		values := valuesFor(kind, i)
		for _, f := range kind.Fields() {
			b.WriteString(f.Label + ":\n")
			b.WriteString(values[f.Label] + "\n")
		}
	}
	return b.String()
}

func valuesFor(kind entities.Kind, n int) map[string]string {
	if kind == entities.Weapon {
		return WeaponValues(n)
	}
	return ArmorValues(n)
}
