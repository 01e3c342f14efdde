package builder

import (
	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
)

// GenerateInput defines one batch of records of a single kind
type GenerateInput struct {
	Kind    entities.Kind
	Records []*entities.Record
	// DryRun renders the outputs without writing anything
	DryRun bool
}

// GenerateOutput describes what a batch produced
type GenerateOutput struct {
	Items []*entities.GeneratedItem

	// Written lists destinations in write order; empty on a dry run
	Written []*Destination

	// Rendered documents, always filled
	RootTemplates []byte
	Localization  []byte
	Stats         []byte
}

// Destination reports one written file
type Destination struct {
	Name  string
	Bytes int
}
