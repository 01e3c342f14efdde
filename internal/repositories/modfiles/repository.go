// Package modfiles reads and writes the three files a batch produces
// inside a mod working folder.
package modfiles

//go:generate mockgen -destination=mock/mock_repository.go -package=modfilesmock github.com/KirkDiggler/bg3-item-builder/internal/repositories/modfiles Repository

import (
	"context"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
)

// Repository defines access to the object definition document, the
// localization document and the stats files of one mod
type Repository interface {
	// LoadRootTemplates reads Merged.lsx
	LoadRootTemplates(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// LoadLocalization reads the language XML
	LoadLocalization(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// SaveRootTemplates overwrites Merged.lsx
	SaveRootTemplates(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// SaveLocalization overwrites the language XML
	SaveLocalization(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// AppendStats appends text to the stats file of a kind
	AppendStats(ctx context.Context, input *AppendStatsInput) (*AppendStatsOutput, error)
}

// LoadInput is empty; a repository is bound to one mod
type LoadInput struct{}

// LoadOutput holds the current document contents. Found is false when the
// file does not exist yet and Data is then nil.
type LoadOutput struct {
	Data        []byte
	Found       bool
	Destination string
}

// SaveInput holds the serialized document
type SaveInput struct {
	Data []byte
}

// SaveOutput reports where the document was written
type SaveOutput struct {
	Destination  string
	BytesWritten int
}

// AppendStatsInput holds the stat blocks to append
type AppendStatsInput struct {
	Kind entities.Kind
	Data []byte
}

// AppendStatsOutput reports where the stat blocks were appended
type AppendStatsOutput struct {
	Destination  string
	BytesWritten int
}
