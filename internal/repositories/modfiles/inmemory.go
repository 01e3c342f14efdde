package modfiles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Destination names used by the in-memory repository
const (
	MemoryRootTemplates = "memory://Merged.lsx"
	MemoryLocalization  = "memory://localization.xml"
	memoryStatsPrefix   = "memory://"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu            sync.RWMutex
	rootTemplates []byte
	localization  []byte
	stats         map[string][]byte
}

// NewInMemory creates a new empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		stats: make(map[string][]byte),
	}
}

// LoadRootTemplates returns the stored object definitions
func (r *InMemoryRepository) LoadRootTemplates(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return loaded(MemoryRootTemplates, r.rootTemplates), nil
}

// LoadLocalization returns the stored localization document
func (r *InMemoryRepository) LoadLocalization(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return loaded(MemoryLocalization, r.localization), nil
}

// SaveRootTemplates replaces the stored object definitions
func (r *InMemoryRepository) SaveRootTemplates(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rootTemplates = clone(input.Data)
	return &SaveOutput{Destination: MemoryRootTemplates, BytesWritten: len(input.Data)}, nil
}

// SaveLocalization replaces the stored localization document
func (r *InMemoryRepository) SaveLocalization(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.localization = clone(input.Data)
	return &SaveOutput{Destination: MemoryLocalization, BytesWritten: len(input.Data)}, nil
}

// AppendStats appends to the stored stats text of a kind
func (r *InMemoryRepository) AppendStats(_ context.Context, input *AppendStatsInput) (*AppendStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Kind == nil {
		return nil, errors.InvalidArgument("kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := input.Kind.StatsFileName()
	r.stats[name] = append(r.stats[name], input.Data...)

	return &AppendStatsOutput{Destination: memoryStatsPrefix + name, BytesWritten: len(input.Data)}, nil
}

// Stats returns a copy of the stats text stored under a file name
func (r *InMemoryRepository) Stats(fileName string) []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clone(r.stats[fileName])
}

func loaded(destination string, data []byte) *LoadOutput {
	if data == nil {
		return &LoadOutput{Destination: destination}
	}
	// Return a copy to prevent external modification
	return &LoadOutput{Data: clone(data), Found: true, Destination: destination}
}

func clone(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
