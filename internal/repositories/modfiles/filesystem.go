package modfiles

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/bg3-item-builder/internal/config"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// FilesystemConfig holds the destination paths of one mod
type FilesystemConfig struct {
	Paths config.Paths
}

// Validate ensures all destinations are set
func (c *FilesystemConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("paths.root_templates", c.Paths.RootTemplates, vb)
	errors.ValidateRequired("paths.localization", c.Paths.Localization, vb)
	errors.ValidateRequired("paths.stats_dir", c.Paths.StatsDir, vb)
	return vb.Build()
}

// FilesystemRepository implements Repository on the local disk. It never
// creates directories.
type FilesystemRepository struct {
	paths config.Paths
}

// NewFilesystem creates a repository for the given mod paths
func NewFilesystem(cfg *FilesystemConfig) (*FilesystemRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid filesystem repository config")
	}

	return &FilesystemRepository{paths: cfg.Paths}, nil
}

// LoadRootTemplates reads Merged.lsx
func (r *FilesystemRepository) LoadRootTemplates(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return load(r.paths.RootTemplates)
}

// LoadLocalization reads the language XML
func (r *FilesystemRepository) LoadLocalization(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return load(r.paths.Localization)
}

// SaveRootTemplates overwrites Merged.lsx
func (r *FilesystemRepository) SaveRootTemplates(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return save(r.paths.RootTemplates, input.Data)
}

// SaveLocalization overwrites the language XML
func (r *FilesystemRepository) SaveLocalization(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return save(r.paths.Localization, input.Data)
}

// AppendStats appends to Weapon.txt or Armor.txt, creating the file when
// it does not exist
func (r *FilesystemRepository) AppendStats(_ context.Context, input *AppendStatsInput) (*AppendStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Kind == nil {
		return nil, errors.InvalidArgument("kind is required")
	}

	path := r.paths.Stats(input.Kind)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.WrapFSf(err, "failed to open %s", path).WithMeta("destination", path)
	}

	n, err := f.Write(input.Data)
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapFSf(err, "failed to append to %s", path).WithMeta("destination", path)
	}
	if err := f.Close(); err != nil {
		return nil, errors.WrapFSf(err, "failed to close %s", path).WithMeta("destination", path)
	}

	slog.Debug("stats appended", "destination", path, "bytes", n)

	return &AppendStatsOutput{Destination: path, BytesWritten: n}, nil
}

func load(path string) (*LoadOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("destination missing, starting empty", "destination", path)
			return &LoadOutput{Destination: path}, nil
		}
		return nil, errors.WrapFSf(err, "failed to read %s", path).WithMeta("destination", path)
	}

	return &LoadOutput{Data: data, Found: true, Destination: path}, nil
}

func save(path string, data []byte) (*SaveOutput, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, errors.WrapFSf(err, "failed to write %s", path).WithMeta("destination", path)
	}

	slog.Debug("document saved", "destination", path, "bytes", len(data))

	return &SaveOutput{Destination: path, BytesWritten: len(data)}, nil
}
