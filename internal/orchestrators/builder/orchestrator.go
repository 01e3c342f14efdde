// Package builder turns parsed item records into object definitions,
// localization entries and stat entries for a mod
package builder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/localization"
	"github.com/KirkDiggler/bg3-item-builder/internal/lsx"
	"github.com/KirkDiggler/bg3-item-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/bg3-item-builder/internal/repositories/modfiles"
	"github.com/KirkDiggler/bg3-item-builder/internal/stats"
)

// Service defines the item builder operations
type Service interface {
	// Generate builds every record and writes the results
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the builder orchestrator
type Config struct {
	Repository      modfiles.Repository
	HandleGenerator idgen.Generator
	KeyGenerator    idgen.Generator
	Instantiator    *lsx.Instantiator
	Formatter       *stats.Formatter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.HandleGenerator == nil {
		vb.RequiredField("HandleGenerator")
	}
	if c.KeyGenerator == nil {
		vb.RequiredField("KeyGenerator")
	}
	if c.Instantiator == nil {
		vb.RequiredField("Instantiator")
	}
	if c.Formatter == nil {
		vb.RequiredField("Formatter")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         modfiles.Repository
	handleGen    idgen.Generator
	keyGen       idgen.Generator
	instantiator *lsx.Instantiator
	formatter    *stats.Formatter
}

// NewOrchestrator creates a new builder orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:         cfg.Repository,
		handleGen:    cfg.HandleGenerator,
		keyGen:       cfg.KeyGenerator,
		instantiator: cfg.Instantiator,
		formatter:    cfg.Formatter,
	}, nil
}

// batch accumulates the in-memory outputs of one Generate call
type batch struct {
	rootTemplates *lsx.RootTemplates
	localization  *localization.Document
	stats         strings.Builder
	items         []*entities.GeneratedItem
}

// Generate builds every record in memory, then writes object definitions,
// localization and stats in that order. Nothing is written if any record
// fails.
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Kind == nil {
		vb.RequiredField("kind")
	}
	if len(input.Records) == 0 {
		vb.Field("records", "at least one record is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slog.Info("Item generation requested",
		"kind", input.Kind.Name(),
		"records", len(input.Records),
		"dry_run", input.DryRun,
	)

	b, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range input.Records {
		if rec == nil {
			return nil, errors.InvalidArgument("record is nil")
		}
		if err := o.build(b, input.Kind, rec); err != nil {
			return nil, err
		}
	}

	output, err := render(b)
	if err != nil {
		return nil, err
	}

	if input.DryRun {
		slog.Info("Dry run, nothing written", "items", len(b.items))
		return output, nil
	}

	if err := o.write(ctx, input.Kind, output); err != nil {
		return nil, err
	}

	slog.Info("Items generated",
		"kind", input.Kind.Name(),
		"items", len(b.items),
	)

	return output, nil
}

func (o *orchestrator) load(ctx context.Context) (*batch, error) {
	b := &batch{}

	rt, err := o.repo.LoadRootTemplates(ctx, &modfiles.LoadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load object definitions")
	}
	if rt.Found {
		b.rootTemplates, err = lsx.ParseRootTemplates(rt.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", rt.Destination).WithMeta("destination", rt.Destination)
		}
	} else {
		slog.Info("Starting new object definitions", "destination", rt.Destination)
		b.rootTemplates = lsx.NewRootTemplates()
	}

	loc, err := o.repo.LoadLocalization(ctx, &modfiles.LoadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load localization")
	}
	if loc.Found {
		b.localization, err = localization.Parse(loc.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", loc.Destination).WithMeta("destination", loc.Destination)
		}
	} else {
		slog.Info("Starting new localization", "destination", loc.Destination)
		b.localization = localization.New()
	}

	return b, nil
}

func (o *orchestrator) build(b *batch, kind entities.Kind, rec *entities.Record) error {
	ids := entities.Identifiers{
		DisplayNameHandle: o.handleGen.Generate(),
		DescriptionHandle: o.handleGen.Generate(),
		MapKey:            o.keyGen.Generate(),
	}

	node, err := o.instantiator.Instantiate(kind, rec, ids)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s", rec.DisplayTag())
	}

	entry, err := o.formatter.Format(kind, rec, ids)
	if err != nil {
		return errors.Wrapf(err, "failed to format stats for %s", rec.DisplayTag())
	}

	b.rootTemplates.Append(node)
	b.stats.WriteString(entry)
	b.localization.Append(ids.DisplayNameHandle, rec.DisplayName())
	b.localization.Append(ids.DescriptionHandle, rec.Description())
	b.items = append(b.items, &entities.GeneratedItem{Record: rec, Identifiers: ids})

	slog.Debug("Item built",
		"record", rec.Index,
		"internal_name", rec.InternalName(),
		"map_key", ids.MapKey,
	)

	return nil
}

func render(b *batch) (*GenerateOutput, error) {
	rootTemplates, err := b.rootTemplates.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render object definitions")
	}

	loc, err := b.localization.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render localization")
	}

	return &GenerateOutput{
		Items:         b.items,
		RootTemplates: rootTemplates,
		Localization:  loc,
		Stats:         []byte(b.stats.String()),
	}, nil
}

func (o *orchestrator) write(ctx context.Context, kind entities.Kind, output *GenerateOutput) error {
	rt, err := o.repo.SaveRootTemplates(ctx, &modfiles.SaveInput{Data: output.RootTemplates})
	if err != nil {
		return errors.Wrap(err, "failed to write object definitions")
	}
	output.Written = append(output.Written, &Destination{Name: rt.Destination, Bytes: rt.BytesWritten})

	loc, err := o.repo.SaveLocalization(ctx, &modfiles.SaveInput{Data: output.Localization})
	if err != nil {
		return errors.Wrap(err, "failed to write localization")
	}
	output.Written = append(output.Written, &Destination{Name: loc.Destination, Bytes: loc.BytesWritten})

	st, err := o.repo.AppendStats(ctx, &modfiles.AppendStatsInput{Kind: kind, Data: output.Stats})
	if err != nil {
		return errors.Wrap(err, "failed to append stats")
	}
	output.Written = append(output.Written, &Destination{Name: st.Destination, Bytes: st.BytesWritten})

	return nil
}
