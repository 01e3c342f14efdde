package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bg3-item-builder/internal/config"
	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/bg3-item-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/bg3-item-builder/internal/records"
	"github.com/KirkDiggler/bg3-item-builder/internal/repositories/modfiles"
)

type generateOptions struct {
	kind   string
	values string
	dryRun bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <folder>",
		Short: "Generate items into a mod working folder",
		Long: `Generate parses the values file and appends one root template node, two
localization entries and one stat entry per record to the mod working folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Item kind: weapon or armor (required)")
	cmd.Flags().StringVar(&opts.values, "values", "", "Values file (default weapon_values.txt or armor_values.txt)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the rendered outputs instead of writing them")
	_ = cmd.MarkFlagRequired("kind") // nolint:errcheck // safe to ignore in constructor

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, folder string) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	kind, err := kindFlag(opts.kind)
	if err != nil {
		return err
	}

	paths := cfg.Paths(folder)
	if err := paths.CheckModRoot(); err != nil {
		return err
	}

	recs, err := records.NewParser().ParseFile(valuesPath(opts.values, kind), kind)
	if err != nil {
		return err
	}

	svc, err := newBuilder(cfg, paths)
	if err != nil {
		return err
	}

	output, err := svc.Generate(cmd.Context(), &builder.GenerateInput{
		Kind:    kind,
		Records: recs,
		DryRun:  opts.dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		printRendered(out, paths, kind, output)
		return nil
	}

	for _, dest := range output.Written {
		fmt.Fprintf(out, "Updated %s (%d bytes)\n", dest.Name, dest.Bytes)
	}
	fmt.Fprintf(out, "Generated %d %s item(s) in %s\n", len(output.Items), kind.Name(), folder)

	return nil
}

func newBuilder(cfg *config.Config, paths config.Paths) (builder.Service, error) {
	repo, err := modfiles.NewFilesystem(&modfiles.FilesystemConfig{Paths: paths})
	if err != nil {
		return nil, err
	}

	instantiator, err := newInstantiator(cfg)
	if err != nil {
		return nil, err
	}

	formatter, err := newFormatter(cfg)
	if err != nil {
		return nil, err
	}

	return builder.NewOrchestrator(&builder.Config{
		Repository:      repo,
		HandleGenerator: idgen.NewHandle(),
		KeyGenerator:    idgen.NewUUID(),
		Instantiator:    instantiator,
		Formatter:       formatter,
	})
}

func printRendered(w io.Writer, paths config.Paths, kind entities.Kind, output *builder.GenerateOutput) {
	fmt.Fprintf(w, "==> %s <==\n%s\n", paths.RootTemplates, output.RootTemplates)
	fmt.Fprintf(w, "==> %s <==\n%s\n", paths.Localization, output.Localization)
	fmt.Fprintf(w, "==> %s (appended) <==\n%s", paths.Stats(kind), output.Stats)
}
