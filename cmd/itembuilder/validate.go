package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bg3-item-builder/internal/records"
)

type validateOptions struct {
	kind   string
	values string
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a values file without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Item kind: weapon or armor (required)")
	cmd.Flags().StringVar(&opts.values, "values", "", "Values file (default weapon_values.txt or armor_values.txt)")
	_ = cmd.MarkFlagRequired("kind") // nolint:errcheck // safe to ignore in constructor

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootOptions, opts *validateOptions) error {
	if _, err := loadConfig(cmd, root); err != nil {
		return err
	}

	kind, err := kindFlag(opts.kind)
	if err != nil {
		return err
	}

	path := valuesPath(opts.values, kind)
	recs, err := records.NewParser().ParseFile(path, kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d %s record(s)\n", path, len(recs), kind.Name())
	for _, rec := range recs {
		fmt.Fprintf(out, "  %d. %s (%s)\n", rec.Index, rec.DisplayName(), rec.InternalName())
	}

	return nil
}
