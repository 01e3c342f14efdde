package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bg3-item-builder/internal/config"
	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/lsx"
	"github.com/KirkDiggler/bg3-item-builder/internal/stats"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	envFile string
	flags   config.Flags
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "itembuilder",
		Short: "Generate Baldur's Gate 3 mod items",
		Long: `itembuilder turns a values file of weapon or armor records into root
templates, localization entries and stat entries inside a mod working folder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.flags.WorkDir, "workdir", "", "Directory holding the mod working folders (default from ITEMBUILDER_WORKDIR or .)")
	cmd.PersistentFlags().StringVar(&opts.flags.Language, "language", "", "Localization language folder (default English)")
	cmd.PersistentFlags().StringVar(&opts.flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Env file to load instead of ./.env")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))

	return cmd
}

// loadConfig resolves env, env file and flags, then installs the logger
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	cfg.Resolve(opts.flags)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))

	return cfg, nil
}

// kindFlag parses the --kind value
func kindFlag(value string) (entities.Kind, error) {
	if value == "" {
		return nil, errors.InvalidArgument("--kind is required (weapon or armor)")
	}
	return entities.ParseKind(value)
}

// valuesPath defaults to the kind's values file in the current directory
func valuesPath(value string, kind entities.Kind) string {
	if value != "" {
		return value
	}
	return kind.ValuesFileName()
}

func newInstantiator(cfg *config.Config) (*lsx.Instantiator, error) {
	bases := make(map[string][]byte)
	for _, kind := range entities.Kinds() {
		var (
			data []byte
			err  error
		)
		if path := cfg.TemplatePath(kind); path != "" {
			slog.Debug("Using base template override", "kind", kind.Name(), "path", path)
			data, err = lsx.LoadBase(kind, path)
		} else {
			data, err = lsx.DefaultBase(kind)
		}
		if err != nil {
			return nil, err
		}
		bases[kind.Name()] = data
	}

	return lsx.NewInstantiator(&lsx.InstantiatorConfig{Bases: bases})
}

func newFormatter(cfg *config.Config) (*stats.Formatter, error) {
	if cfg.StatLayouts == "" {
		return stats.NewDefaultFormatter()
	}

	slog.Debug("Using stat layouts", "path", cfg.StatLayouts)
	layouts, err := stats.LoadLayouts(cfg.StatLayouts)
	if err != nil {
		return nil, err
	}
	return stats.NewFormatter(layouts)
}
