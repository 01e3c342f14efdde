// Package config loads item builder settings from the environment, an
// optional .env file and command line flags
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Config holds all configurable paths and settings
type Config struct {
	// WorkDir contains the mod working folders
	WorkDir  string `env:"ITEMBUILDER_WORKDIR" envDefault:"."`
	Language string `env:"ITEMBUILDER_LANGUAGE" envDefault:"English"`

	// Template and layout overrides; empty means embedded defaults
	WeaponTemplate string `env:"ITEMBUILDER_WEAPON_TEMPLATE"`
	ArmorTemplate  string `env:"ITEMBUILDER_ARMOR_TEMPLATE"`
	StatLayouts    string `env:"ITEMBUILDER_STAT_LAYOUTS"`

	LogLevel string `env:"ITEMBUILDER_LOG_LEVEL" envDefault:"info"`
}

// Flags holds CLI flag values that override environment settings
type Flags struct {
	WorkDir  string
	Language string
	LogLevel string
}

// Load reads envFile (or .env in the current directory when envFile is
// empty) and parses ITEMBUILDER_* variables. A missing default .env is not
// an error; a missing explicit envFile is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.WrapFSf(err, "failed to load env file %s", envFile).WithMeta("env_file", envFile)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Resolve applies non-empty flags over the loaded values
func (c *Config) Resolve(flags Flags) {
	if flags.WorkDir != "" {
		c.WorkDir = flags.WorkDir
	}
	if flags.Language != "" {
		c.Language = flags.Language
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// Validate checks the resolved configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("workdir", c.WorkDir, vb)
	errors.ValidateRequired("language", c.Language, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	return vb.Build()
}

// SlogLevel converts LogLevel for the slog handler
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TemplatePath returns the base template override for a kind
func (c *Config) TemplatePath(kind entities.Kind) string {
	if kind == entities.Weapon {
		return c.WeaponTemplate
	}
	return c.ArmorTemplate
}

// Paths are the destination files of one mod working folder
type Paths struct {
	ModRoot       string
	RootTemplates string
	Localization  string
	StatsDir      string
}

// Paths resolves the destination layout for a working folder:
//
//	<workdir>/<folder>/Public/<folder>/RootTemplates/Merged.lsx
//	<workdir>/<folder>/Localization/<language>/<folder>.xml
//	<workdir>/<folder>/Public/<folder>/Stats/Generated/Data/
func (c *Config) Paths(folder string) Paths {
	root := filepath.Join(c.WorkDir, folder)
	public := filepath.Join(root, "Public", folder)

	return Paths{
		ModRoot:       root,
		RootTemplates: filepath.Join(public, "RootTemplates", "Merged.lsx"),
		Localization:  filepath.Join(root, "Localization", c.Language, folder+".xml"),
		StatsDir:      filepath.Join(public, "Stats", "Generated", "Data"),
	}
}

// Stats returns the stats file a kind appends to
func (p Paths) Stats(kind entities.Kind) string {
	return filepath.Join(p.StatsDir, kind.StatsFileName())
}

// CheckModRoot reports NotFound when the working folder does not exist
func (p Paths) CheckModRoot() error {
	info, err := os.Stat(p.ModRoot)
	if err != nil {
		return errors.WrapFSf(err, "working folder %s does not exist", p.ModRoot).WithMeta("folder", p.ModRoot)
	}
	if !info.IsDir() {
		return errors.FailedPreconditionf("%s is not a directory", p.ModRoot).WithMeta("folder", p.ModRoot)
	}
	return nil
}
