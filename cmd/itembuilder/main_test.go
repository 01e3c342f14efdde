package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bg3-item-builder/internal/config"
	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/localization"
	"github.com/KirkDiggler/bg3-item-builder/internal/lsx"
	"github.com/KirkDiggler/bg3-item-builder/internal/testutils"
)

type CommandTestSuite struct {
	suite.Suite
	workDir string
	paths   config.Paths
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.workDir = s.T().TempDir()
	prevDir, err := os.Getwd()
	s.Require().NoError(err)
	s.Require().NoError(os.Chdir(s.workDir))
	s.T().Cleanup(func() { _ = os.Chdir(prevDir) })

	cfg := &config.Config{WorkDir: s.workDir, Language: "English"}
	s.paths = cfg.Paths("GAB")
	for _, dir := range []string{
		filepath.Dir(s.paths.RootTemplates),
		filepath.Dir(s.paths.Localization),
		s.paths.StatsDir,
	} {
		s.Require().NoError(os.MkdirAll(dir, 0o755))
	}
}

func (s *CommandTestSuite) execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--workdir", s.workDir, "--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandTestSuite) writeValues(name, text string) string {
	path := filepath.Join(s.workDir, name)
	s.Require().NoError(os.WriteFile(path, []byte(text), 0o644))
	return path
}

func (s *CommandTestSuite) TestGenerateArmorWithDefaultValuesFile() {
	s.writeValues("armor_values.txt", testutils.ValuesText(entities.Armor, 2))

	out, err := s.execute("generate", "GAB", "--kind", "a")
	s.Require().NoError(err)
	s.Assert().Contains(out, s.paths.RootTemplates)
	s.Assert().Contains(out, s.paths.Localization)
	s.Assert().Contains(out, s.paths.Stats(entities.Armor))
	s.Assert().Contains(out, "Generated 2 armor item(s) in GAB")

	data, err := os.ReadFile(s.paths.RootTemplates)
	s.Require().NoError(err)
	rt, err := lsx.ParseRootTemplates(data)
	s.Require().NoError(err)
	s.Assert().Equal(2, rt.Len())

	data, err = os.ReadFile(s.paths.Localization)
	s.Require().NoError(err)
	doc, err := localization.Parse(data)
	s.Require().NoError(err)
	s.Assert().Equal(4, doc.Len())
	for _, entry := range doc.Entries() {
		s.Assert().True(strings.HasPrefix(entry.Handle, "h"))
		s.Assert().NotContains(entry.Handle, "-")
	}

	data, err = os.ReadFile(s.paths.Stats(entities.Armor))
	s.Require().NoError(err)
	s.Assert().Equal(2, strings.Count(string(data), "new entry"))
}

func (s *CommandTestSuite) TestGenerateTwiceAccumulates() {
	values := s.writeValues("weapons.txt", testutils.ValuesText(entities.Weapon, 1))

	_, err := s.execute("generate", "GAB", "--kind", "weapon", "--values", values)
	s.Require().NoError(err)
	_, err = s.execute("generate", "GAB", "--kind", "weapon", "--values", values)
	s.Require().NoError(err)

	data, err := os.ReadFile(s.paths.Stats(entities.Weapon))
	s.Require().NoError(err)
	s.Assert().Equal(2, strings.Count(string(data), `new entry "GAB_example_weapon_01"`))

	data, err = os.ReadFile(s.paths.RootTemplates)
	s.Require().NoError(err)
	rt, err := lsx.ParseRootTemplates(data)
	s.Require().NoError(err)
	s.Assert().Equal(2, rt.Len())
}

func (s *CommandTestSuite) TestGenerateDryRun() {
	values := s.writeValues("armor.txt", testutils.ValuesText(entities.Armor, 1))

	out, err := s.execute("generate", "GAB", "--kind", "armor", "--values", values, "--dry-run")
	s.Require().NoError(err)
	s.Assert().Contains(out, "GameObjects")
	s.Assert().Contains(out, "contentList")
	s.Assert().Contains(out, `new entry "GAB_example_armor_01"`)

	_, err = os.Stat(s.paths.RootTemplates)
	s.Assert().True(os.IsNotExist(err))
	_, err = os.Stat(s.paths.Stats(entities.Armor))
	s.Assert().True(os.IsNotExist(err))
}

func (s *CommandTestSuite) TestGenerateBadLineCountWritesNothing() {
	text := testutils.ValuesText(entities.Armor, 1)
	values := s.writeValues("armor.txt", text+"Display name:\n")

	_, err := s.execute("generate", "GAB", "--kind", "armor", "--values", values)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(2, errors.GetCode(err).ExitCode())

	_, err = os.Stat(s.paths.Stats(entities.Armor))
	s.Assert().True(os.IsNotExist(err))
}

func (s *CommandTestSuite) TestGenerateMissingFolder() {
	s.writeValues("armor_values.txt", testutils.ValuesText(entities.Armor, 1))

	_, err := s.execute("generate", "Typo", "--kind", "armor")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CommandTestSuite) TestGenerateUnknownKind() {
	_, err := s.execute("generate", "GAB", "--kind", "shield")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CommandTestSuite) TestValidate() {
	values := s.writeValues("weapons.txt", testutils.ValuesText(entities.Weapon, 2))

	out, err := s.execute("validate", "--kind", "w", "--values", values)
	s.Require().NoError(err)
	s.Assert().Contains(out, "2 weapon record(s)")
	s.Assert().Contains(out, "GAB_example_weapon_02")

	_, err = os.Stat(s.paths.RootTemplates)
	s.Assert().True(os.IsNotExist(err))
}

func (s *CommandTestSuite) TestStatLayoutOverrideFromEnvFile() {
	layouts := filepath.Join(s.workDir, "layouts.yaml")
	s.Require().NoError(os.WriteFile(layouts, []byte(`weapon:
  - name: RootTemplate
    from: root_template
armor:
  - name: RootTemplate
    from: root_template
  - name: Armor Class Ability
    value: Dexterity
`), 0o644))
	envFile := s.writeValues("builder.env", "ITEMBUILDER_STAT_LAYOUTS="+layouts+"\n")
	s.T().Cleanup(func() { _ = os.Unsetenv("ITEMBUILDER_STAT_LAYOUTS") })
	s.writeValues("armor_values.txt", testutils.ValuesText(entities.Armor, 1))

	_, err := s.execute("--env-file", envFile, "generate", "GAB", "--kind", "armor")
	s.Require().NoError(err)

	data, err := os.ReadFile(s.paths.Stats(entities.Armor))
	s.Require().NoError(err)
	s.Assert().Contains(string(data), `data "Armor Class Ability" "Dexterity"`)
	s.Assert().NotContains(string(data), `data "Weight"`)
}
