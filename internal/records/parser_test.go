package records_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/encoding/unicode"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/records"
	"github.com/KirkDiggler/bg3-item-builder/internal/testutils"
)

type ParserTestSuite struct {
	suite.Suite
	parser *records.Parser
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) SetupTest() {
	s.parser = records.NewParser()
}

func (s *ParserTestSuite) parse(text string, kind entities.Kind) ([]*entities.Record, error) {
	return s.parser.Parse(strings.NewReader(text), "values.txt", kind)
}

func (s *ParserTestSuite) TestRecordCounts() {
	for _, kind := range entities.Kinds() {
		for _, n := range []int{1, 2, 7} {
			s.Run(fmt.Sprintf("%s x%d", kind.Name(), n), func() {
				recs, err := s.parse(testutils.ValuesText(kind, n), kind)
				s.Require().NoError(err)
				s.Require().Len(recs, n)

				for i, rec := range recs {
					s.Assert().Equal(i+1, rec.Index)
					s.Assert().Equal(i*entities.BlockSize(kind)+1, rec.Line)
					s.Assert().Len(rec.Values, len(kind.Fields()))
				}
				s.Assert().Equal(testutils.Records(kind, n), recs)
			})
		}
	}
}

func (s *ParserTestSuite) TestArmorExample() {
	text := `Display name:
Example armor 1
Description:
desc
Internal name tag:
GAB_example_armor_01
Icon tag:
Item_ARM_Leather_3
Parent template UUID:
0985f767-4256-4f15-aabe-364e002f913f
`
	recs, err := s.parse(text, entities.Armor)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Assert().Equal(testutils.ExampleArmorRecord().Values, recs[0].Values)
}

func (s *ParserTestSuite) TestValuesAreTrimmed() {
	text := strings.ReplaceAll(testutils.ValuesText(entities.Armor, 1), "\n", "  \r\n")
	text = strings.Replace(text, "Example armor 1", "\t Example armor 1", 1)

	recs, err := s.parse(text, entities.Armor)
	s.Require().NoError(err)
	s.Assert().Equal("Example armor 1", recs[0].DisplayName())
}

func (s *ParserTestSuite) TestOrderPreserved() {
	recs, err := s.parse(testutils.ValuesText(entities.Weapon, 3), entities.Weapon)
	s.Require().NoError(err)

	var tags []string
	for _, rec := range recs {
		tags = append(tags, rec.InternalName())
	}
	s.Assert().Equal([]string{"GAB_example_weapon_01", "GAB_example_weapon_02", "GAB_example_weapon_03"}, tags)
}

func (s *ParserTestSuite) TestWrongLineCount() {
	testCases := []struct {
		name  string
		kind  entities.Kind
		text  string
		lines int
	}{
		{"weapon missing last line", entities.Weapon, dropLastLine(testutils.ValuesText(entities.Weapon, 2)), 31},
		{"armor with extra blank line", entities.Armor, testutils.ValuesText(entities.Armor, 1) + "\n", 11},
		{"armor file read as weapon", entities.Weapon, testutils.ValuesText(entities.Armor, 1), 10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			recs, err := s.parse(tc.text, tc.kind)
			s.Require().Error(err)
			s.Assert().Nil(recs)
			s.Assert().True(errors.IsInvalidArgument(err))

			meta := errors.GetMeta(err)
			s.Assert().Equal("values.txt", meta["source"])
			s.Assert().Equal(tc.lines, meta["line_count"])
			s.Assert().Equal(entities.BlockSize(tc.kind), meta["block_size"])
			s.Assert().Contains(err.Error(), fmt.Sprintf("multiple of %d", entities.BlockSize(tc.kind)))
		})
	}
}

func (s *ParserTestSuite) TestEmptyInput() {
	_, err := s.parse("", entities.Armor)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ParserTestSuite) TestUnknownLabel() {
	text := strings.Replace(testutils.ValuesText(entities.Armor, 2), "Icon tag:", "Icon:", 2)

	_, err := s.parse(text, entities.Armor)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(1, errors.GetMeta(err)["record"])
	s.Assert().Equal(7, errors.GetMeta(err)["line"])
}

func (s *ParserTestSuite) TestDuplicateLabel() {
	text := strings.Replace(testutils.ValuesText(entities.Armor, 1), "Description:", "Display name:", 1)

	_, err := s.parse(text, entities.Armor)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "duplicate label")
}

func (s *ParserTestSuite) TestEmptyValue() {
	text := strings.Replace(testutils.ValuesText(entities.Armor, 2), "Item_ARM_Leather_3", "", 1)

	recs, err := s.parse(text, entities.Armor)
	s.Require().Error(err)
	s.Assert().Nil(recs)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Icon tag: is required")
	s.Assert().Equal(1, errors.GetMeta(err)["record"])
}

func (s *ParserTestSuite) TestInvalidUUID() {
	text := strings.Replace(testutils.ValuesText(entities.Weapon, 1), testutils.ExamplePhysics, "not-a-uuid", 1)

	_, err := s.parse(text, entities.Weapon)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Physics template UUID: must be a UUID")
}

func (s *ParserTestSuite) TestUppercaseUUIDKeptVerbatim() {
	upper := strings.ToUpper(testutils.ExampleArmorParent)
	text := strings.Replace(testutils.ValuesText(entities.Armor, 1), testutils.ExampleArmorParent, upper, 1)

	recs, err := s.parse(text, entities.Armor)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Assert().Equal(upper, recs[0].Get(entities.FieldParentTemplateUUID))
}

func (s *ParserTestSuite) TestLabelColonOptional() {
	text := strings.ReplaceAll(testutils.ValuesText(entities.Armor, 1), ":\n", "\n")

	recs, err := s.parse(text, entities.Armor)
	s.Require().NoError(err)
	s.Assert().Equal(testutils.ExampleArmorTag, recs[0].InternalName())
}

func (s *ParserTestSuite) TestByteOrderMarks() {
	text := testutils.ValuesText(entities.Armor, 1)

	s.Run("utf-8 bom", func() {
		recs, err := s.parse("\ufeff"+text, entities.Armor)
		s.Require().NoError(err)
		s.Assert().Equal("Example armor 1", recs[0].DisplayName())
	})

	s.Run("utf-16 le", func() {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		encoded, err := enc.Bytes([]byte(text))
		s.Require().NoError(err)

		recs, err := s.parser.Parse(bytes.NewReader(encoded), "values.txt", entities.Armor)
		s.Require().NoError(err)
		s.Assert().Equal(testutils.ExampleArmorTag, recs[0].InternalName())
	})
}

func (s *ParserTestSuite) TestParseFile() {
	path := filepath.Join(s.T().TempDir(), "weapon_values.txt")
	s.Require().NoError(os.WriteFile(path, []byte(testutils.ValuesText(entities.Weapon, 2)), 0o600))

	recs, err := s.parser.ParseFile(path, entities.Weapon)
	s.Require().NoError(err)
	s.Assert().Len(recs, 2)

	_, err = s.parser.ParseFile(filepath.Join(s.T().TempDir(), "missing.txt"), entities.Weapon)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func dropLastLine(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return text[:strings.LastIndex(text, "\n")+1]
}
