// Package records parses item values files into records.
//
// A values file is a flat list of lines alternating between a field label
// and its value. Every item occupies a fixed block of lines (two per field
// of its kind) and blocks follow each other without separators:
//
//	Display name:
//	Example armor 1
//	Description:
//	This is the first example armor.
//	...
package records

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

const maxLineSize = 1024 * 1024

// Parser turns values files into records of one kind
type Parser struct {
	validate *validator.Validate
}

// NewParser creates a parser
func NewParser() *Parser {
	return &Parser{validate: validator.New()}
}

// ParseFile reads and parses a values file
func (p *Parser) ParseFile(path string, kind entities.Kind) ([]*entities.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFSf(err, "failed to open %s", path).WithMeta("source", path)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // read-only
	}()

	return p.Parse(f, path, kind)
}

// Parse reads every line from r and splits it into records. source names
// the input in error messages. Nothing is returned unless every record is
// valid.
func (p *Parser) Parse(r io.Reader, source string, kind entities.Kind) ([]*entities.Record, error) {
	if kind == nil {
		return nil, errors.InvalidArgument("kind is required")
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", source).WithMeta("source", source)
	}

	blockSize := entities.BlockSize(kind)
	if len(lines) == 0 {
		return nil, errors.InvalidArgumentf("%s contains no %s records", source, kind.Name()).
			WithMeta("source", source)
	}
	if len(lines)%blockSize != 0 {
		return nil, errors.InvalidArgumentf(
			"incorrect number of lines in %s: got %d, expected a multiple of %d for %s records",
			source, len(lines), blockSize, kind.Name(),
		).WithMetaMap(map[string]interface{}{
			"source":     source,
			"line_count": len(lines),
			"block_size": blockSize,
		})
	}

	records := make([]*entities.Record, 0, len(lines)/blockSize)
	for start := 0; start < len(lines); start += blockSize {
		rec, err := p.parseBlock(lines[start:start+blockSize], kind, len(records)+1, start+1)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid record in %s", source).WithMeta("source", source)
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseBlock reads one block as (label, value) pairs and validates the
// resulting record against the kind's field set
func (p *Parser) parseBlock(block []string, kind entities.Kind, index, firstLine int) (*entities.Record, error) {
	fields := kind.Fields()
	known := make(map[string]entities.Field, len(fields))
	for _, f := range fields {
		known[f.Label] = f
	}

	rec := &entities.Record{
		Index:  index,
		Line:   firstLine,
		Values: make(map[string]string, len(fields)),
	}

	for i := 0; i+1 < len(block); i += 2 {
		line := firstLine + i
		label := normalizeLabel(block[i])
		if _, ok := known[label]; !ok {
			return nil, errors.InvalidArgumentf("record %d: unexpected label %q at line %d", index, block[i], line).
				WithMeta("record", index).
				WithMeta("line", line)
		}
		if _, dup := rec.Values[label]; dup {
			return nil, errors.InvalidArgumentf("record %d: duplicate label %q at line %d", index, label, line).
				WithMeta("record", index).
				WithMeta("line", line)
		}
		rec.Values[label] = block[i+1]
	}

	vb := errors.NewValidationBuilder()
	for _, f := range fields {
		value, ok := rec.Values[f.Label]
		if !ok {
			vb.RequiredField(f.Label)
			continue
		}
		// UUIDs are case-insensitive; the value itself is kept as written
		if err := p.validate.Var(strings.ToLower(value), f.Rule); err != nil {
			vb.Field(f.Label, describe(err))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "record %d (%s) starting at line %d", index, rec.DisplayTag(), firstLine).
			WithMeta("record", index).
			WithMeta("line", firstLine)
	}

	return rec, nil
}

// readLines decodes r (UTF-8, or UTF-16 with a BOM) and returns its lines
// trimmed of surrounding whitespace. A trailing newline does not start a
// new line.
func readLines(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func normalizeLabel(line string) string {
	return strings.TrimSpace(strings.TrimSuffix(line, ":"))
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}

	switch verrs[0].Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a UUID"
	default:
		return "is invalid"
	}
}
