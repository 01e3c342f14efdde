// Package lsx builds root template nodes for Merged.lsx.
//
// Each item kind has a base template document holding exactly one
// GameObjects node. The node is cloned per item, its attributes are filled
// from the record and generated identifiers, and the result is appended to
// the mod's Merged.lsx.
package lsx

import (
	"embed"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/pkg/xmldoc"
)

const gameObjectsPath = "//node[@id='GameObjects']"

//go:embed assets/*.lsx
var assets embed.FS

// DefaultBase returns the embedded base template for a kind
func DefaultBase(kind entities.Kind) ([]byte, error) {
	data, err := assets.ReadFile("assets/" + kind.TemplateName())
	if err != nil {
		return nil, errors.WrapFSf(err, "no embedded template for %s", kind.Name())
	}
	return data, nil
}

// LoadBase reads a base template from path, or the embedded one when path
// is empty
func LoadBase(kind entities.Kind, path string) ([]byte, error) {
	if path == "" {
		return DefaultBase(kind)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFSf(err, "failed to read %s template %s", kind.Name(), path).
			WithMeta("template", path)
	}
	return data, nil
}

// InstantiatorConfig holds the base templates keyed by kind name
type InstantiatorConfig struct {
	Bases map[string][]byte
}

// Validate ensures every supported kind has a base template
func (c *InstantiatorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	for _, kind := range entities.Kinds() {
		if len(c.Bases[kind.Name()]) == 0 {
			vb.RequiredField(kind.TemplateName())
		}
	}
	return vb.Build()
}

// Instantiator clones base templates into populated GameObjects nodes
type Instantiator struct {
	bases map[string][]byte
}

// NewInstantiator creates an instantiator and checks that every base
// template carries the attributes its kind binds
func NewInstantiator(cfg *InstantiatorConfig) (*Instantiator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	i := &Instantiator{bases: make(map[string][]byte, len(cfg.Bases))}
	for name, data := range cfg.Bases {
		i.bases[name] = data
	}

	for _, kind := range entities.Kinds() {
		if _, err := i.Instantiate(kind, probeRecord(kind), entities.Identifiers{}); err != nil {
			return nil, errors.Wrapf(err, "invalid %s", kind.TemplateName())
		}
	}

	return i, nil
}

// NewDefaultInstantiator uses the embedded base templates
func NewDefaultInstantiator() (*Instantiator, error) {
	bases := make(map[string][]byte)
	for _, kind := range entities.Kinds() {
		data, err := DefaultBase(kind)
		if err != nil {
			return nil, err
		}
		bases[kind.Name()] = data
	}
	return NewInstantiator(&InstantiatorConfig{Bases: bases})
}

// Instantiate parses a fresh copy of the kind's base template and returns
// its GameObjects node populated for rec. The node belongs to no document
// until it is appended somewhere.
func (i *Instantiator) Instantiate(kind entities.Kind, rec *entities.Record, ids entities.Identifiers) (*etree.Element, error) {
	base, ok := i.bases[kind.Name()]
	if !ok {
		return nil, errors.FailedPreconditionf("no base template for %s", kind.Name()).
			WithMeta("kind", kind.Name())
	}

	doc, err := xmldoc.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", kind.TemplateName()).
			WithMeta("kind", kind.Name())
	}

	node := doc.FindElement(gameObjectsPath)
	if node == nil {
		return nil, errors.FailedPreconditionf("%s has no GameObjects node", kind.TemplateName()).
			WithMeta("kind", kind.Name()).
			WithMeta("attribute", "GameObjects")
	}

	bindings, err := kind.Bindings(rec, ids)
	if err != nil {
		return nil, err
	}

	for _, b := range bindings {
		attr := node.FindElement(fmt.Sprintf(".//attribute[@id='%s']", b.Attribute))
		if attr == nil {
			return nil, errors.FailedPreconditionf("%s is missing attribute %q", kind.TemplateName(), b.Attribute).
				WithMeta("kind", kind.Name()).
				WithMeta("attribute", b.Attribute)
		}
		attr.CreateAttr(b.Property, b.Value)
	}

	insertComment(node, rec.DisplayName())

	node.Parent().RemoveChild(node)
	return node, nil
}

// insertComment puts a comment carrying text before the node's first child,
// keeping the node's existing indentation
func insertComment(node *etree.Element, text string) {
	comment := etree.NewComment(xmldoc.CommentText(text))

	if len(node.Child) > 0 {
		if lead, ok := node.Child[0].(*etree.CharData); ok && lead.IsWhitespace() {
			node.InsertChildAt(1, comment)
			node.InsertChildAt(2, etree.NewText(lead.Data))
			return
		}
	}
	node.InsertChildAt(0, comment)
}

// probeRecord fills every field of a kind with a placeholder so base
// templates can be checked before any real record is seen
func probeRecord(kind entities.Kind) *entities.Record {
	values := make(map[string]string)
	for _, f := range kind.Fields() {
		values[f.Label] = "probe"
	}
	return &entities.Record{Index: 0, Values: values}
}
