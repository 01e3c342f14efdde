package lsx

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/pkg/xmldoc"
)

const emptyMerged = `<?xml version="1.0" encoding="utf-8"?>
<save>
	<version major="4" minor="0" revision="9" build="331" />
	<region id="Templates">
		<node id="Templates">
			<children>
			</children>
		</node>
	</region>
</save>
`

// RootTemplates is a Merged.lsx document. Nodes are appended to its first
// children element.
type RootTemplates struct {
	doc       *etree.Document
	container *etree.Element
}

// NewRootTemplates creates an empty Merged.lsx
func NewRootTemplates() *RootTemplates {
	rt, err := ParseRootTemplates([]byte(emptyMerged))
	if err != nil {
		panic(err) // emptyMerged is a constant
	}
	return rt
}

// ParseRootTemplates loads an existing Merged.lsx
func ParseRootTemplates(data []byte) (*RootTemplates, error) {
	doc, err := xmldoc.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Merged.lsx")
	}

	container := doc.FindElement("//children")
	if container == nil {
		return nil, errors.FailedPrecondition("Merged.lsx has no children element to append to")
	}

	return &RootTemplates{doc: doc, container: container}, nil
}

// Append adds a GameObjects node at the end of the container, indented one
// level below it
func (rt *RootTemplates) Append(node *etree.Element) {
	level := xmldoc.Level(rt.container)
	childIndent := "\n" + strings.Repeat("\t", level+1)
	closeIndent := "\n" + strings.Repeat("\t", level)

	for n := len(rt.container.Child); n > 0; n-- {
		cd, ok := rt.container.Child[n-1].(*etree.CharData)
		if !ok || strings.TrimSpace(cd.Data) != "" {
			break
		}
		rt.container.RemoveChildAt(n - 1)
	}

	rt.container.AddChild(etree.NewText(childIndent))
	rt.container.AddChild(node)
	rt.container.AddChild(etree.NewText(closeIndent))
}

// Len returns the number of GameObjects nodes in the container
func (rt *RootTemplates) Len() int {
	return len(rt.container.SelectElements("node"))
}

// Nodes returns the GameObjects nodes in document order
func (rt *RootTemplates) Nodes() []*etree.Element {
	return rt.container.SelectElements("node")
}

// Bytes serializes the document with an XML declaration
func (rt *RootTemplates) Bytes() ([]byte, error) {
	xmldoc.EnsureDeclaration(rt.doc)
	data, err := rt.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize Merged.lsx")
	}
	return data, nil
}
