// Package xmldoc holds the etree helpers shared by the lsx and
// localization documents
package xmldoc

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

// Declaration is the XML declaration written at the top of every document
const Declaration = `version="1.0" encoding="utf-8"`

// Parse reads an XML document from data
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "malformed XML document")
	}
	if doc.Root() == nil {
		return nil, errors.FailedPrecondition("XML document has no root element")
	}
	return doc, nil
}

// EnsureDeclaration adds the XML declaration if the document has none
func EnsureDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	doc.InsertChildAt(0, etree.NewProcInst("xml", Declaration))
	doc.InsertChildAt(1, etree.NewText("\n"))
}

// Level returns how many elements enclose e; the root element is level 0
func Level(e *etree.Element) int {
	n := 0
	for p := e.Parent(); p != nil && p.Tag != ""; p = p.Parent() {
		n++
	}
	return n
}

// CommentText makes text safe to place inside an XML comment
func CommentText(text string) string {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	return strings.TrimSuffix(text, "-")
}
