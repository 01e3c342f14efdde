// Package localization edits a mod's localization XML
package localization

import (
	"github.com/beevik/etree"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/pkg/xmldoc"
)

const (
	rootTag    = "contentList"
	contentTag = "content"

	// EntryVersion is written on every new content entry
	EntryVersion = "1"
)

// Entry is one localized string
type Entry struct {
	Handle  string
	Version string
	Text    string
}

// Document is a localization file. Entries are appended to its root.
type Document struct {
	doc *etree.Document
}

// New creates an empty contentList document
func New() *Document {
	doc := etree.NewDocument()
	xmldoc.EnsureDeclaration(doc)
	doc.CreateElement(rootTag)
	return &Document{doc: doc}
}

// Parse loads an existing localization file
func Parse(data []byte) (*Document, error) {
	doc, err := xmldoc.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse localization file")
	}
	return &Document{doc: doc}, nil
}

// Append adds a content entry for handle
func (d *Document) Append(handle, text string) {
	content := d.doc.Root().CreateElement(contentTag)
	content.CreateAttr("contentuid", handle)
	content.CreateAttr("version", EntryVersion)
	content.SetText(text)
}

// Entries returns every content entry in document order
func (d *Document) Entries() []Entry {
	elements := d.doc.Root().SelectElements(contentTag)
	entries := make([]Entry, 0, len(elements))
	for _, el := range elements {
		entries = append(entries, Entry{
			Handle:  el.SelectAttrValue("contentuid", ""),
			Version: el.SelectAttrValue("version", ""),
			Text:    el.Text(),
		})
	}
	return entries
}

// Len returns the number of content entries
func (d *Document) Len() int {
	return len(d.doc.Root().SelectElements(contentTag))
}

// Bytes serializes the document indented by one space per level
func (d *Document) Bytes() ([]byte, error) {
	xmldoc.EnsureDeclaration(d.doc)
	d.doc.Indent(1)

	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize localization file")
	}
	return data, nil
}
