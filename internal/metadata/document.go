// Package metadata reads, edits and writes Salesforce metadata XML documents
// holding picklist value sets.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// Namespace is the Salesforce Metadata API namespace URI.
const Namespace = "http://soap.sforce.com/2006/04/metadata"

// Document is a parsed metadata file. It owns its element tree; values
// returned from it edit that tree in place.
type Document struct {
	doc *etree.Document
}

// ErrNoRoot is returned for input that holds no root element.
var ErrNoRoot = errors.New("metadata: document has no root element")

// Parse reads a metadata document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Document{doc: doc}, nil
}

// ParseFile reads the metadata document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Root returns the document element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}
