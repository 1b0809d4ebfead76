package metadata

import (
	"github.com/beevik/etree"
)

const declaration = `version="1.0" encoding="UTF-8"`

// Format controls how Encode lays out the document.
type Format struct {
	// Pretty re-indents the tree, dropping whitespace-only text between
	// elements. Text content is never rewritten.
	Pretty bool
	// Indent is the number of spaces per level in pretty mode.
	Indent int
}

// DefaultIndent is the pretty-print indent width.
const DefaultIndent = 4

// Encode serializes d as UTF-8 with a fresh XML declaration.
func (d *Document) Encode(f Format) ([]byte, error) {
	d.resetDeclaration(!f.Pretty)

	if f.Pretty {
		indent := f.Indent
		if indent <= 0 {
			indent = DefaultIndent
		}
		d.doc.Indent(indent)
	}

	// Leave quotes in text content as they were read.
	d.doc.WriteSettings.CanonicalText = true
	return d.doc.WriteToBytes()
}

// resetDeclaration removes existing xml declarations and leading whitespace,
// then inserts a single declaration at the top of the document.
func (d *Document) resetDeclaration(newline bool) {
	for i := len(d.doc.Child) - 1; i >= 0; i-- {
		if pi, ok := d.doc.Child[i].(*etree.ProcInst); ok && pi.Target == "xml" {
			d.doc.RemoveChildAt(i)
		}
	}

	for len(d.doc.Child) > 0 {
		cd, ok := d.doc.Child[0].(*etree.CharData)
		if !ok || !cd.IsWhitespace() {
			break
		}
		d.doc.RemoveChildAt(0)
	}

	d.doc.InsertChildAt(0, etree.NewProcInst("xml", declaration))
	if newline {
		d.doc.InsertChildAt(1, etree.NewText("\n"))
	}
}
