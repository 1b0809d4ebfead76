package metadata

import (
	"github.com/beevik/etree"
)

// Field names a child element of a picklist value.
type Field string

const (
	FieldLabel    Field = "label"
	FieldFullName Field = "fullName"
)

// Locator selects how value elements are found.
//
// An unqualified locator matches every descendant <value> element in any
// namespace. A qualified locator only follows
// valueSet/valueSetDefinition/value where each element, and the fields read
// from it, resolve to Namespace.
type Locator struct {
	Qualified bool
	Namespace string
}

// Value is one picklist value element.
type Value struct {
	el  *etree.Element
	loc Locator
}

// Values returns the picklist values of d in document order.
func (d *Document) Values(loc Locator) []*Value {
	var els []*etree.Element
	if loc.Qualified {
		els = qualifiedValues(d.Root(), loc.Namespace)
	} else {
		els = d.Root().FindElements(".//value")
	}

	values := make([]*Value, 0, len(els))
	for _, el := range els {
		values = append(values, &Value{el: el, loc: loc})
	}
	return values
}

func qualifiedValues(root *etree.Element, ns string) []*etree.Element {
	var out []*etree.Element
	for _, vs := range root.FindElements(".//valueSet") {
		if vs.NamespaceURI() != ns {
			continue
		}
		for _, def := range childrenInSpace(vs, "valueSetDefinition", ns) {
			out = append(out, childrenInSpace(def, "value", ns)...)
		}
	}
	return out
}

func childrenInSpace(el *etree.Element, tag, ns string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.SelectElements(tag) {
		if c.NamespaceURI() == ns {
			out = append(out, c)
		}
	}
	return out
}

func (v *Value) child(f Field) *etree.Element {
	if !v.loc.Qualified {
		return v.el.SelectElement(string(f))
	}
	if cs := childrenInSpace(v.el, string(f), v.loc.Namespace); len(cs) > 0 {
		return cs[0]
	}
	return nil
}

// Get returns the raw text of field f and whether the element exists.
func (v *Value) Get(f Field) (string, bool) {
	c := v.child(f)
	if c == nil {
		return "", false
	}
	return c.Text(), true
}

// Set replaces the text of field f. When the element is absent it is
// appended to the value with the value's own prefix, and created reports
// true.
func (v *Value) Set(f Field, text string) (created bool) {
	c := v.child(f)
	if c == nil {
		c = v.el.CreateElement(string(f))
		c.Space = v.el.Space
		created = true
	}
	c.SetText(text)
	return created
}
