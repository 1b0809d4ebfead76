package metadata

import (
	"github.com/beevik/etree"
)

// StripNamespaces rewrites every element tag to its local name and drops
// namespace declarations nothing refers to any more. Attribute values and
// text content are left as they are. Running it twice is the same as
// running it once.
func (d *Document) StripNamespaces() {
	root := d.Root()
	elements := append([]*etree.Element{root}, root.FindElements(".//*")...)

	used := make(map[string]bool)
	for _, el := range elements {
		el.Space = ""
		for _, a := range el.Attr {
			if a.Space != "" && a.Space != "xmlns" {
				used[a.Space] = true
			}
		}
	}

	for _, el := range elements {
		kept := el.Attr[:0]
		for _, a := range el.Attr {
			switch {
			case a.Space == "" && a.Key == "xmlns":
				continue
			case a.Space == "xmlns" && !used[a.Key]:
				continue
			}
			kept = append(kept, a)
		}
		el.Attr = kept
	}
}
