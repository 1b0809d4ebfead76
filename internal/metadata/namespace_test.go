package metadata

import (
	"strings"
	"testing"
)

func TestStripNamespacesDefault(t *testing.T) {
	d := mustParse(t, colorField)
	d.StripNamespaces()
	out := mustEncode(t, d, Format{})

	if strings.Contains(out, "xmlns") {
		t.Errorf("expected no namespace declarations:\n%s", out)
	}
	if !strings.Contains(out, "<CustomField>") {
		t.Errorf("expected unqualified root:\n%s", out)
	}
	if !strings.Contains(out, "<label>Red</label>") {
		t.Errorf("text content changed:\n%s", out)
	}
}

func TestStripNamespacesPrefixedKeepsUsedDeclarations(t *testing.T) {
	d := mustParse(t, prefixedField)
	d.StripNamespaces()
	out := mustEncode(t, d, Format{})

	if strings.Contains(out, "sf:") {
		t.Errorf("sf prefix should be gone:\n%s", out)
	}
	if !strings.Contains(out, `<color xsi:nil="true"/>`) {
		t.Errorf("attribute should be preserved:\n%s", out)
	}
	if !strings.Contains(out, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`) {
		t.Errorf("xsi declaration is still in use and must stay:\n%s", out)
	}
	if strings.Contains(out, `xmlns:sf`) {
		t.Errorf("unused sf declaration should be dropped:\n%s", out)
	}
}

func TestStripNamespacesIdempotent(t *testing.T) {
	for _, src := range []string{colorField, prefixedField, plainField} {
		once := mustParse(t, src)
		once.StripNamespaces()

		twice := mustParse(t, src)
		twice.StripNamespaces()
		twice.StripNamespaces()

		a := mustEncode(t, once, Format{})
		b := mustEncode(t, twice, Format{})
		if a != b {
			t.Errorf("strip not idempotent:\n%s\n---\n%s", a, b)
		}
	}
}
