package metadata

import (
	"testing"
)

func TestValuesUnqualified(t *testing.T) {
	d := mustParse(t, colorField)
	values := d.Values(Locator{})
	if len(values) != 2 {
		t.Fatalf("len(values) = %d, want 2", len(values))
	}

	label, ok := values[0].Get(FieldLabel)
	if !ok || label != "Red" {
		t.Errorf("label = %q, %v", label, ok)
	}
	name, ok := values[1].Get(FieldFullName)
	if !ok || name != "GreenAPI" {
		t.Errorf("fullName = %q, %v", name, ok)
	}
}

func TestValuesQualified(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ns   string
		want int
	}{
		{"default namespace", colorField, Namespace, 2},
		{"prefixed namespace", prefixedField, Namespace, 1},
		{"other namespace", colorField, "urn:other", 0},
		{"no namespace in document", plainField, Namespace, 0},
		{"empty namespace matches plain document", plainField, "", 1},
	}

	for _, tc := range tests {
		d := mustParse(t, tc.src)
		got := d.Values(Locator{Qualified: true, Namespace: tc.ns})
		if len(got) != tc.want {
			t.Errorf("%s: len(values) = %d, want %d", tc.name, len(got), tc.want)
		}
	}
}

func TestValuesQualifiedIgnoresForeignFields(t *testing.T) {
	src := `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata" xmlns:x="urn:x">
  <valueSet><valueSetDefinition>
    <value><x:label>Foreign</x:label><fullName>API_1</fullName></value>
  </valueSetDefinition></valueSet>
</CustomField>`
	d := mustParse(t, src)
	values := d.Values(Locator{Qualified: true, Namespace: Namespace})
	if len(values) != 1 {
		t.Fatalf("len(values) = %d, want 1", len(values))
	}
	if _, ok := values[0].Get(FieldLabel); ok {
		t.Error("label in foreign namespace should not be found")
	}
	if name, ok := values[0].Get(FieldFullName); !ok || name != "API_1" {
		t.Errorf("fullName = %q, %v", name, ok)
	}
}

func TestValueSetExistingAndCreated(t *testing.T) {
	d := mustParse(t, prefixedField)
	v := d.Values(Locator{Qualified: true, Namespace: Namespace})[0]

	if _, ok := v.Get(FieldLabel); ok {
		t.Fatal("fixture should have no label")
	}
	if created := v.Set(FieldLabel, "New Label"); !created {
		t.Error("Set on missing label should report created")
	}
	if created := v.Set(FieldFullName, "API_2"); created {
		t.Error("Set on existing fullName should not report created")
	}
	if label, ok := v.Get(FieldLabel); !ok || label != "New Label" {
		t.Errorf("created label not found by qualified lookup: %q, %v", label, ok)
	}

	d.StripNamespaces()
	v = d.Values(Locator{})[0]
	if label, ok := v.Get(FieldLabel); !ok || label != "New Label" {
		t.Errorf("label = %q, %v", label, ok)
	}
	if name, _ := v.Get(FieldFullName); name != "API_2" {
		t.Errorf("fullName = %q", name)
	}
}
