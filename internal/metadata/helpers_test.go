package metadata

import (
	"strings"
	"testing"
)

const colorField = `<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Color__c</fullName>
    <label>Color</label>
    <valueSet>
        <valueSetDefinition>
            <sorted>false</sorted>
            <value>
                <fullName>OldRed</fullName>
                <default>false</default>
                <label>Red</label>
            </value>
            <value>
                <fullName>GreenAPI</fullName>
                <default>false</default>
                <label>Green</label>
            </value>
        </valueSetDefinition>
    </valueSet>
</CustomField>
`

const prefixedField = `<?xml version="1.0" encoding="UTF-8"?>
<sf:CustomField xmlns:sf="http://soap.sforce.com/2006/04/metadata" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <sf:valueSet>
    <sf:valueSetDefinition>
      <sf:value>
        <sf:fullName>API_1</sf:fullName>
        <sf:color xsi:nil="true"/>
      </sf:value>
    </sf:valueSetDefinition>
  </sf:valueSet>
</sf:CustomField>
`

const plainField = `<CustomField>
  <valueSet>
    <valueSetDefinition>
      <value><fullName>A</fullName><label>Alpha</label></value>
    </valueSetDefinition>
  </valueSet>
</CustomField>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func mustEncode(t *testing.T, d *Document, f Format) string {
	t.Helper()
	out, err := d.Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return string(out)
}
