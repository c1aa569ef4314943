package gemini

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/schema"
)

// checkIsomorphic walks both trees and verifies the converted structure has
// the same key set and nesting as the source.
func checkIsomorphic(t *testing.T, src *schema.Node, dst *Schema, path string) {
	t.Helper()

	if len(src.Properties) != len(dst.Properties) {
		t.Fatalf("%s: property count %d != %d", path, len(dst.Properties), len(src.Properties))
	}
	for name, child := range src.Properties {
		converted, ok := dst.Properties[name]
		if !ok {
			t.Fatalf("%s: property %q missing after conversion", path, name)
		}
		checkIsomorphic(t, child, converted, path+"."+name)
	}

	if (src.Items == nil) != (dst.Items == nil) {
		t.Fatalf("%s: items presence mismatch", path)
	}
	if src.Items != nil {
		checkIsomorphic(t, src.Items, dst.Items, path+"[]")
	}

	if len(src.Required) != len(dst.Required) {
		t.Fatalf("%s: required count mismatch", path)
	}
	for _, name := range dst.Required {
		if _, ok := dst.Properties[name]; !ok {
			t.Fatalf("%s: required %q is not a converted property", path, name)
		}
	}
}

func TestConvertSchemaTotalOverAdvisoryTree(t *testing.T) {
	converted, err := ConvertSchema(schema.Advisory())
	if err != nil {
		t.Fatalf("convert advisory: %v", err)
	}
	checkIsomorphic(t, schema.Advisory(), converted, "advisory")
}

func TestConvertSchemaTotalOverWeatherTree(t *testing.T) {
	converted, err := ConvertSchema(schema.Weather())
	if err != nil {
		t.Fatalf("convert weather: %v", err)
	}
	checkIsomorphic(t, schema.Weather(), converted, "weather")
}

func TestConvertSchemaIsPure(t *testing.T) {
	first, err := ConvertSchema(schema.Advisory())
	if err != nil {
		t.Fatal(err)
	}
	second, err := ConvertSchema(schema.Advisory())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("converting the same tree twice must yield identical output")
	}
}

func TestConvertSchemaTypeTags(t *testing.T) {
	cases := []struct {
		kind schema.Kind
		want string
	}{
		{schema.String, "STRING"},
		{schema.Number, "NUMBER"},
		{schema.Integer, "INTEGER"},
		{schema.Boolean, "BOOLEAN"},
	}
	for _, tc := range cases {
		converted, err := ConvertSchema(&schema.Node{Kind: tc.kind})
		if err != nil {
			t.Fatalf("convert %s: %v", tc.kind, err)
		}
		if converted.Type != tc.want {
			t.Fatalf("type tag for %s = %q, want %q", tc.kind, converted.Type, tc.want)
		}
	}
}

func TestConvertSchemaRejectsUnknownKind(t *testing.T) {
	_, err := ConvertSchema(&schema.Node{Kind: schema.Kind("TIMESTAMP")})
	if err == nil {
		t.Fatal("want error for unknown kind")
	}
	var coreErr *core.Error
	if !asCoreError(err, &coreErr) || coreErr.Type != core.ErrUnsupportedSchema {
		t.Fatalf("error = %v, want unsupported_schema_type", err)
	}
}

func TestConvertSchemaOmitsAbsentKeys(t *testing.T) {
	converted, err := ConvertSchema(&schema.Node{Kind: schema.String})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(converted)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"STRING"}`
	if string(raw) != want {
		t.Fatalf("marshaled scalar = %s, want %s", raw, want)
	}
}

func TestConvertSchemaPreservesDefaultAndDescription(t *testing.T) {
	node := &schema.Node{Kind: schema.String, Description: "currency code", Default: "INR"}
	converted, err := ConvertSchema(node)
	if err != nil {
		t.Fatal(err)
	}
	if converted.Description != "currency code" {
		t.Fatalf("description = %q", converted.Description)
	}
	if converted.Default != "INR" {
		t.Fatalf("default = %v", converted.Default)
	}
}

func asCoreError(err error, target **core.Error) bool {
	e, ok := err.(*core.Error)
	if ok {
		*target = e
	}
	return ok
}
