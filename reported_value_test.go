package supplychain

import "testing"

func TestMakeReportedValueResolvesEnumNameToIndex(t *testing.T) {
	property := Property{DataType: TypeEnum, EnumOptions: []string{"RAW", "IN_TRANSIT", "DELIVERED"}}
	rv, err := makeReportedValue(0, 1, PropertyValue{DataType: TypeEnum, EnumValue: "IN_TRANSIT"}, property)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rv.EnumValue != 1 {
		t.Fatalf("EnumValue = %d, want 1", rv.EnumValue)
	}
}

// An enum value naming an option outside the schema is always rejected.
func TestMakeReportedValueRejectsUnknownEnumName(t *testing.T) {
	property := Property{DataType: TypeEnum, EnumOptions: []string{"RAW"}}
	_, err := makeReportedValue(0, 1, PropertyValue{DataType: TypeEnum, EnumValue: "UNKNOWN"}, property)
	if err == nil {
		t.Fatal("expected an error for an enum value outside the schema")
	}
}

func TestMakeReportedValueRejectsUnsetDataType(t *testing.T) {
	_, err := makeReportedValue(0, 1, PropertyValue{DataType: TypeUnset}, Property{})
	if err == nil {
		t.Fatal("expected an error for an unset data type")
	}
}

func TestValidateStructValuesRejectsLengthMismatch(t *testing.T) {
	schema := []PropertySchema{
		{Name: "lat", DataType: TypeNumber},
		{Name: "long", DataType: TypeNumber},
	}
	values := []PropertyValue{{Name: "lat", DataType: TypeNumber, NumberValue: 1}}
	if err := validateStructValues(values, schema); err == nil {
		t.Fatal("expected an error for a struct with fewer members than its schema")
	}
}

func TestValidateStructValuesRejectsWrongMemberType(t *testing.T) {
	schema := []PropertySchema{{Name: "count", DataType: TypeNumber}}
	values := []PropertyValue{{Name: "count", DataType: TypeString, StringValue: "nope"}}
	if err := validateStructValues(values, schema); err == nil {
		t.Fatal("expected an error for a struct member with the wrong data type")
	}
}

func TestValidateStructValuesAcceptsNestedStruct(t *testing.T) {
	innerSchema := []PropertySchema{{Name: "lat", DataType: TypeNumber}}
	schema := []PropertySchema{{Name: "gps", DataType: TypeStruct, StructProperties: innerSchema}}
	values := []PropertyValue{{
		Name:         "gps",
		DataType:     TypeStruct,
		StructValues: []PropertyValue{{Name: "lat", DataType: TypeNumber, NumberValue: 100}},
	}}
	if err := validateStructValues(values, schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMakeReportedValueBuildsNestedStructReportedValues(t *testing.T) {
	innerSchema := []PropertySchema{{Name: "lat", DataType: TypeNumber}}
	property := Property{DataType: TypeStruct, StructProperties: innerSchema}
	value := PropertyValue{
		DataType:     TypeStruct,
		StructValues: []PropertyValue{{Name: "lat", DataType: TypeNumber, NumberValue: 42}},
	}
	rv, err := makeReportedValue(0, 1, value, property)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rv.StructValues) != 1 || rv.StructValues[0].NumberValue != 42 {
		t.Fatalf("unexpected struct reported values: %+v", rv.StructValues)
	}
}
