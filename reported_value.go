package supplychain

// makeReportedValue builds the stored form of value for property, resolving
// ENUM names to their schema index and recursively validating STRUCT members
// against property's struct schema.
func makeReportedValue(reporterIndex uint32, timestamp uint64, value PropertyValue, property Property) (ReportedValue, error) {
	rv := ReportedValue{
		Name:          value.Name,
		ReporterIndex: reporterIndex,
		Timestamp:     timestamp,
		DataType:      value.DataType,
	}
	switch value.DataType {
	case TypeUnset:
		return ReportedValue{}, invalidf("DataType is not set")
	case TypeBytes:
		rv.BytesValue = value.BytesValue
	case TypeBoolean:
		rv.BooleanValue = value.BooleanValue
	case TypeNumber:
		rv.NumberValue = value.NumberValue
	case TypeString:
		rv.StringValue = value.StringValue
	case TypeEnum:
		index, ok := enumIndex(property.EnumOptions, value.EnumValue)
		if !ok {
			return ReportedValue{}, invalidf("Provided enum name is not a valid option: %s", value.EnumValue)
		}
		rv.EnumValue = index
	case TypeStruct:
		if err := validateStructValues(value.StructValues, property.StructProperties); err != nil {
			return ReportedValue{}, err
		}
		structValues, err := makeStructReportedValues(value.StructValues, property.StructProperties)
		if err != nil {
			return ReportedValue{}, err
		}
		rv.StructValues = structValues
	case TypeLocation:
		rv.LocationValue = value.LocationValue
	}
	return rv, nil
}

func enumIndex(options []string, name string) (uint32, bool) {
	for i, opt := range options {
		if opt == name {
			return uint32(i), true
		}
	}
	return 0, false
}

// makeStructReportedValues converts each member of values into its stored
// form, matching each by name against schema (already validated to align
// 1:1 by validateStructValues).
func makeStructReportedValues(values []PropertyValue, schema []PropertySchema) ([]ReportedValue, error) {
	out := make([]ReportedValue, 0, len(values))
	for _, member := range schema {
		value, ok := findByName(values, member.Name)
		if !ok {
			return nil, invalidf("Provided struct missing required property from schema: %s", member.Name)
		}
		// makeReportedValue needs a Property-shaped schema carrier for
		// recursion; struct member schemas carry their own enum/struct
		// options, so we project them into a Property for reuse.
		rv, err := makeReportedValue(0, 0, value, Property{
			EnumOptions:      member.EnumOptions,
			StructProperties: member.StructProperties,
		})
		if err != nil {
			return nil, err
		}
		rv.Name = member.Name
		out = append(out, rv)
	}
	return out, nil
}

func findByName(values []PropertyValue, name string) (PropertyValue, bool) {
	for _, v := range values {
		if v.Name == name {
			return v, true
		}
	}
	return PropertyValue{}, false
}

// validateStructValues checks that values structurally matches schema: same
// length, every schema member present by name, matching data type, and
// (recursively) matching nested struct shape.
func validateStructValues(values []PropertyValue, schema []PropertySchema) error {
	if len(values) != len(schema) {
		return invalidf("Provided struct does not match schema length: %d != %d", len(values), len(schema))
	}
	for _, member := range schema {
		value, ok := findByName(values, member.Name)
		if !ok {
			return invalidf("Provided struct missing required property from schema: %s", member.Name)
		}
		if value.DataType != member.DataType {
			return invalidf("Struct property %q must have data type: %s", member.Name, member.DataType)
		}
		if member.DataType == TypeStruct {
			if err := validateStructValues(value.StructValues, member.StructProperties); err != nil {
				return err
			}
		}
	}
	return nil
}
