package supplychain

// handleCreateRecord creates a new Record of an existing RecordType. It
// validates the provided properties against the RecordType's schema, then
// creates the Record, one Property per schema entry (with the signer as sole
// authorized reporter), and page 1 of each Property (populated with a reported
// value for any property value supplied at creation time).
func handleCreateRecord(action CreateRecordAction, signer string, timestamp uint64, state *State) error {
	if _, exists, err := state.GetAgent(signer); err != nil {
		return err
	} else if !exists {
		return invalidf("Agent is not register: %s", signer)
	}

	if _, exists, err := state.GetRecord(action.RecordID); err != nil {
		return err
	} else if exists {
		return invalidf("Record already exists: %s", action.RecordID)
	}

	recordType, exists, err := state.GetRecordType(action.RecordType)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record Type does not exist %s", action.RecordType)
	}

	provided := make(map[string]PropertyValue, len(action.Properties))
	for _, v := range action.Properties {
		provided[v.Name] = v
	}

	for _, schema := range recordType.Properties {
		if schema.Required {
			if _, ok := provided[schema.Name]; !ok {
				return invalidf("Required property %s not provided", schema.Name)
			}
		}
	}

	schemaByName := make(map[string]PropertySchema, len(recordType.Properties))
	for _, schema := range recordType.Properties {
		schemaByName[schema.Name] = schema
	}
	for name, value := range provided {
		schema, ok := schemaByName[name]
		if !ok {
			return invalidf("Provided property %s is not in schemata", name)
		}
		if value.DataType != schema.DataType {
			return invalidf("Value provided for %s is the wrong type", name)
		}
		if schema.Delayed {
			return invalidf("Property is 'delayed', and cannot be set at record creation: %s", name)
		}
	}

	owner := AssociatedAgent{AgentID: signer, Timestamp: timestamp}
	if err := state.SetRecord(Record{
		RecordID:   action.RecordID,
		RecordType: action.RecordType,
		Final:      false,
		Owners:     []AssociatedAgent{owner},
		Custodians: []AssociatedAgent{owner},
	}); err != nil {
		return err
	}

	for _, schema := range recordType.Properties {
		property := Property{
			Name:             schema.Name,
			RecordID:         action.RecordID,
			DataType:         schema.DataType,
			CurrentPage:      1,
			Wrapped:          false,
			Reporters:        []Reporter{{PublicKey: signer, Authorized: true, Index: 0}},
			NumberExponent:   schema.NumberExponent,
			EnumOptions:      schema.EnumOptions,
			StructProperties: schema.StructProperties,
		}
		if err := state.SetProperty(property); err != nil {
			return err
		}

		page := PropertyPage{Name: schema.Name, RecordID: action.RecordID}
		if value, ok := provided[schema.Name]; ok {
			reported, err := makeReportedValue(0, timestamp, value, property)
			if err != nil {
				return err
			}
			page.ReportedValues = append(page.ReportedValues, reported)
		}
		if err := state.SetPropertyPage(action.RecordID, schema.Name, 1, page); err != nil {
			return err
		}
	}

	return nil
}
