package supplychain

// handleCreateRecordType registers a new RecordType schema. The signer must
// already be a registered Agent; no RecordType of the same name may already
// exist. Properties are stored in the order they were provided.
func handleCreateRecordType(action CreateRecordTypeAction, signer string, state *State) error {
	if _, exists, err := state.GetAgent(signer); err != nil {
		return err
	} else if !exists {
		return invalidf("Agent is not register: %s", signer)
	}

	if _, exists, err := state.GetRecordType(action.Name); err != nil {
		return err
	} else if exists {
		return invalidf("Record type already exists: %s", action.Name)
	}

	return state.SetRecordType(RecordType{
		Name:       action.Name,
		Properties: action.Properties,
	})
}
