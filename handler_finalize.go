package supplychain

// handleFinalizeRecord marks a Record as final. The signer must be both the
// current owner and the current custodian; a record already final cannot be
// finalized again.
func handleFinalizeRecord(action FinalizeRecordAction, signer string, state *State) error {
	record, exists, err := state.GetRecord(action.RecordID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record does not exist: %s", action.RecordID)
	}

	owner, ok := record.CurrentOwner()
	if !ok {
		return invalidf("Owner was not found")
	}
	custodian, ok := record.CurrentCustodian()
	if !ok {
		return invalidf("Custodian was not found")
	}

	if owner.AgentID != signer || custodian.AgentID != signer {
		return invalidf("Must be owner and custodian to finalize record")
	}
	if record.Final {
		return invalidf("Record is already final: %s", action.RecordID)
	}

	record.Final = true
	return state.SetRecord(record)
}
