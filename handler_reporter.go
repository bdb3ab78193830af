package supplychain

// handleRevokeReporter deauthorizes reporterID on every named property of a
// Record. The signer must be the current owner; the record must not be final;
// every named property must currently authorize reporterID.
func handleRevokeReporter(action RevokeReporterAction, signer string, state *State) error {
	record, exists, err := state.GetRecord(action.RecordID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record does not exists: %s", action.RecordID)
	}

	owner, ok := record.CurrentOwner()
	if !ok {
		return invalidf("Owner was not found")
	}
	if owner.AgentID != signer {
		return invalidf("Must be owner to revoke reporters")
	}
	if record.Final {
		return invalidf("Record is final: %s", action.RecordID)
	}

	for _, name := range action.Properties {
		prop, exists, err := state.GetProperty(action.RecordID, name)
		if err != nil {
			return err
		}
		if !exists {
			return invalidf("Property does not exists")
		}

		revoked := false
		for i, r := range prop.Reporters {
			if r.PublicKey != action.ReporterID {
				continue
			}
			if !r.Authorized {
				return invalidf("Reporter is already unauthorized.")
			}
			prop.Reporters[i].Authorized = false
			revoked = true
			break
		}
		if !revoked {
			return invalidf("Reporter cannot be revoked: %s", action.ReporterID)
		}

		if err := state.SetProperty(prop); err != nil {
			return err
		}
	}

	return nil
}
