package supplychain

// handleCreateProposal opens a role-transfer proposal on a Record. Both the
// issuing (signer) and receiving agent must be registered; the record must
// exist and not be final; at most one OPEN proposal may exist for (record,
// receiving agent, role) at a time.
func handleCreateProposal(action CreateProposalAction, signer string, timestamp uint64, state *State) error {
	if _, exists, err := state.GetAgent(signer); err != nil {
		return err
	} else if !exists {
		return invalidf("Issuing agent does not exist: %s", signer)
	}
	if _, exists, err := state.GetAgent(action.ReceivingAgent); err != nil {
		return err
	} else if !exists {
		return invalidf("Receiving agent does not exist: %s", action.ReceivingAgent)
	}

	entries, err := state.GetProposalContainer(action.RecordID, action.ReceivingAgent)
	if err != nil {
		return err
	}
	for _, p := range entries {
		if p.Status == StatusOpen && p.ReceivingAgent == action.ReceivingAgent &&
			p.Role == action.Role && p.RecordID == action.RecordID {
			return invalidf("Proposal already exists")
		}
	}

	record, exists, err := state.GetRecord(action.RecordID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record does not exist: %s", action.RecordID)
	}
	if record.Final {
		return invalidf("Record is final: %s", action.RecordID)
	}

	switch action.Role {
	case RoleOwner, RoleReporter:
		owner, ok := record.CurrentOwner()
		if !ok {
			return invalidf("Owner not found")
		}
		if owner.AgentID != signer {
			return invalidf("Only the owner can create a proposal to change ownership")
		}
	case RoleCustodian:
		custodian, ok := record.CurrentCustodian()
		if !ok {
			return invalidf("Custodian not found")
		}
		if custodian.AgentID != signer {
			return invalidf("Only the custodian can create a proposal to change custodianship")
		}
	}

	entries = append(entries, Proposal{
		RecordID:       action.RecordID,
		Timestamp:      timestamp,
		IssuingAgent:   signer,
		ReceivingAgent: action.ReceivingAgent,
		Role:           action.Role,
		Properties:     action.Properties,
		Status:         StatusOpen,
	})
	sortProposals(entries)
	return state.SetProposalContainer(action.RecordID, action.ReceivingAgent, entries)
}

// handleAnswerProposal resolves the unique OPEN proposal matching (record,
// receiving agent, role) according to response.
func handleAnswerProposal(action AnswerProposalAction, signer string, timestamp uint64, state *State) error {
	entries, err := state.GetProposalContainer(action.RecordID, action.ReceivingAgent)
	if err != nil {
		return err
	}

	index := -1
	for i, p := range entries {
		if p.ReceivingAgent == action.ReceivingAgent && p.Role == action.Role &&
			p.RecordID == action.RecordID && p.Status == StatusOpen {
			index = i
			break
		}
	}
	if index == -1 {
		return invalidf("No open proposals found for record %s for %s", action.RecordID, action.ReceivingAgent)
	}
	current := entries[index]

	switch action.Response {
	case ResponseCancel:
		if current.IssuingAgent != signer {
			return invalidf("Only the issuing agent can cancel a proposal")
		}
		current.Status = StatusCanceled
		return replaceProposal(state, entries, index, current)

	case ResponseReject:
		if current.ReceivingAgent != signer {
			return invalidf("Only the receiving agent can reject a proposal")
		}
		current.Status = StatusRejected
		return replaceProposal(state, entries, index, current)

	case ResponseAccept:
		if current.ReceivingAgent != signer {
			return invalidf("Only the receiving agent can Accept a proposal")
		}
		return acceptProposal(action, current, entries, index, timestamp, state)

	default:
		return invalidf("Request must contain a payload")
	}
}

// acceptProposal applies the role-specific effect of accepting current,
// then records its terminal status. Every role returns early once it
// detects the issuing agent is no longer the current holder of the role
// being transferred: a stale proposal self-cancels instead of being
// accepted, uniformly for OWNER, CUSTODIAN, and REPORTER.
func acceptProposal(action AnswerProposalAction, current Proposal, entries []Proposal, index int, timestamp uint64, state *State) error {
	record, exists, err := state.GetRecord(action.RecordID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record in proposal does not exist: %s", action.RecordID)
	}

	owner, ok := record.CurrentOwner()
	if !ok {
		return invalidf("Owner not found")
	}
	custodian, ok := record.CurrentCustodian()
	if !ok {
		return invalidf("Custodian not found")
	}

	switch action.Role {
	case RoleOwner:
		if owner.AgentID != current.IssuingAgent {
			current.Status = StatusCanceled
			return replaceProposal(state, entries, index, current)
		}
		record.Owners = append(record.Owners, AssociatedAgent{AgentID: action.ReceivingAgent, Timestamp: timestamp})
		if err := state.SetRecord(record); err != nil {
			return err
		}
		if err := rebalanceReportersOnOwnerChange(record, owner.AgentID, action.ReceivingAgent, state); err != nil {
			return err
		}
		current.Status = StatusAccepted

	case RoleCustodian:
		if custodian.AgentID != current.IssuingAgent {
			current.Status = StatusCanceled
			return replaceProposal(state, entries, index, current)
		}
		record.Custodians = append(record.Custodians, AssociatedAgent{AgentID: action.ReceivingAgent, Timestamp: timestamp})
		if err := state.SetRecord(record); err != nil {
			return err
		}
		current.Status = StatusAccepted

	case RoleReporter:
		if owner.AgentID != current.IssuingAgent {
			current.Status = StatusCanceled
			return replaceProposal(state, entries, index, current)
		}
		for _, propName := range current.Properties {
			prop, exists, err := state.GetProperty(action.RecordID, propName)
			if err != nil {
				return err
			}
			if !exists {
				return invalidf("Property does not exist")
			}
			prop.Reporters = append(prop.Reporters, Reporter{
				PublicKey:  action.ReceivingAgent,
				Authorized: true,
				Index:      uint32(len(prop.Reporters)),
			})
			if err := state.SetProperty(prop); err != nil {
				return err
			}
		}
		current.Status = StatusAccepted
	}

	return replaceProposal(state, entries, index, current)
}

// rebalanceReportersOnOwnerChange flips the prior owner's reporter to
// unauthorized and authorizes the new owner on every schema property of
// record's RecordType, adding a new reporter entry if the new owner had none.
func rebalanceReportersOnOwnerChange(record Record, priorOwner, newOwner string, state *State) error {
	recordType, exists, err := state.GetRecordType(record.RecordType)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("RecordType does not exist: %s", record.RecordType)
	}

	for _, schema := range recordType.Properties {
		prop, exists, err := state.GetProperty(record.RecordID, schema.Name)
		if err != nil {
			return err
		}
		if !exists {
			return invalidf("Property does not exist")
		}

		authorizedNewOwner := false
		rebuilt := make([]Reporter, 0, len(prop.Reporters)+1)
		for _, r := range prop.Reporters {
			switch r.PublicKey {
			case priorOwner:
				r.Authorized = false
			case newOwner:
				r.Authorized = true
				authorizedNewOwner = true
			}
			rebuilt = append(rebuilt, r)
		}
		if !authorizedNewOwner {
			rebuilt = append(rebuilt, Reporter{
				PublicKey:  newOwner,
				Authorized: true,
				Index:      uint32(len(prop.Reporters)),
			})
		}
		prop.Reporters = rebuilt
		if err := state.SetProperty(prop); err != nil {
			return err
		}
	}
	return nil
}

// replaceProposal removes the entry at index, appends updated, re-sorts, and
// persists the container.
func replaceProposal(state *State, entries []Proposal, index int, updated Proposal) error {
	rest := make([]Proposal, 0, len(entries))
	rest = append(rest, entries[:index]...)
	rest = append(rest, entries[index+1:]...)
	rest = append(rest, updated)
	sortProposals(rest)
	return state.SetProposalContainer(updated.RecordID, updated.ReceivingAgent, rest)
}
