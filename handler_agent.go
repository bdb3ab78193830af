package supplychain

// handleCreateAgent registers signer as a new Agent. The signer must not
// already be an Agent; agents are never deleted or renamed once created.
func handleCreateAgent(action CreateAgentAction, signer string, timestamp uint64, state *State) error {
	_, exists, err := state.GetAgent(signer)
	if err != nil {
		return err
	}
	if exists {
		return invalidf("Agent already exists: %s", action.Name)
	}

	return state.SetAgent(Agent{
		PublicKey: signer,
		Name:      action.Name,
		Timestamp: timestamp,
	})
}
