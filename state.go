package supplychain

import (
	"sort"

	"github.com/hyperledger-archives/sawtooth-supply-chain/addressing"
)

// State is the thin State Accessor wrapper over a TransactionContext. It hides
// the "container at an address" convention behind per-entity get/set pairs,
// and is the only thing handlers use to read or write the ledger.
type State struct {
	ctx TransactionContext
}

// NewState binds a State Accessor to a host TransactionContext.
func NewState(ctx TransactionContext) *State {
	return &State{ctx: ctx}
}

// ---------------------------------------------------------------- Agent --

// GetAgent returns the Agent registered under publicKey, or (zero, false)
// if none is registered there.
func (s *State) GetAgent(publicKey string) (Agent, bool, error) {
	return getEntry(s.ctx, addressing.Agent(publicKey), func(a Agent) bool {
		return a.PublicKey == publicKey
	})
}

// SetAgent writes agent to its address, replacing any prior entry with the
// same public key.
func (s *State) SetAgent(agent Agent) error {
	return setEntry(s.ctx, addressing.Agent(agent.PublicKey), agent,
		func(a Agent) bool { return a.PublicKey == agent.PublicKey },
		func(a, b Agent) bool { return a.PublicKey < b.PublicKey },
	)
}

// ----------------------------------------------------------- RecordType --

// GetRecordType returns the RecordType registered under name, or (zero,
// false) if none exists.
func (s *State) GetRecordType(name string) (RecordType, bool, error) {
	return getEntry(s.ctx, addressing.RecordType(name), func(rt RecordType) bool {
		return rt.Name == name
	})
}

// SetRecordType writes rt to its address, replacing any prior entry with
// the same name.
func (s *State) SetRecordType(rt RecordType) error {
	return setEntry(s.ctx, addressing.RecordType(rt.Name), rt,
		func(x RecordType) bool { return x.Name == rt.Name },
		func(a, b RecordType) bool { return a.Name < b.Name },
	)
}

// -------------------------------------------------------------- Record --

// GetRecord returns the Record registered under recordID, or (zero, false)
// if none exists.
func (s *State) GetRecord(recordID string) (Record, bool, error) {
	return getEntry(s.ctx, addressing.Record(recordID), func(r Record) bool {
		return r.RecordID == recordID
	})
}

// SetRecord writes r to its address, replacing any prior entry with the
// same record id.
func (s *State) SetRecord(r Record) error {
	return setEntry(s.ctx, addressing.Record(r.RecordID), r,
		func(x Record) bool { return x.RecordID == r.RecordID },
		func(a, b Record) bool { return a.RecordID < b.RecordID },
	)
}

// ------------------------------------------------------------ Property --

// GetProperty returns the Property metadata for (recordID, name), or
// (zero, false) if none exists.
func (s *State) GetProperty(recordID, name string) (Property, bool, error) {
	return getEntry(s.ctx, addressing.Property(recordID, name), func(p Property) bool {
		return p.RecordID == recordID && p.Name == name
	})
}

// SetProperty writes p to its address, replacing any prior entry with the
// same (record id, name).
func (s *State) SetProperty(p Property) error {
	return setEntry(s.ctx, addressing.Property(p.RecordID, p.Name), p,
		func(x Property) bool { return x.RecordID == p.RecordID && x.Name == p.Name },
		propertyLess,
	)
}

func propertyLess(a, b Property) bool {
	if a.RecordID != b.RecordID {
		return a.RecordID < b.RecordID
	}
	return a.Name < b.Name
}

// -------------------------------------------------------- PropertyPage --

// GetPropertyPage returns the PropertyPage for (recordID, name, page), or
// (zero, false) if it has not been created yet (pages are created lazily).
func (s *State) GetPropertyPage(recordID, name string, page uint32) (PropertyPage, bool, error) {
	return getEntry(s.ctx, addressing.PropertyPage(recordID, name, page), func(p PropertyPage) bool {
		return p.RecordID == recordID && p.Name == name
	})
}

// SetPropertyPage writes pp to its (recordID, name, page) address,
// replacing any prior entry for the same (record id, name).
func (s *State) SetPropertyPage(recordID, name string, page uint32, pp PropertyPage) error {
	return setEntry(s.ctx, addressing.PropertyPage(recordID, name, page), pp,
		func(x PropertyPage) bool { return x.RecordID == recordID && x.Name == name },
		func(a, b PropertyPage) bool {
			if a.RecordID != b.RecordID {
				return a.RecordID < b.RecordID
			}
			return a.Name < b.Name
		},
	)
}

// -------------------------------------------------------- Proposals --

// GetProposalContainer returns every proposal (of any status) stored at the
// (recordID, receivingAgent) address, in their current sort order. Handlers
// iterate this list directly because they must inspect and rewrite specific
// entries by index.
func (s *State) GetProposalContainer(recordID, receivingAgent string) ([]Proposal, error) {
	c, err := loadContainer[Proposal](s.ctx, addressing.Proposal(recordID, receivingAgent))
	if err != nil {
		return nil, err
	}
	return c.Entries, nil
}

// SetProposalContainer writes entries back verbatim to the (recordID,
// receivingAgent) address. Callers are responsible for sorting by (RecordID,
// ReceivingAgent, Timestamp) before calling this.
func (s *State) SetProposalContainer(recordID, receivingAgent string, entries []Proposal) error {
	return storeContainer(s.ctx, addressing.Proposal(recordID, receivingAgent), container[Proposal]{Entries: entries})
}

// sortProposals sorts entries in place by (RecordID, ReceivingAgent,
// Timestamp), the key every proposal container write uses.
func sortProposals(entries []Proposal) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.RecordID != b.RecordID {
			return a.RecordID < b.RecordID
		}
		if a.ReceivingAgent != b.ReceivingAgent {
			return a.ReceivingAgent < b.ReceivingAgent
		}
		return a.Timestamp < b.Timestamp
	})
}
