package supplychain

import "encoding/json"

// ActionTag identifies which of the eight actions a payload carries.
type ActionTag int

const (
	ActionUnspecified ActionTag = iota
	ActionCreateAgent
	ActionCreateRecord
	ActionFinalizeRecord
	ActionCreateRecordType
	ActionUpdateProperties
	ActionCreateProposal
	ActionAnswerProposal
	ActionRevokeReporter
)

func (a ActionTag) String() string {
	switch a {
	case ActionCreateAgent:
		return "CREATE_AGENT"
	case ActionCreateRecord:
		return "CREATE_RECORD"
	case ActionFinalizeRecord:
		return "FINALIZE_RECORD"
	case ActionCreateRecordType:
		return "CREATE_RECORD_TYPE"
	case ActionUpdateProperties:
		return "UPDATE_PROPERTIES"
	case ActionCreateProposal:
		return "CREATE_PROPOSAL"
	case ActionAnswerProposal:
		return "ANSWER_PROPOSAL"
	case ActionRevokeReporter:
		return "REVOKE_REPORTER"
	default:
		return "ACTION_UNSET"
	}
}

// CreateAgentAction registers the signer as a new Agent.
type CreateAgentAction struct {
	Name string `json:"name"`
}

// CreateRecordTypeAction registers a new RecordType schema.
type CreateRecordTypeAction struct {
	Name       string           `json:"name"`
	Properties []PropertySchema `json:"properties"`
}

// CreateRecordAction creates a new Record of an existing RecordType.
type CreateRecordAction struct {
	RecordID   string          `json:"record_id"`
	RecordType string          `json:"record_type"`
	Properties []PropertyValue `json:"properties"`
}

// FinalizeRecordAction marks a Record as final.
type FinalizeRecordAction struct {
	RecordID string `json:"record_id"`
}

// UpdatePropertiesAction appends reported values to one or more properties
// of a Record.
type UpdatePropertiesAction struct {
	RecordID   string          `json:"record_id"`
	Properties []PropertyValue `json:"properties"`
}

// CreateProposalAction offers a role transfer on a Record to another agent.
type CreateProposalAction struct {
	RecordID       string       `json:"record_id"`
	ReceivingAgent string       `json:"receiving_agent"`
	Role           ProposalRole `json:"role"`
	Properties     []string     `json:"properties"`
}

// AnswerProposalResponse is the disposition an AnswerProposalAction applies
// to the matching OPEN proposal.
type AnswerProposalResponse int

const (
	ResponseUnspecified AnswerProposalResponse = iota
	ResponseAccept
	ResponseReject
	ResponseCancel
)

// AnswerProposalAction accepts, rejects, or cancels an OPEN proposal.
type AnswerProposalAction struct {
	RecordID       string                 `json:"record_id"`
	ReceivingAgent string                 `json:"receiving_agent"`
	Role           ProposalRole           `json:"role"`
	Response       AnswerProposalResponse `json:"response"`
}

// RevokeReporterAction deauthorizes an existing reporter on one or more
// properties of a Record.
type RevokeReporterAction struct {
	RecordID   string   `json:"record_id"`
	ReporterID string   `json:"reporter_id"`
	Properties []string `json:"properties"`
}

// SCPayload is the decoded, tagged action union every transaction carries.
// Exactly one of the action-specific fields is populated, selected by Action.
type SCPayload struct {
	Action           ActionTag               `json:"action"`
	Timestamp        uint64                  `json:"timestamp"`
	CreateAgent      *CreateAgentAction      `json:"create_agent,omitempty"`
	CreateRecordType *CreateRecordTypeAction `json:"create_record_type,omitempty"`
	CreateRecord     *CreateRecordAction     `json:"create_record,omitempty"`
	FinalizeRecord   *FinalizeRecordAction   `json:"finalize_record,omitempty"`
	UpdateProperties *UpdatePropertiesAction `json:"update_properties,omitempty"`
	CreateProposal   *CreateProposalAction   `json:"create_proposal,omitempty"`
	AnswerProposal   *AnswerProposalAction   `json:"answer_proposal,omitempty"`
	RevokeReporter   *RevokeReporterAction   `json:"revoke_reporter,omitempty"`
}

// DecodePayload parses raw transaction payload bytes into an SCPayload and
// runs the Payload Decoder's structural validation. It never checks existence
// or authorization — that is every handler's job.
func DecodePayload(raw []byte) (*SCPayload, error) {
	var p SCPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, invalidf("Cannot deserialize payload")
	}
	if err := p.validateStructure(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *SCPayload) validateStructure() error {
	if p.Timestamp == 0 {
		return invalidf("Timestamp must be set")
	}
	switch p.Action {
	case ActionCreateAgent:
		if p.CreateAgent == nil || p.CreateAgent.Name == "" {
			return invalidf("Agent name cannot be an empty string")
		}
	case ActionCreateRecord:
		if p.CreateRecord == nil || p.CreateRecord.RecordID == "" {
			return invalidf("Record id cannot be empty string")
		}
	case ActionFinalizeRecord:
		if p.FinalizeRecord == nil {
			return invalidf("Request must contain a payload")
		}
	case ActionCreateRecordType:
		if p.CreateRecordType == nil || p.CreateRecordType.Name == "" {
			return invalidf("Record Type name cannot be an empty string")
		}
		if len(p.CreateRecordType.Properties) == 0 {
			return invalidf("Record type must have at least one property")
		}
		for _, prop := range p.CreateRecordType.Properties {
			if prop.Name == "" {
				return invalidf("Property name cannot be an empty string")
			}
		}
	case ActionUpdateProperties:
		if p.UpdateProperties == nil {
			return invalidf("Request must contain a payload")
		}
	case ActionCreateProposal:
		if p.CreateProposal == nil {
			return invalidf("Request must contain a payload")
		}
	case ActionAnswerProposal:
		if p.AnswerProposal == nil {
			return invalidf("Request must contain a payload")
		}
	case ActionRevokeReporter:
		if p.RevokeReporter == nil {
			return invalidf("Request must contain a payload")
		}
	default:
		return invalidf("Request must contain a payload")
	}
	return nil
}
