package supplychain

import (
	"github.com/google/uuid"
	"github.com/hyperledger-archives/sawtooth-supply-chain/addressing"
	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/telemetry"
)

// FamilyName is this transaction family's name.
const FamilyName = addressing.Family

// FamilyVersions lists the family versions this handler implements.
var FamilyVersions = []string{"1.1"}

// Namespaces lists the address prefixes this handler owns.
var Namespaces = []string{addressing.Namespace}

// TransactionHandler binds the family identity to the Payload Decoder and the
// eight action handlers.
type TransactionHandler struct{}

// NewTransactionHandler constructs the family's transaction handler.
func NewTransactionHandler() *TransactionHandler { return &TransactionHandler{} }

func (h *TransactionHandler) FamilyName() string       { return FamilyName }
func (h *TransactionHandler) FamilyVersions() []string { return FamilyVersions }
func (h *TransactionHandler) Namespaces() []string     { return Namespaces }

// Apply decodes payload, dispatches to the matching action handler, and writes
// through a State Accessor bound to ctx. Any returned error aborts the
// transaction with no state mutation; the host is responsible for rollback on
// a non-nil return.
func (h *TransactionHandler) Apply(payload []byte, signer string, ctx TransactionContext) error {
	requestID := uuid.NewString()

	decoded, err := DecodePayload(payload)
	if err != nil {
		telemetry.ApplyRejected(requestID, "unknown", err)
		return err
	}

	telemetry.ApplyStart(requestID, decoded.Action.String(), signer, decoded.Timestamp)

	state := NewState(ctx)
	if err := dispatch(decoded, signer, state); err != nil {
		telemetry.ApplyRejected(requestID, decoded.Action.String(), err)
		return err
	}

	telemetry.ApplyOK(requestID, decoded.Action.String())
	return nil
}

func dispatch(p *SCPayload, signer string, state *State) error {
	switch p.Action {
	case ActionCreateAgent:
		return handleCreateAgent(*p.CreateAgent, signer, p.Timestamp, state)
	case ActionCreateRecordType:
		return handleCreateRecordType(*p.CreateRecordType, signer, state)
	case ActionCreateRecord:
		return handleCreateRecord(*p.CreateRecord, signer, p.Timestamp, state)
	case ActionUpdateProperties:
		return handleUpdateProperties(*p.UpdateProperties, signer, p.Timestamp, state)
	case ActionFinalizeRecord:
		return handleFinalizeRecord(*p.FinalizeRecord, signer, state)
	case ActionCreateProposal:
		return handleCreateProposal(*p.CreateProposal, signer, p.Timestamp, state)
	case ActionAnswerProposal:
		return handleAnswerProposal(*p.AnswerProposal, signer, p.Timestamp, state)
	case ActionRevokeReporter:
		return handleRevokeReporter(*p.RevokeReporter, signer, state)
	default:
		return invalidf("Request must contain a payload")
	}
}
