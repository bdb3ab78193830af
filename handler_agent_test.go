package supplychain

import (
	"testing"

	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/memstate"
)

func TestHandleCreateAgentRegistersSigner(t *testing.T) {
	state := NewState(memstate.New())
	err := handleCreateAgent(CreateAgentAction{Name: "alice"}, "signer-1", 10, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	agent, exists, err := state.GetAgent("signer-1")
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if !exists {
		t.Fatal("expected agent to exist after CreateAgent")
	}
	if agent.Name != "alice" || agent.Timestamp != 10 {
		t.Fatalf("unexpected agent: %+v", agent)
	}
}

func TestHandleCreateAgentRejectsDuplicateSigner(t *testing.T) {
	state := NewState(memstate.New())
	if err := handleCreateAgent(CreateAgentAction{Name: "alice"}, "signer-1", 10, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := handleCreateAgent(CreateAgentAction{Name: "alice-again"}, "signer-1", 11, state)
	if err == nil {
		t.Fatal("expected an error registering the same signer twice")
	}
	if _, ok := err.(*InvalidTransactionError); !ok {
		t.Fatalf("expected *InvalidTransactionError, got %T", err)
	}
}
