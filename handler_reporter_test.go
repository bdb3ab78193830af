package supplychain

import (
	"testing"

	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/memstate"
)

func TestRevokeReporterDeauthorizesAndBlocksFurtherUpdates(t *testing.T) {
	state := NewState(memstate.New())
	createWidgetRecord(t, state, "owner-1", "widget-1")

	err := handleRevokeReporter(RevokeReporterAction{
		RecordID:   "widget-1",
		ReporterID: "owner-1",
		Properties: []string{"color"},
	}, "owner-1", state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prop, _, err := state.GetProperty("widget-1", "color")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if len(prop.Reporters) != 1 || prop.Reporters[0].Authorized {
		t.Fatalf("expected reporter to be deauthorized, got %+v", prop.Reporters)
	}

	err = handleUpdateProperties(UpdatePropertiesAction{
		RecordID:   "widget-1",
		Properties: []PropertyValue{{Name: "color", DataType: TypeString, StringValue: "blue"}},
	}, "owner-1", 99, state)
	if err == nil {
		t.Fatal("expected an error updating a property with a revoked reporter")
	}
}

func TestRevokeReporterRejectsNonOwnerSigner(t *testing.T) {
	state := NewState(memstate.New())
	createWidgetRecord(t, state, "owner-1", "widget-1")
	registerAgent(t, state, "mallory", "mallory", 5)

	err := handleRevokeReporter(RevokeReporterAction{
		RecordID:   "widget-1",
		ReporterID: "owner-1",
		Properties: []string{"color"},
	}, "mallory", state)
	if err == nil {
		t.Fatal("expected an error revoking a reporter as a non-owner signer")
	}
}

func TestRevokeReporterRejectsAlreadyUnauthorizedReporter(t *testing.T) {
	state := NewState(memstate.New())
	createWidgetRecord(t, state, "owner-1", "widget-1")
	action := RevokeReporterAction{RecordID: "widget-1", ReporterID: "owner-1", Properties: []string{"color"}}
	if err := handleRevokeReporter(action, "owner-1", state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handleRevokeReporter(action, "owner-1", state); err == nil {
		t.Fatal("expected an error revoking an already-unauthorized reporter")
	}
}
