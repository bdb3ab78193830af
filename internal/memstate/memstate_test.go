package memstate

import "testing"

func TestGetStateOnUnknownAddressReturnsNilNoError(t *testing.T) {
	s := New()
	v, err := s.GetState("nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil value, got %v", v)
	}
}

func TestSetStateThenGetStateRoundTrips(t *testing.T) {
	s := New()
	if err := s.SetState("addr-1", []byte("payload")); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	v, err := s.GetState("addr-1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if string(v) != "payload" {
		t.Fatalf("GetState = %q, want %q", v, "payload")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestGetStateReturnsACopyNotTheStoredSlice(t *testing.T) {
	s := New()
	if err := s.SetState("addr-1", []byte("payload")); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	v, err := s.GetState("addr-1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	v[0] = 'X'

	again, err := s.GetState("addr-1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if string(again) != "payload" {
		t.Fatalf("mutating a returned value corrupted stored state: %q", again)
	}
}
