package supplychain

import (
	"testing"

	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/memstate"
)

func TestLoadContainerOnEmptyAddressIsEmpty(t *testing.T) {
	store := memstate.New()
	c, err := loadContainer[Agent](store, "deadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Entries) != 0 {
		t.Fatalf("expected empty container, got %d entries", len(c.Entries))
	}
}

func TestSetEntryThenGetEntryRoundTrips(t *testing.T) {
	store := memstate.New()
	addr := "feedface"
	agent := Agent{PublicKey: "pub-1", Name: "alice"}

	err := setEntry(store, addr, agent,
		func(a Agent) bool { return a.PublicKey == agent.PublicKey },
		func(a, b Agent) bool { return a.PublicKey < b.PublicKey },
	)
	if err != nil {
		t.Fatalf("setEntry: %v", err)
	}

	got, exists, err := getEntry(store, addr, func(a Agent) bool { return a.PublicKey == "pub-1" })
	if err != nil {
		t.Fatalf("getEntry: %v", err)
	}
	if !exists {
		t.Fatal("expected entry to exist")
	}
	if got.Name != "alice" {
		t.Fatalf("got.Name = %s, want alice", got.Name)
	}
}

// setEntry keeps the container's entries sorted and replaces any existing
// entry with the same identity rather than duplicating it.
func TestSetEntryKeepsContainerSortedAndDeduplicated(t *testing.T) {
	store := memstate.New()
	addr := "abc123"
	less := func(a, b Agent) bool { return a.PublicKey < b.PublicKey }
	match := func(key string) func(Agent) bool {
		return func(a Agent) bool { return a.PublicKey == key }
	}

	for _, a := range []Agent{
		{PublicKey: "charlie", Name: "c"},
		{PublicKey: "alice", Name: "a"},
		{PublicKey: "bob", Name: "b"},
	} {
		if err := setEntry(store, addr, a, match(a.PublicKey), less); err != nil {
			t.Fatalf("setEntry: %v", err)
		}
	}
	// Overwrite bob's entry; this must not create a second bob entry.
	if err := setEntry(store, addr, Agent{PublicKey: "bob", Name: "bob2"}, match("bob"), less); err != nil {
		t.Fatalf("setEntry overwrite: %v", err)
	}

	c, err := loadContainer[Agent](store, addr)
	if err != nil {
		t.Fatalf("loadContainer: %v", err)
	}
	if len(c.Entries) != 3 {
		t.Fatalf("expected 3 entries after overwrite, got %d", len(c.Entries))
	}
	want := []string{"alice", "bob", "charlie"}
	for i, e := range c.Entries {
		if e.PublicKey != want[i] {
			t.Fatalf("entries[%d].PublicKey = %s, want %s", i, e.PublicKey, want[i])
		}
	}
	for _, e := range c.Entries {
		if e.PublicKey == "bob" && e.Name != "bob2" {
			t.Fatalf("bob entry not overwritten: %+v", e)
		}
	}
}

func TestDecodeContainerRejectsMalformedBytes(t *testing.T) {
	_, err := decodeContainer[Agent]([]byte("not json"))
	if err == nil {
		t.Fatal("expected an error for malformed container bytes")
	}
	var ie *InternalError
	if ok := asInternalError(err, &ie); !ok {
		t.Fatalf("expected *InternalError, got %T (%v)", err, err)
	}
}

func asInternalError(err error, target **InternalError) bool {
	ie, ok := err.(*InternalError)
	if !ok {
		return false
	}
	*target = ie
	return true
}
