package supplychain

// TransactionContext is the host abstraction this family depends on. The
// ledger host implements it; the family only ever reads and writes through
// it, narrowed to the two operations this family actually needs.
type TransactionContext interface {
	// GetState returns the raw bytes stored at address, or (nil, nil) if
	// nothing is stored there. A non-nil error indicates a host I/O
	// failure and is surfaced to the caller as an InternalError.
	GetState(address string) ([]byte, error)

	// SetState writes value at address, replacing any prior contents.
	SetState(address string, value []byte) error
}
