package supplychain

import (
	"encoding/json"
	"sort"
)

// container is the on-chain encoding at one address: a list of entries
// disambiguated by identity, because truncated-hash addresses can collide
// between unrelated identifiers. Using one generic shape for every entity
// kind avoids duplicating the read-modify-write/sort logic per entity.
type container[T any] struct {
	Entries []T `json:"entries"`
}

// decodeContainer parses raw bytes into a container[T]. Empty/nil bytes decode
// to an empty container (nothing stored at this address yet, which is not an
// error — see loadContainer). Malformed bytes are an InternalError: the state
// at this address is corrupt, and corruption is not locally recoverable.
func decodeContainer[T any](raw []byte) (container[T], error) {
	var c container[T]
	if len(raw) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return container[T]{}, wrapInternal("decode container", err)
	}
	return c, nil
}

func encodeContainer[T any](c container[T]) ([]byte, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, wrapInternal("encode container", err)
	}
	return raw, nil
}

// loadContainer reads and decodes the container at address. Absence of
// state is reported as an empty container, not an error.
func loadContainer[T any](ctx TransactionContext, address string) (container[T], error) {
	raw, err := ctx.GetState(address)
	if err != nil {
		return container[T]{}, wrapInternal("read state", err)
	}
	return decodeContainer[T](raw)
}

func storeContainer[T any](ctx TransactionContext, address string, c container[T]) error {
	raw, err := encodeContainer(c)
	if err != nil {
		return err
	}
	if err := ctx.SetState(address, raw); err != nil {
		return wrapInternal("write state", err)
	}
	return nil
}

// getEntry scans the container at address for the first entry matching
// match, returning (zero, false, nil) if the address has no such entry.
func getEntry[T any](ctx TransactionContext, address string, match func(T) bool) (T, bool, error) {
	c, err := loadContainer[T](ctx, address)
	if err != nil {
		var zero T
		return zero, false, err
	}
	for _, e := range c.Entries {
		if match(e) {
			return e, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// setEntry performs the container's read-modify-write: decode, drop any entry
// with the same identity as entity, append entity, sort the whole list with
// less, and write back.
func setEntry[T any](ctx TransactionContext, address string, entity T, match func(T) bool, less func(a, b T) bool) error {
	c, err := loadContainer[T](ctx, address)
	if err != nil {
		return err
	}
	kept := c.Entries[:0:0]
	for _, e := range c.Entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entity)
	sort.SliceStable(kept, func(i, j int) bool { return less(kept[i], kept[j]) })
	c.Entries = kept
	return storeContainer(ctx, address, c)
}
