// Package addressing derives the deterministic, content-addressed state
// keys used by the supply chain transaction family. Every function here is
// pure: given the same inputs it always returns the same 70-character
// lowercase hex address, with no I/O and no shared state.
package addressing

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
)

// Family is the transaction family name this namespace belongs to.
const Family = "supply_chain"

// Entity-kind tags, two hex characters each, immediately following the
// namespace prefix in every address this package produces.
const (
	tagAgent      = "ae"
	tagProperty   = "ea"
	tagProposal   = "aa"
	tagRecord     = "ec"
	tagRecordType = "ee"
)

// Namespace is the first six hex characters of SHA-512(Family). It scopes
// every address this family writes in the ledger's global state tree.
var Namespace = hash(Family, 6)

// hash returns the first n hex characters of SHA-512(s), or "" if n exceeds
// the digest's hex length.
func hash(s string, n int) string {
	sum := sha512.Sum512([]byte(s))
	full := hex.EncodeToString(sum[:])
	if n > len(full) {
		return ""
	}
	return full[:n]
}

// Agent returns the address for the Agent identified by its signing public
// key.
func Agent(publicKey string) string {
	return Namespace + tagAgent + hash(publicKey, 62)
}

// Record returns the address for the Record identified by recordID.
func Record(recordID string) string {
	return Namespace + tagRecord + hash(recordID, 62)
}

// RecordType returns the address for the RecordType identified by name.
func RecordType(name string) string {
	return Namespace + tagRecordType + hash(name, 62)
}

// PropertyPageMin and PropertyPageMax bound the valid page range; page 0 is
// reserved for Property metadata itself.
const (
	PropertyPageMin = 1
	PropertyPageMax = 256
)

// PropertyPrefix returns the address range shared by every Property and
// PropertyPage belonging to recordID, before the property-name and page
// components are appended.
func PropertyPrefix(recordID string) string {
	return Namespace + tagProperty + hash(recordID, 36)
}

// pageHex formats page as a 4-digit, zero-padded, lowercase hex string.
func pageHex(page uint32) string {
	return fmt.Sprintf("%04x", page)
}

// Property returns the address of the Property metadata (page 0) for
// (recordID, propertyName).
func Property(recordID, propertyName string) string {
	return PropertyPrefix(recordID) + hash(propertyName, 22) + pageHex(0)
}

// PropertyPage returns the address of the given page (1..256) of reported
// values for (recordID, propertyName).
func PropertyPage(recordID, propertyName string, page uint32) string {
	return PropertyPrefix(recordID) + hash(propertyName, 22) + pageHex(page)
}

// Proposal returns the address of the proposal container for
// (recordID, agentID) — the receiving agent of the proposals it holds.
func Proposal(recordID, agentID string) string {
	return Namespace + tagProposal + hash(recordID, 36) + hash(agentID, 26)
}
