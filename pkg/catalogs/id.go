package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// PlaceholderPrefix marks locally synthesized head/tail IDs. The
	// authoritative source never assigns IDs in this range.
	PlaceholderPrefix = "ff"

	// UnknownID is the sentinel for identity fields that could not be
	// determined at all.
	UnknownID = "00000000"
)

// SynthesizeID derives a deterministic placeholder identity from a raw
// listing name. The head is "ff" plus the first six hex characters of the
// name's SHA-256; the tail is "ff" plus the next six. The same name always
// yields the same identity, so repeated runs converge on one placeholder
// per unmatched listing instead of accumulating duplicates.
func SynthesizeID(name string) (head, tail string) {
	sum := sha256.Sum256([]byte(name))
	digest := hex.EncodeToString(sum[:])
	return PlaceholderPrefix + digest[0:6], PlaceholderPrefix + digest[6:12]
}
