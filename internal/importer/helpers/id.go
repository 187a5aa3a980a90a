package helpers

import (
	"crypto/sha256"

	"github.com/google/uuid"
)

// StableID derives the ID of an imported record from its legacy ID.
//
// The same legacy ID always maps to the same UUID within a namespace, so
// references between imported records survive the import.
func StableID(namespace uuid.UUID, legacyID string) uuid.UUID {
	return uuid.NewHash(sha256.New(), namespace, []byte(legacyID), 5)
}
