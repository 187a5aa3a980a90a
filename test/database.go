package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path of a fresh SQLite database file. The directory is
// removed when the test ends.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("family-helper-%s.db", uuid.New()))
}
