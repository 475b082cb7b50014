package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns a unique database file path that is cleaned up with
// the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String())
}
