package repository_test

import (
	"os"
	"testing"

	"peakform-backend/internal/testutils"
)

// TestMain tears down the shared Postgres container after all repository
// suites in this package have run.
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
