package fiber

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any test leaves a goroutine behind.
// A stub fiber must never start one.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
