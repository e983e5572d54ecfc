// Package grid_test contains the leak check for the grid tests.
package grid_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any test leaves a goroutine behind
// (range-over-func iteration must not spawn helpers).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
