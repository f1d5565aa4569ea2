// Package compositor abstracts the display compositor's LUT interface so the
// numerically pure core can be exercised without a real compositor present.
package compositor

import "context"

// Interface is the narrow capability the orchestrator needs: push a LUT file
// or clear the active one. Implementations may block or fail; neither call
// retries.
type Interface interface {
	// SetLook makes the compositor apply the LUT container at path to
	// every rendered frame.
	SetLook(ctx context.Context, path string) error

	// ClearLook removes the active LUT. Clearing when no LUT is applied
	// is not an error.
	ClearLook(ctx context.Context) error
}
