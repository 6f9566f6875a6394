package commands

import (
	"errors"
	"time"

	"gruberoo/internal/pkg/guard"
)

var (
	ErrBulkProcessCommandIsNotConstructed = errors.New(
		"BulkProcessCommand must be created via NewBulkProcessCommand constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// DefaultTriageThreshold is how close to its delivery time a pending order
// may get before the bulk sweep rejects it instead of confirming it.
const DefaultTriageThreshold = time.Hour

// BulkProcessResult summarizes one bulk triage sweep across all restaurants.
// InspectedPercent relates the inspected count to the whole order ledger,
// archived orders included.
type BulkProcessResult struct {
	Inspected        int
	MovedToPreparing int
	Rejected         int
	InspectedPercent float64
}

// BulkProcessCommand represents a request to sweep every restaurant queue
// once, auto-triaging pending orders against the delivery-time threshold.
type BulkProcessCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewBulkProcessCommand creates a command to run a bulk triage sweep.
// The threshold must be positive; use DefaultTriageThreshold for the
// standard one-hour cutoff.
func NewBulkProcessCommand(threshold time.Duration) (BulkProcessCommand, error) {
	cmd := BulkProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setThreshold(threshold); err != nil {
		return BulkProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkProcessCommandIsNotConstructed if validation fails.
func (c BulkProcessCommand) Validate() error {
	return c.guard.Validate(ErrBulkProcessCommandIsNotConstructed)
}

// Threshold returns the delivery-time cutoff for rejecting pending orders.
func (c BulkProcessCommand) Threshold() time.Duration {
	return c.threshold
}

func (c *BulkProcessCommand) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	c.threshold = threshold
	return nil
}
