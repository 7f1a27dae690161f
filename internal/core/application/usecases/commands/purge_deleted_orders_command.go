package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
	)
)

// PurgeDeletedOrdersCommand requests physical removal of soft-deleted orders
// whose last modification is older than the cutoff. This is the scheduled
// reconciliation between the soft-delete read filter and physical storage.
type PurgeDeletedOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a purge command with the given cutoff.
func NewPurgeDeletedOrdersCommand(cutoff time.Time) (PurgeDeletedOrdersCommand, error) {
	if cutoff.IsZero() {
		return PurgeDeletedOrdersCommand{}, errs.NewValidationError("Cutoff", "Cutoff is required.")
	}

	return PurgeDeletedOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}

// Cutoff returns the purge cutoff time.
func (c PurgeDeletedOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
