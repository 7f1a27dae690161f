package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status is the closed set of lifecycle states for an order.
//
// State transitions:
//
//	Draft ⇄ Active ⇄ Inactive ──> Deleted
//
// Any transition among the valid states is permitted by the domain; callers
// restrict the allowed target set per operation (creation only accepts Draft
// or Active). Deleted is terminal for read visibility: a deleted order stays
// in the store but is hidden from every read path.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a provisional order not yet in effect.
	Draft

	// Active is an order currently in effect.
	Active

	// Inactive is an order taken out of effect without deleting it.
	Inactive

	// Deleted marks the order as soft-deleted. The row remains in the
	// store; reads exclude it unconditionally.
	Deleted
)

// getStatusTokens returns the wire token for every valid Status.
// Unknown is intentionally excluded: it has no wire representation.
func getStatusTokens() map[Status]string {
	return map[Status]string{
		Draft:    "draft",
		Active:   "active",
		Inactive: "inactive",
		Deleted:  "delete",
	}
}

// ParseStatus resolves a wire token to its Status, ignoring case.
// The token must match exactly otherwise; surrounding whitespace is an error.
func ParseStatus(token string) (Status, error) {
	for status, candidate := range getStatusTokens() {
		if strings.EqualFold(candidate, token) {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationError("Status", fmt.Sprintf("'%s' is not a recognized status", token))
}

// Validate checks that the Status is one of the valid states.
func (s Status) Validate() error {
	if _, ok := getStatusTokens()[s]; !ok {
		return errs.NewValidationError("Status", fmt.Sprintf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire token for valid statuses and "unknown" otherwise.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if token, ok := getStatusTokens()[s]; ok {
		return token
	}
	return "unknown"
}

// IsDeleted reports whether the order is soft-deleted.
func (s Status) IsDeleted() bool {
	return s == Deleted
}
