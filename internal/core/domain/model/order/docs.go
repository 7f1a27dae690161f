// Package order contains the Order aggregate and its lifecycle Status.
//
// Order is the aggregate root of the ordering domain. It enforces the
// business invariants on name, quantity, price, and status, and owns the
// soft-delete rule: an order whose status is Deleted remains in the record
// store but is excluded from every read path.
//
// Status is a closed sum type with an explicit mapping to and from the wire
// tokens ("draft", "active", "inactive", "delete"); ParseStatus accepts
// tokens case-insensitively but otherwise exactly.
package order
