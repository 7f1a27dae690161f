// Package errs provides the typed error taxonomy for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines a closed set of error kinds, each carrying a stable Code
// that the HTTP boundary maps deterministically to a transport status:
//   - ValidationError: the first failing rule of a request (AE400)
//   - ObjectNotFoundError: an entity is absent or soft-deleted (AE404)
//   - UnauthenticatedError: no valid principal on the request (AE401)
//   - ForbiddenError: the principal lacks permission (AE403)
//   - GoneError: the entity is permanently unavailable (AE410)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with a WithCause variant where a cause is useful
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//   - ErrorCode() method exposing the stable code
//
// Errors raised inside the core are not handled locally; they propagate to the
// boundary where Code.HTTPStatus performs the table lookup. AllCodes exists so
// tests can assert the table stays exhaustive.
package errs
