// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Value errors raised by domain constructors: ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError
//   - Lifecycle errors surfaced to callers: ValidationError (with an optional
//     field), ObjectNotFoundError, AuthorizationError, AuthenticationError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works
//
// ObjectNotFoundError is deliberately used both for "does not exist" and for
// "exists but belongs to someone else". The HTTP adapter maps both to 404.
package errs
