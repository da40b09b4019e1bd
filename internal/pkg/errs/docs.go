// Package errs provides standardized error types for the tailoring
// marketplace core. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValueIsRequiredError: a required value is missing (caller's fault)
//   - ValueIsInvalidError: a value is malformed (caller's fault)
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - VersionConflictError: a conditional write lost a concurrent race
//   - StorageError: the backing store failed, including timeouts
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for single-line formatting and Unwrap() returning the sentinel
//
// State-machine errors (invalid transition, no further transition) are not
// defined here: they belong to the order domain package, which owns the
// transition graph they describe.
package errs
