// Package errs provides standardized error types for the distribution application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PreconditionFailedError: For when an operation is attempted in a forbidden state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The taxonomy maps one-to-one onto the failure classes of the order
// lifecycle: validation failures (bad quantity step, missing field),
// unknown objects (customer, order, shipment), and precondition
// failures (receiving an uninspected shipment, deleting a delivered
// one). A denied credit reservation is deliberately NOT an error and
// has no type here.
package errs
