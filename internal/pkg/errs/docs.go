// Package errs provides the error taxonomy used throughout the order
// workflow: not-found, validation, range, requirement, and lifecycle
// transition failures.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with
//     errors.Is
//
// The HTTP adapter maps these sentinels onto status codes; core code never
// inspects error strings.
package errs
