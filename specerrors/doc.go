// Package specerrors provides structured error types for the swagspec library.
//
// Import path: github.com/swagspec/swagspec/specerrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between the structural
// validation failures the document model can report and handle each one
// appropriately.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [KindMismatchError]: an attribute or item descriptor built for one
//     schema dialect attached to an entity of an incompatible dialect
//   - [DuplicateParameterError]: two parameters in the same PathItem or
//     Operation list sharing a (name, in) pair
//   - [ReferenceNotFoundError]: a reference key absent from the document's
//     definitions table at resolution time
//   - [RequiredFlagError]: a path-location parameter declared with
//     required=false
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrKindMismatch]: Matches any [KindMismatchError]
//   - [ErrDuplicateParameter]: Matches any [DuplicateParameterError]
//   - [ErrReferenceNotFound]: Matches any [ReferenceNotFoundError]
//   - [ErrInvalidRequiredFlag]: Matches any [RequiredFlagError]
//   - [ErrValidation]: Matches all of the above
//
// The builder package reports its assembly failures under a separate
// sentinel, [ErrConfig], so callers can tell construction-time configuration
// mistakes apart from structural validation of a finished document.
//
// All four categories are local, structural validation errors. They are
// returned synchronously from the offending construction or mutation, are
// never retried, and are never fatal: callers handle them as ordinary values.
//
//	if err := item.AddParameter(p); err != nil {
//	    if errors.Is(err, specerrors.ErrDuplicateParameter) {
//	        // drop or rename the parameter
//	    }
//	}
package specerrors
