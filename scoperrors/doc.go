// Package scoperrors provides structured error types for api-scoper.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of per-file failures and react accordingly.
//
// # Error Categories
//
//   - DecodeError: malformed JSON/YAML text
//   - ResourceLimitError: resource exhaustion (nesting depth, file size)
//   - ConfigError: invalid configuration or input options
//
// Note that an unrecognized document type is deliberately NOT an error: the
// scanner records it as a classification outcome instead. Malformed inner
// shapes are not errors either; extraction degrades them to zero
// contributions.
package scoperrors
