// Package validator provides interfaces for configuration file validation.
//
// This package defines the Validator interface and the common validation
// types used by document validators for ensuring configuration correctness.
//
// Key functionality:
//   - Validator[T]: Generic interface for configuration validation
//   - ValidationResult: Structured validation results with errors and warnings
//   - ValidationError: Detailed finding with field path, message, and fix suggestion
//
// Subpackages:
//   - scenario: test scenario document validator
package validator
