// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages:
//
//   - cli/cmd: The provisio command tree
//   - cli/helpers: Flag handling utilities including timing detection
package cli
