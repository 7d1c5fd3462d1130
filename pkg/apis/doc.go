// Package apis provides API type definitions for provisio resources.
//
// This package contains versioned API types:
//
//   - scenario: Test scenario configuration types for provisio declarative
//     configuration
//
// The API types are designed to be serializable to YAML and support
// declarative configuration workflows.
package apis
