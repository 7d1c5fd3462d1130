// Package io provides utilities for input and output operations related to
// configuration management.
//
// Subpackages:
//   - configmanager: Configuration loading and management
//   - generator: Configuration file generation
//   - marshaller: Serialization and deserialization
//   - scaffolder: Project scaffolding
//   - validator: Configuration validation
package io
