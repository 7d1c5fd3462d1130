// Package fsutil provides filesystem primitives shared by the generator and
// scaffolder packages.
//
// Key functionality:
//   - File writing: TryWriteFile
//   - Path operations: ExpandHomePath
//
// This package has no dependencies on other provisio packages.
package fsutil
