// Package cmd wires the provisio command tree.
package cmd
