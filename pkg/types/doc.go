// Package types defines the error and repair categories, the run result,
// and the repair policy shared by the validation engine and the CLI.
package types
