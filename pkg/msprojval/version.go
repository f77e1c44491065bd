// Package msprojval exposes the tool version.
package msprojval

// Version is the current release version of msprojval.
const Version = "1.1.0"
