// Package internalcheck holds source-level policy tests for the module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and reject code that bypasses the adapter: dynamic loading outside
// internal/native, direct console output from library packages, and mode
// switches that skip Set3DMode's redundant-call suppression.
//
// It has no exported API and is not meant to be imported.
package internalcheck
