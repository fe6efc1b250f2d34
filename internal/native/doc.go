// Package native binds the Leia display library at runtime.
//
// Load probes the configured shared library once and returns one of two
// variants behind the Native interface: a Loaded binding that drives the
// display through leiaSet3DOn/leiaSet3DOff, or an Unavailable placeholder
// whose calls are no-ops. Callers never branch on the load outcome beyond
// the returned error.
//
// Dynamic loading goes through purego, so cgo is not required. Platforms
// without a dynamic loader (or builds tagged leia_nodynamic) compile a stub
// that always reports ErrNotBuilt.
package native
