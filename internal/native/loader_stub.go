//go:build !(linux || darwin) || leia_nodynamic

package native

// No dynamic loader on this platform; Load always reports ErrNotBuilt.
var platformLibrary dynamicLibrary
