// Package leia exposes the Leia stereoscopic display library to a host
// application.
//
// An Adapter probes the native library exactly once when it is built. If the
// probe fails the adapter stays usable: IsAvailable reports false, Set3DMode
// becomes a no-op and Is3DEnabled stays false for the adapter's lifetime.
//
//	adapter := leia.New(ctx, leia.DefaultConfig())
//	if adapter.IsAvailable() {
//	    left, right, _ := sbs.Split(frame)
//	    adapter.Set3DMode(adapter.IsStereoPair(left, right))
//	}
//
// Hosts that want the process-wide adapter the display layer shares use
// Default. All mode changes should go through Set3DMode so redundant hardware
// switches are suppressed.
package leia
