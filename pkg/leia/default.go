package leia

import (
	"context"
	"sync"
)

var (
	defaultOnce    sync.Once
	defaultAdapter *Adapter
)

// Default returns the process-wide adapter. The first call probes the library
// using DefaultConfig with environment overrides; later calls return the same
// adapter and never probe again.
func Default() *Adapter {
	defaultOnce.Do(func() {
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		defaultAdapter = New(context.Background(), cfg)
	})
	return defaultAdapter
}
