// Package logging provides a minimal logging facade for the leia adapter.
//
// The Logger interface wraps the subset of log/slog the adapter needs so that
// host applications can route the two load events (and the few debug events
// around mode switches) into whatever logging system they already run:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	adapter := leia.New(cfg, leia.WithLogger(logging.New(slog.New(handler))))
//
// Tests that do not care about log output can use Discard.
package logging
