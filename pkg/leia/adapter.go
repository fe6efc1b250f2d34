package leia

import (
	"context"
	"image"
	"sync"

	"github.com/moonlight-stereo/leia-go/internal/native"
	"github.com/moonlight-stereo/leia-go/pkg/leia/logging"
)

// Native is the capability surface of the display library. The adapter holds
// exactly one implementation, chosen when it is built.
type Native interface {
	IsStereoPair(left, right image.Image) bool
	SetMode(on bool, mode int)
	Close() error
}

// Probe opens the display library. A non-nil error marks the library
// unavailable.
type Probe func(cfg Config) (Native, error)

// Option customizes New.
type Option func(*options)

type options struct {
	logger logging.Logger
	probe  Probe
}

// WithLogger routes the adapter's log events to logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithProbe replaces the dynamic loader. Hosts embedding the display library
// statically, and tests, use it to supply their own Native.
func WithProbe(p Probe) Option {
	return func(o *options) { o.probe = p }
}

// WithNative skips probing and binds n as an already loaded library.
func WithNative(n Native) Option {
	return WithProbe(func(Config) (Native, error) { return n, nil })
}

// Adapter tracks the availability of the display library and the last 3D
// mode applied to it.
type Adapter struct {
	logger logging.Logger

	libraryLoaded bool
	available     bool
	loadErr       error

	mu        sync.Mutex
	native    Native
	current3D bool
	closed    bool
}

// New probes the display library once. It never fails: a probe error is
// logged at warn level and leaves the adapter unavailable.
func New(ctx context.Context, cfg Config, opts ...Option) *Adapter {
	o := options{probe: LoadNative}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.New(nil)
	}

	a := &Adapter{logger: o.logger.With("library", cfg.LibraryName)}
	n, err := safeProbe(o.probe, cfg)
	if err != nil || n == nil {
		if err == nil {
			err = ErrLibraryNotFound
		}
		a.loadErr = unavailable("load", err)
		a.native = native.Unavailable{Err: err}
		a.logger.Warn(ctx, "leia library not available", logging.Err(err))
		return a
	}

	a.native = n
	a.libraryLoaded = true
	a.available = true
	a.logger.Info(ctx, "leia library loaded")
	return a
}

// safeProbe turns a panicking loader into an ordinary load failure.
func safeProbe(p Probe, cfg Config) (n Native, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = nil
			err = &Error{Op: "probe", Err: panicError{r}}
		}
	}()
	return p(cfg)
}

// IsAvailable reports whether the display library was loaded.
func (a *Adapter) IsAvailable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.available
}

// LibraryLoaded reports whether the probe bound the native library.
func (a *Adapter) LibraryLoaded() bool {
	return a.libraryLoaded
}

// LoadErr returns the probe failure, or nil when the library loaded.
func (a *Adapter) LoadErr() error {
	return a.loadErr
}

// IsStereoPair forwards both halves to the display library and returns its
// verdict unchanged. Callers are expected to check IsAvailable first; an
// unavailable adapter always answers false.
func (a *Adapter) IsStereoPair(left, right image.Image) bool {
	a.mu.Lock()
	n := a.native
	a.mu.Unlock()
	return n.IsStereoPair(left, right)
}

// Set3DMode switches the display into or out of 3D. The call is dropped when
// the library is unavailable or the display is already in the requested
// state.
func (a *Adapter) Set3DMode(enable bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.available || enable == a.current3D {
		return
	}
	mode := 0
	if enable {
		mode = 1
	}
	a.native.SetMode(enable, mode)
	a.current3D = enable
	a.logger.Debug(context.Background(), "leia 3D mode set", "enabled", enable, "mode", mode)
}

// Is3DEnabled returns the last mode applied through Set3DMode.
func (a *Adapter) Is3DEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current3D
}

// Close releases the display library. The adapter reports unavailable
// afterwards. A second call returns ErrClosed.
func (a *Adapter) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	a.closed = true
	a.available = false
	err := a.native.Close()
	a.native = native.Unavailable{Err: ErrClosed}
	if err != nil {
		return &Error{Op: "close", Err: err}
	}
	return nil
}

// LoadNative runs the dynamic-library probe New uses by default. Hosts wrap
// its result and hand it back through WithProbe.
func LoadNative(cfg Config) (Native, error) {
	return native.Load(cfg.toNative())
}
