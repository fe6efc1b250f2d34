package native

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/moonlight-stereo/leia-go/pkg/leia/sbs"
)

// Load opens the display library described by cfg. It returns the Loaded
// variant on success. On failure it returns an Unavailable variant carrying
// the error, together with that error, so callers may keep using the result.
func Load(cfg Config) (Native, error) {
	return load(cfg, platformLibrary)
}

func load(cfg Config, dl dynamicLibrary) (Native, error) {
	if dl == nil {
		return Unavailable{Err: ErrNotBuilt}, ErrNotBuilt
	}

	var errs []error
	for _, path := range Candidates(cfg) {
		h, err := dl.open(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		syms, err := dl.bind(h)
		if err != nil {
			_ = dl.close(h)
			err = fmt.Errorf("%s: %w", path, err)
			return Unavailable{Err: err}, err
		}
		return &Loaded{
			path:     path,
			handle:   h,
			syms:     syms,
			dl:       dl,
			detector: cfg.Detector,
		}, nil
	}

	err := fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
	return Unavailable{Err: err}, err
}

// Candidates lists the paths Load tries, in order: every search path joined
// with the library name, then the bare name for the runtime linker.
func Candidates(cfg Config) []string {
	name := cfg.LibraryName
	if name == "" {
		name = DefaultLibraryName
	}
	if filepath.IsAbs(name) {
		return []string{name}
	}
	out := make([]string, 0, len(cfg.SearchPaths)+1)
	for _, dir := range cfg.SearchPaths {
		if dir == "" {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	return append(out, name)
}

// Loaded is a bound display library.
type Loaded struct {
	path     string
	detector sbs.Detector
	dl       dynamicLibrary

	mu     sync.Mutex
	handle uintptr
	syms   symbols
	closed bool
}

// Path returns the path the library was opened from.
func (l *Loaded) Path() string { return l.path }

func (l *Loaded) IsStereoPair(left, right image.Image) bool {
	return l.detector.IsStereoPair(left, right)
}

func (l *Loaded) SetMode(on bool, mode int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	if on {
		l.syms.on(int32(mode))
		return
	}
	l.syms.off()
}

func (l *Loaded) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	h := l.handle
	l.handle = 0
	l.syms = symbols{}
	return l.dl.close(h)
}

// Unavailable stands in for a library that failed to load.
type Unavailable struct {
	Err error
}

func (Unavailable) IsStereoPair(image.Image, image.Image) bool { return false }

func (Unavailable) SetMode(bool, int) {}

func (Unavailable) Close() error { return nil }
