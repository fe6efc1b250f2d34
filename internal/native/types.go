package native

import (
	"errors"
	"image"

	"github.com/moonlight-stereo/leia-go/pkg/leia/sbs"
)

// DefaultLibraryName is the shared object shipped by Leia devices.
const DefaultLibraryName = "liblibleia.so"

const (
	symbol3DOn  = "leiaSet3DOn"
	symbol3DOff = "leiaSet3DOff"
)

var (
	// ErrNotBuilt reports that this binary was compiled without a dynamic
	// loader, so the display library can never be opened.
	ErrNotBuilt = errors.New("leia/internal/native: dynamic loading not built")

	// ErrLibraryNotFound reports that no candidate path could be opened.
	ErrLibraryNotFound = errors.New("leia/internal/native: library not found")

	// ErrSymbolMissing reports that the library opened but lacks one of the
	// required entry points.
	ErrSymbolMissing = errors.New("leia/internal/native: symbol missing")
)

// Config captures the parameters of the probe.
type Config struct {
	// LibraryName is the file name handed to the dynamic loader. Empty means
	// DefaultLibraryName.
	LibraryName string
	// SearchPaths are directories tried, in order, before the bare name.
	SearchPaths []string
	// Detector runs side-by-side detection for the Loaded variant.
	Detector sbs.Detector
}

// Native is the capability surface of the display library.
type Native interface {
	// IsStereoPair reports whether left and right form a side-by-side pair.
	IsStereoPair(left, right image.Image) bool
	// SetMode switches the panel into 3D mode (on) or back to 2D.
	SetMode(on bool, mode int)
	// Close releases the library handle.
	Close() error
}

// symbols holds the bound entry points of an opened library.
type symbols struct {
	on  func(mode int32)
	off func()
}

// dynamicLibrary abstracts the platform loader.
type dynamicLibrary interface {
	open(path string) (uintptr, error)
	bind(handle uintptr) (symbols, error)
	close(handle uintptr) error
}
