//go:build (linux || darwin) && !leia_nodynamic

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

var platformLibrary dynamicLibrary = puregoLibrary{}

type puregoLibrary struct{}

func (puregoLibrary) open(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, fmt.Errorf("dlopen returned a nil handle")
	}
	return h, nil
}

func (puregoLibrary) bind(handle uintptr) (symbols, error) {
	var syms symbols
	onPtr, err := purego.Dlsym(handle, symbol3DOn)
	if err != nil || onPtr == 0 {
		return syms, fmt.Errorf("%w: %s", ErrSymbolMissing, symbol3DOn)
	}
	offPtr, err := purego.Dlsym(handle, symbol3DOff)
	if err != nil || offPtr == 0 {
		return syms, fmt.Errorf("%w: %s", ErrSymbolMissing, symbol3DOff)
	}
	purego.RegisterFunc(&syms.on, onPtr)
	purego.RegisterFunc(&syms.off, offPtr)
	return syms, nil
}

func (puregoLibrary) close(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
