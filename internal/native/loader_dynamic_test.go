//go:build (linux || darwin) && !leia_nodynamic

package native

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingLibraryOnHost(t *testing.T) {
	cfg := Config{
		LibraryName: "libleia-does-not-exist.so",
		SearchPaths: []string{t.TempDir()},
	}
	n, err := Load(cfg)
	require.ErrorIs(t, err, ErrLibraryNotFound)
	require.IsType(t, Unavailable{}, n)
	require.Contains(t, err.Error(), filepath.Join(cfg.SearchPaths[0], cfg.LibraryName))
}
