package leia

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/moonlight-stereo/leia-go/internal/native"
	"github.com/moonlight-stereo/leia-go/pkg/leia/sbs"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLibrary     = "LEIA_LIBRARY"
	EnvLibraryPath = "LEIA_LIBRARY_PATH"
)

// Config expresses the knobs of the native probe and the side-by-side
// detector.
type Config struct {
	// LibraryName is the shared object to open. An absolute path skips the
	// search path entirely.
	LibraryName string `yaml:"library_name"`

	// SearchPaths are directories tried, in order, before falling back to the
	// runtime linker's own search.
	SearchPaths []string `yaml:"search_paths"`

	// DetectSize is the thumbnail edge length used for pair detection.
	DetectSize int `yaml:"detect_size"`

	// DetectThreshold is the similarity below which two halves count as a
	// stereo pair.
	DetectThreshold float64 `yaml:"detect_threshold"`
}

// DefaultConfig returns the configuration used by Default before environment
// overrides.
func DefaultConfig() Config {
	return Config{
		LibraryName:     native.DefaultLibraryName,
		DetectSize:      sbs.DefaultSize,
		DetectThreshold: sbs.DefaultThreshold,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &Error{Op: "config", Err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &Error{Op: "config", Err: fmt.Errorf("parse %s: %w", path, err)}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides the library name and search path from LEIA_LIBRARY and
// LEIA_LIBRARY_PATH when they are set.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvLibrary); ok && v != "" {
		c.LibraryName = v
	}
	if v, ok := os.LookupEnv(EnvLibraryPath); ok && v != "" {
		c.SearchPaths = filepath.SplitList(v)
	}
}

// Validate checks the detector settings.
func (c Config) Validate() error {
	if c.DetectSize < 1 {
		return &Error{Op: "config", Err: fmt.Errorf("%w: detect_size %d must be positive", ErrInvalidConfig, c.DetectSize)}
	}
	if c.DetectThreshold <= 0 || c.DetectThreshold > 1 {
		return &Error{Op: "config", Err: fmt.Errorf("%w: detect_threshold %g must be in (0, 1]", ErrInvalidConfig, c.DetectThreshold)}
	}
	return nil
}

func (c Config) toNative() native.Config {
	return native.Config{
		LibraryName: c.LibraryName,
		SearchPaths: c.SearchPaths,
		Detector:    c.detector(),
	}
}

func (c Config) detector() sbs.Detector {
	return sbs.Detector{Size: c.DetectSize, Threshold: c.DetectThreshold}
}
