package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxkit/pkg/document"
	"github.com/go-drift/boxkit/pkg/geometry"
)

// FileName is the project configuration file looked up in the project root.
const FileName = "boxkit.yaml"

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "BOXKIT_CONFIG"

// Defaults applied when the config leaves a value unset.
const (
	DefaultCanvasWidth  = 375
	DefaultCanvasHeight = 667
	DefaultOutputDir    = "boxkit-out"
	DefaultScale        = 1
)

// Config represents the optional boxkit.yaml configuration.
type Config struct {
	Canvas CanvasConfig    `yaml:"canvas"`
	Output OutputConfig    `yaml:"output"`
	Flags  map[string]bool `yaml:"flags,omitempty"`
	Color  *bool           `yaml:"color,omitempty"`
}

// CanvasConfig is the fallback canvas for documents that don't declare one.
type CanvasConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// OutputConfig controls rendered output.
type OutputConfig struct {
	Dir   string  `yaml:"dir,omitempty"`
	Scale float64 `yaml:"scale,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ConfigPath string
	ModulePath string
	Canvas     geometry.Size
	OutputDir  string
	Scale      float64
	Flags      document.Flags
	Color      bool
}

// LoadOptional reads boxkit.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadFile reads the config at path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the configuration for the project at dir and applies
// defaults. The config path is, in order of priority: override, the
// BOXKIT_CONFIG environment variable, then dir/boxkit.yaml if it exists.
func Resolve(dir, override string) (*Resolved, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile(path)
	} else {
		cfg, err = LoadOptional(dir)
		if _, statErr := os.Stat(filepath.Join(dir, FileName)); statErr == nil {
			path = filepath.Join(dir, FileName)
		}
	}
	if err != nil {
		return nil, err
	}

	if cfg.Canvas.Width < 0 || cfg.Canvas.Height < 0 {
		return nil, fmt.Errorf("canvas size cannot be negative (got %vx%v)", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Output.Scale < 0 {
		return nil, fmt.Errorf("output.scale cannot be negative (got %v)", cfg.Output.Scale)
	}

	canvas := geometry.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	if canvas.Width == 0 {
		canvas.Width = DefaultCanvasWidth
	}
	if canvas.Height == 0 {
		canvas.Height = DefaultCanvasHeight
	}

	outputDir := strings.TrimSpace(cfg.Output.Dir)
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(dir, outputDir)
	}

	scale := cfg.Output.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	color := true
	if cfg.Color != nil {
		color = *cfg.Color
	}

	return &Resolved{
		Root:       dir,
		ConfigPath: path,
		ModulePath: modulePath(dir),
		Canvas:     canvas,
		OutputDir:  outputDir,
		Scale:      scale,
		Flags:      document.Flags(cfg.Flags).Merge(nil),
		Color:      color,
	}, nil
}

// FindProjectRoot walks up from start to the nearest directory holding
// boxkit.yaml or go.mod. It returns start when neither is found.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for cur := dir; ; {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir, nil
		}
		cur = parent
	}
}

// modulePath returns the module declared by dir/go.mod, or "" without one.
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}
