// Package config handles tool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubeatlas/internal/atlas"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all tool settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds STL conversion settings.
type ConvertConfig struct {
	Input            string `yaml:"input"`              // STL model to read
	Output           string `yaml:"output"`             // Viewer script to write
	VarName          string `yaml:"var_name"`           // Script variable bound to the model
	Print            bool   `yaml:"print"`              // Also dump the JSON object to stdout
	IgnoreSolidNames bool   `yaml:"ignore_solid_names"` // Skip solid/endsolid name lines
}

// AtlasConfig holds atlas composition settings.
type AtlasConfig struct {
	FacesDir  string           `yaml:"faces_dir"`
	FaceExt   string           `yaml:"face_ext"`
	AtlasPath string           `yaml:"atlas_path"` // Shared atlas, rewritten in place
	Dim       int              `yaml:"dim"`        // Side of the square region replaced
	Resample  string           `yaml:"resample"`
	BlockOut  string           `yaml:"block_out"` // Optional standalone copy of the composed block
	Faces     []atlas.FaceSpec `yaml:"faces"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Input:            "school.stl",
			Output:           "../school.js",
			VarName:          "school",
			Print:            false,
			IgnoreSolidNames: true,
		},
		Atlas: AtlasConfig{
			FacesDir:  "face_images",
			FaceExt:   "png",
			AtlasPath: "../texture_atlas.png",
			Dim:       2048,
			Resample:  "catmullrom",
			Faces:     atlas.DefaultFaces(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Atlas.Dim < atlas.Grid {
		return fmt.Errorf("%w: atlas dim %d is smaller than %d", ErrInvalidConfig, c.Atlas.Dim, atlas.Grid)
	}
	if _, err := atlas.ParseFilter(c.Atlas.Resample); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := atlas.ValidateFaces(c.Atlas.Faces); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
