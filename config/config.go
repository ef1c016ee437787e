// Package config loads the host application's startup configuration.
//
// The engine is configured exactly once, from this struct, when the host
// starts; nothing in the workbook layer keeps process-wide setup state.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log      Log      `yaml:"log"`
	Workbook Workbook `yaml:"workbook"`
	PDF      PDF      `yaml:"pdf"`
	Server   Server   `yaml:"server"`
}

// Log configures the logrus logger used by the CLI and server.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Font names a font family and point size.
type Font struct {
	Name string  `yaml:"name" validate:"required"`
	Size float64 `yaml:"size" validate:"gt=0,lte=409"`
}

// Workbook configures the spreadsheet engine adapter.
type Workbook struct {
	ApplyDefaultStyle bool   `yaml:"apply_default_style"`
	DefaultFont       Font   `yaml:"default_font"`
	TmpDir            string `yaml:"tmp_dir"`
	// UnzipXMLSizeLimit bounds how much worksheet XML is kept in memory
	// before the engine spills to TmpDir.
	UnzipXMLSizeLimit int64 `yaml:"unzip_xml_size_limit" validate:"gte=0"`
}

// PDF configures PDF export.
type PDF struct {
	Enabled     bool   `yaml:"enabled"`
	PaperSize   string `yaml:"paper_size" validate:"oneof=A3 A4 A5 Letter Legal"`
	Orientation string `yaml:"orientation" validate:"oneof=portrait landscape"`
}

// Server configures the HTTP export server.
type Server struct {
	Addr string `yaml:"addr" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "text"},
		Workbook: Workbook{
			ApplyDefaultStyle: true,
			DefaultFont:       Font{Name: "Calibri", Size: 10},
			UnzipXMLSizeLimit: 512 << 20,
		},
		PDF: PDF{
			Enabled:     true,
			PaperSize:   "A4",
			Orientation: "portrait",
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
