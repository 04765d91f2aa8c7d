// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/difflib/color"
	"github.com/antgroup/udiff/modules/streamio"
	"github.com/dustin/go-humanize"
)

const (
	ENV_UDIFF_CONFIG = "UDIFF_CONFIG"
	MiByte           = 1 << 20
	DefaultMaxSize   = 100 * MiByte
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Size struct {
	Size int64
}

func (s *Size) UnmarshalText(text []byte) error {
	n, err := humanize.ParseBytes(string(text))
	if err != nil {
		return err
	}
	s.Size = int64(n)
	return nil
}

type Config struct {
	Context  int               `toml:"context"`
	Color    string            `toml:"color,omitempty"`
	AutoJunk bool              `toml:"autojunk"`
	KeepEnds bool              `toml:"keep_ends,omitempty"`
	LineTerm string            `toml:"line_term,omitempty"`
	TextConv bool              `toml:"text_conv,omitempty"`
	MaxSize  Size              `toml:"max_size,omitempty"`
	Jobs     int               `toml:"jobs,omitempty"`
	Colors   map[string]string `toml:"colors,omitempty"`
}

func Default() *Config {
	return &Config{
		Context:  difflib.DefaultContextLines,
		Color:    ColorAuto,
		AutoJunk: true,
		LineTerm: "lf",
		MaxSize:  Size{Size: DefaultMaxSize},
		Jobs:     runtime.NumCPU(),
	}
}

// NewExpandReader opens file, replacing ${var} and $var with environment
// values when expandEnv is set.
func NewExpandReader(file string, expandEnv bool) (io.ReadCloser, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	if !expandEnv {
		return fd, err
	}
	defer fd.Close()
	buf, err := streamio.GrowReadMax(fd, 64*MiByte, 4096)
	if err != nil {
		return nil, err
	}
	b := strings.NewReader(os.ExpandEnv(string(buf)))
	return io.NopCloser(b), nil
}

// Path returns the config file to load: $UDIFF_CONFIG, otherwise
// $XDG_CONFIG_HOME/udiff/config.toml (~/.config/udiff/config.toml).
func Path() string {
	if p, ok := os.LookupEnv(ENV_UDIFF_CONFIG); ok {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "udiff", "config.toml")
}

// Load reads file over the defaults. An empty file name loads Path() and a
// missing default config is not an error.
func Load(file string, expandEnv bool) (*Config, error) {
	cfg := Default()
	explicit := len(file) != 0
	if !explicit {
		if file = Path(); len(file) == 0 {
			return cfg, nil
		}
	}
	r, err := NewExpandReader(file, expandEnv)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer r.Close()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Context < 0 {
		return fmt.Errorf("context %d must not be negative: %w", c.Context, ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color '%s' is not one of auto, always, never: %w", c.Color, ErrInvalidConfig)
	}
	if _, err := ParseLineTerm(c.LineTerm); err != nil {
		return err
	}
	if _, err := c.ColorConfig(); err != nil {
		return err
	}
	return nil
}

// ParseLineTerm maps lf, crlf and none to the terminator they name.
func ParseLineTerm(s string) (string, error) {
	switch strings.ToLower(s) {
	case "lf", "":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	case "none":
		return "", nil
	}
	return "", fmt.Errorf("line_term '%s' is not one of lf, crlf, none: %w", s, ErrInvalidConfig)
}

// ColorConfig returns the default diff colors overridden by the [colors] table.
func (c *Config) ColorConfig() (color.ColorConfig, error) {
	var opts []color.ColorConfigOption
	for k, v := range c.Colors {
		key := color.ColorKey(k)
		switch key {
		case color.Context, color.Meta, color.Frag, color.Old, color.New:
		default:
			return nil, fmt.Errorf("unknown color key '%s': %w", k, ErrInvalidConfig)
		}
		seq, err := color.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %v: %w", k, err, ErrInvalidConfig)
		}
		opts = append(opts, color.WithColor(key, seq))
	}
	return color.NewColorConfig(opts...), nil
}
