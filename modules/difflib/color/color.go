package color

import (
	"fmt"
	"strings"
)

// Colors. See https://github.com/git/git/blob/v2.26.2/color.h#L24-L53.
const (
	Normal      = ""
	Reset       = "\033[m"
	Bold        = "\033[1m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Blue        = "\033[34m"
	Magenta     = "\033[35m"
	Cyan        = "\033[36m"
	BoldRed     = "\033[1;31m"
	BoldGreen   = "\033[1;32m"
	BoldYellow  = "\033[1;33m"
	BoldBlue    = "\033[1;34m"
	BoldMagenta = "\033[1;35m"
	BoldCyan    = "\033[1;36m"
	Faint       = "\033[2m"
	Reverse     = "\033[7m"
)

// A ColorKey names the part of a unified diff a color applies to. The names
// match the diff.color subsection of git config.
type ColorKey string

// ColorKeys.
const (
	Context ColorKey = "context"
	Meta    ColorKey = "meta"
	Frag    ColorKey = "frag"
	Old     ColorKey = "old"
	New     ColorKey = "new"
)

var (
	namedColors = map[string]string{
		"normal":  Normal,
		"red":     "31",
		"green":   "32",
		"yellow":  "33",
		"blue":    "34",
		"magenta": "35",
		"cyan":    "36",
		"white":   "37",
	}
	namedAttributes = map[string]string{
		"bold":    "1",
		"dim":     "2",
		"faint":   "2",
		"italic":  "3",
		"ul":      "4",
		"reverse": "7",
	}
)

// A ColorConfig is a color configuration. A nil or empty ColorConfig
// corresponds to no color.
type ColorConfig map[ColorKey]string

// A ColorConfigOption sets an option on a ColorConfig.
type ColorConfigOption func(ColorConfig)

// WithColor sets the color for key.
func WithColor(key ColorKey, color string) ColorConfigOption {
	return func(cc ColorConfig) {
		cc[key] = color
	}
}

// defaultColorConfig mirrors git's defaults for the keys we render.
var defaultColorConfig = ColorConfig{
	Context: Normal,
	Meta:    Bold,
	Frag:    Cyan,
	Old:     Red,
	New:     Green,
}

// NewColorConfig returns a new ColorConfig.
func NewColorConfig(options ...ColorConfigOption) ColorConfig {
	cc := make(ColorConfig, len(defaultColorConfig))
	for key, value := range defaultColorConfig {
		cc[key] = value
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// Reset returns the ANSI escape sequence to reset the color with key set from
// cc. If no color was set then no reset is needed so it returns the empty
// string.
func (cc ColorConfig) Reset(key ColorKey) string {
	if cc[key] == "" {
		return ""
	}
	return Reset
}

// Parse turns a git style color value such as "bold red" into an escape
// sequence. "normal" and the empty string yield no color.
func Parse(value string) (string, error) {
	var codes []string
	for _, word := range strings.Fields(strings.ToLower(value)) {
		if c, ok := namedColors[word]; ok {
			if c != Normal {
				codes = append(codes, c)
			}
			continue
		}
		if a, ok := namedAttributes[word]; ok {
			codes = append(codes, a)
			continue
		}
		return "", fmt.Errorf("unknown color '%s'", word)
	}
	if len(codes) == 0 {
		return Normal, nil
	}
	return "\033[" + strings.Join(codes, ";") + "m", nil
}
