package difflib

import (
	"io"
	"strings"

	"github.com/antgroup/udiff/modules/difflib/color"
)

var (
	prefixColorKey = map[byte]color.ColorKey{
		'+': color.New,
		'-': color.Old,
		' ': color.Context,
	}
)

// UnifiedEncoder writes the lines produced by Unified to the provided Writer.
type UnifiedEncoder struct {
	io.Writer

	// color is the color configuration. The default is no color.
	color color.ColorConfig
}

// NewUnifiedEncoder returns a new UnifiedEncoder that writes to w.
func NewUnifiedEncoder(w io.Writer) *UnifiedEncoder {
	return &UnifiedEncoder{
		Writer: w,
	}
}

// SetColor sets e's color configuration and returns e.
func (e *UnifiedEncoder) SetColor(colorConfig color.ColorConfig) *UnifiedEncoder {
	e.color = colorConfig
	return e
}

// Encode writes the lines of one file diff. The first two lines are the file
// headers, as Unified always emits them. Lines produced with an empty line
// terminator are written followed by "\n".
func (e *UnifiedEncoder) Encode(lines []string) error {
	b := &strings.Builder{}
	for i, line := range lines {
		switch {
		case i < 2:
			e.writeLine(b, color.Meta, line)
		case strings.HasPrefix(line, "@@"):
			e.writeLine(b, color.Frag, line)
		case len(line) != 0:
			e.writeLine(b, prefixColorKey[line[0]], line)
		default:
			_, _ = b.WriteString("\n")
		}
	}
	_, err := io.WriteString(e.Writer, b.String())
	return err
}

// WriteMessage writes a single meta line such as "Only in ..." followed by a
// newline.
func (e *UnifiedEncoder) WriteMessage(msg string) error {
	b := &strings.Builder{}
	e.writeLine(b, color.Meta, msg+"\n")
	_, err := io.WriteString(e.Writer, b.String())
	return err
}

// writeLine colors the body of line and resets before its terminator. A line
// without terminator gets "\n".
func (e *UnifiedEncoder) writeLine(b *strings.Builder, key color.ColorKey, line string) {
	body := strings.TrimRight(line, "\r\n")
	_, _ = b.WriteString(e.color[key])
	_, _ = b.WriteString(body)
	_, _ = b.WriteString(e.color.Reset(key))
	if len(body) == len(line) {
		_, _ = b.WriteString("\n")
		return
	}
	_, _ = b.WriteString(line[len(body):])
}
