// Package difflib computes line based differences between two sequences and
// renders them in the unified diff format.
//
// The matcher finds the longest contiguous junk-free matching block, then
// recurses into the pieces on either side of it. The result is not a minimal
// edit script, but it tends to line up the way people expect, and it is
// byte-for-byte compatible with the classic SequenceMatcher output, including
// the autojunk heuristic for long sequences.
package difflib

import (
	"errors"
	"fmt"
)

// DefaultContextLines is the number of unchanged lines shown around each
// change when no Options are given.
const DefaultContextLines = 3

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Tag is the kind of an edit operation.
type Tag int8

const (
	// Equal: a[i1:i2] == b[j1:j2].
	Equal Tag = iota
	// Replace: a[i1:i2] should be replaced by b[j1:j2].
	Replace
	// Delete: a[i1:i2] should be deleted, j1 == j2.
	Delete
	// Insert: b[j1:j2] should be inserted at a[i1:i1], i1 == i2.
	Insert
)

var (
	tagNameMap = map[Tag]string{
		Equal:   "equal",
		Replace: "replace",
		Delete:  "delete",
		Insert:  "insert",
	}
)

func (t Tag) String() string {
	if n, ok := tagNameMap[t]; ok {
		return n
	}
	return fmt.Sprintf("tag(%d)", int8(t))
}

// Match describes a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// OpCode is one edit instruction covering a[I1:I2] and b[J1:J2].
type OpCode struct {
	Tag Tag
	I1  int
	I2  int
	J1  int
	J2  int
}

func (o OpCode) String() string {
	return fmt.Sprintf("%s a[%d:%d] b[%d:%d]", o.Tag, o.I1, o.I2, o.J1, o.J2)
}

// Options controls matching and unified rendering.
type Options struct {
	// FromFile and ToFile are the labels printed in the --- and +++ headers.
	FromFile string
	ToFile   string
	// FromDate and ToDate are appended to the headers after a tab when set.
	FromDate string
	ToDate   string
	// Context is the number of unchanged lines around each change.
	Context int
	// LineTerm terminates every output line. Empty means no terminator.
	LineTerm string
	// KeepEnds leaves content lines that already end in a line break alone
	// instead of appending LineTerm to them.
	KeepEnds bool
	// AutoJunk enables the popularity heuristic for sequences of 200
	// elements or more. Ignored when IsJunk is set.
	AutoJunk bool
	// IsJunk reports lines that must never anchor a match.
	IsJunk func(string) bool
}

// DefaultOptions returns the options used when a nil *Options is passed.
func DefaultOptions() *Options {
	return &Options{
		Context:  DefaultContextLines,
		LineTerm: "\n",
		AutoJunk: true,
	}
}

func (o *Options) validate() error {
	if o.Context < 0 {
		return fmt.Errorf("context %d must not be negative: %w", o.Context, ErrInvalidArgument)
	}
	return nil
}

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}
