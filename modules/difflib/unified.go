package difflib

import (
	"slices"
	"strings"
)

// FileStat summarizes a unified diff.
type FileStat struct {
	Addition, Deletion, Hunks int
}

func newMatcher[E comparable](a, b []E, toString func(E) string, opts *Options) *SequenceMatcher[E] {
	if opts.IsJunk == nil {
		return NewMatcherWithJunk(a, b, opts.AutoJunk, nil)
	}
	isJunk := opts.IsJunk
	return NewMatcherWithJunk(a, b, opts.AutoJunk, func(e E) bool {
		return isJunk(toString(e))
	})
}

// hunks runs the whole pipeline up to grouping.
func hunks[E comparable](a, b []E, toString func(E) string, opts *Options) ([]Hunk, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if slices.Equal(a, b) {
		return nil, nil
	}
	groups, err := newMatcher(a, b, toString, opts).GroupedOpCodes(opts.Context)
	if err != nil {
		return nil, err
	}
	hs := make([]Hunk, 0, len(groups))
	for _, g := range groups {
		hs = append(hs, NewHunk(g))
	}
	return hs, nil
}

// Unified compares a and b and returns the unified diff lines, each one
// terminated by opts.LineTerm. toString renders an element as line content.
// Equal inputs produce no lines at all. A nil opts means DefaultOptions().
func Unified[E comparable](a, b []E, toString func(E) string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	hs, err := hunks(a, b, toString, opts)
	if err != nil {
		return nil, err
	}
	if len(hs) == 0 {
		return nil, nil
	}
	size := 2
	for i := range hs {
		size += 1 + hs[i].FromCount + hs[i].ToCount
	}
	f := &formatter[E]{
		a:        a,
		b:        b,
		toString: toString,
		lineterm: opts.LineTerm,
		keepEnds: opts.KeepEnds,
		lines:    make([]string, 0, size),
	}
	f.fileHeader("---", opts.FromFile, opts.FromDate)
	f.fileHeader("+++", opts.ToFile, opts.ToDate)
	for i := range hs {
		f.hunk(&hs[i])
	}
	return f.lines, nil
}

// UnifiedDiff compares two sequences of lines.
func UnifiedDiff(a, b []string, opts *Options) ([]string, error) {
	return Unified(a, b, identity, opts)
}

// UnifiedDiffText splits both texts with SplitLines and compares the lines.
// opts.KeepEnds also controls whether the split keeps line terminators.
func UnifiedDiffText(textA, textB string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	return UnifiedDiff(SplitLines(textA, opts.KeepEnds), SplitLines(textB, opts.KeepEnds), opts)
}

// Stat counts the lines added and removed by the unified diff of a and b.
func Stat(a, b []string, opts *Options) (*FileStat, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	hs, err := hunks(a, b, identity, opts)
	if err != nil {
		return nil, err
	}
	stat := &FileStat{Hunks: len(hs)}
	for _, h := range hs {
		for _, c := range h.OpCodes {
			switch c.Tag {
			case Delete:
				stat.Deletion += c.I2 - c.I1
			case Insert:
				stat.Addition += c.J2 - c.J1
			case Replace:
				stat.Deletion += c.I2 - c.I1
				stat.Addition += c.J2 - c.J1
			}
		}
	}
	return stat, nil
}

func identity(s string) string {
	return s
}

type formatter[E comparable] struct {
	a, b     []E
	toString func(E) string
	lineterm string
	keepEnds bool
	lines    []string
}

func (f *formatter[E]) fileHeader(marker, name, date string) {
	var b strings.Builder
	b.WriteString(marker)
	b.WriteByte(' ')
	b.WriteString(name)
	if len(date) != 0 {
		b.WriteByte('\t')
		b.WriteString(date)
	}
	b.WriteString(f.lineterm)
	f.lines = append(f.lines, b.String())
}

func (f *formatter[E]) content(prefix byte, e E) {
	s := f.toString(e)
	var b strings.Builder
	b.Grow(len(s) + 1 + len(f.lineterm))
	b.WriteByte(prefix)
	b.WriteString(s)
	if !f.keepEnds || !hasLineEnd(s) {
		b.WriteString(f.lineterm)
	}
	f.lines = append(f.lines, b.String())
}

func (f *formatter[E]) hunk(h *Hunk) {
	f.lines = append(f.lines, h.Header(f.lineterm))
	for _, c := range h.OpCodes {
		switch c.Tag {
		case Equal:
			for _, e := range f.a[c.I1:c.I2] {
				f.content(' ', e)
			}
		case Delete, Replace:
			for _, e := range f.a[c.I1:c.I2] {
				f.content('-', e)
			}
			if c.Tag == Delete {
				continue
			}
			for _, e := range f.b[c.J1:c.J2] {
				f.content('+', e)
			}
		case Insert:
			for _, e := range f.b[c.J1:c.J2] {
				f.content('+', e)
			}
		}
	}
}
