package difflib

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupedOpCodes isolates change clusters with up to n lines of context.
//
// Equal runs longer than 2n split the clusters: the run contributes its first
// n elements to the cluster before it and its last n elements to the one
// after it. Leading and trailing equal runs are cut to n elements. Identical
// sequences yield no groups.
func (m *SequenceMatcher[E]) GroupedOpCodes(n int) ([][]OpCode, error) {
	if n < 0 {
		return nil, fmt.Errorf("context %d must not be negative: %w", n, ErrInvalidArgument)
	}
	// Equal runs never exceed the longer sequence.
	n = min(n, max(len(m.a), len(m.b)))
	return groupOpCodes(m.OpCodes(), n), nil
}

func groupOpCodes(codes []OpCode, n int) [][]OpCode {
	if len(codes) == 0 {
		return nil
	}
	if first := &codes[0]; first.Tag == Equal {
		first.I1, first.J1 = max(first.I1, first.I2-n), max(first.J1, first.J2-n)
	}
	if last := &codes[len(codes)-1]; last.Tag == Equal {
		last.I2, last.J2 = min(last.I2, last.I1+n), min(last.J2, last.J1+n)
	}
	var groups [][]OpCode
	var group []OpCode
	for _, c := range codes {
		if c.Tag == Equal && c.I2-c.I1 > 2*n {
			group = append(group, OpCode{Tag: Equal, I1: c.I1, I2: min(c.I2, c.I1+n), J1: c.J1, J2: min(c.J2, c.J1+n)})
			groups = append(groups, group)
			group = nil
			c.I1, c.J1 = max(c.I1, c.I2-n), max(c.J1, c.J2-n)
		}
		group = append(group, c)
	}
	if len(group) > 0 && (len(group) != 1 || group[0].Tag != Equal) {
		groups = append(groups, group)
	}
	return groups
}

// Hunk is one @@ block of a unified diff.
type Hunk struct {
	// FromLine and ToLine are 1-based starting lines. For an empty side
	// they name the line before the insertion point, 0 at the top.
	FromLine  int
	FromCount int
	ToLine    int
	ToCount   int
	OpCodes   []OpCode
}

// NewHunk computes the line ranges of a group returned by GroupedOpCodes.
func NewHunk(group []OpCode) Hunk {
	first, last := group[0], group[len(group)-1]
	h := Hunk{
		FromLine:  first.I1 + 1,
		FromCount: last.I2 - first.I1,
		ToLine:    first.J1 + 1,
		ToCount:   last.J2 - first.J1,
		OpCodes:   group,
	}
	if h.FromCount == 0 {
		h.FromLine--
	}
	if h.ToCount == 0 {
		h.ToLine--
	}
	return h
}

func formatRange(line, count int) string {
	if count == 1 {
		return strconv.Itoa(line)
	}
	return strconv.Itoa(line) + "," + strconv.Itoa(count)
}

// Header renders the @@ line of h terminated by lineterm.
func (h *Hunk) Header(lineterm string) string {
	var b strings.Builder
	b.WriteString("@@ -")
	b.WriteString(formatRange(h.FromLine, h.FromCount))
	b.WriteString(" +")
	b.WriteString(formatRange(h.ToLine, h.ToCount))
	b.WriteString(" @@")
	b.WriteString(lineterm)
	return b.String()
}
