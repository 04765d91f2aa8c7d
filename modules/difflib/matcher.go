package difflib

import (
	"slices"
)

// autoJunkMinLen is the smallest b for which the popularity heuristic runs.
const autoJunkMinLen = 200

// SequenceMatcher compares two sequences of comparable elements.
//
// All derived data is computed at construction time, a SequenceMatcher is
// read-only afterwards and may be shared between goroutines. The input slices
// must not be modified while the matcher is in use.
type SequenceMatcher[E comparable] struct {
	a []E
	b []E
	// b2j maps each anchor-able element of b to its ascending positions.
	b2j map[E][]int
	// junk holds the elements rejected by isJunk.
	junk map[E]struct{}
	// popular holds the elements dropped by autojunk. They are not junk.
	popular  map[E]struct{}
	isJunk   func(E) bool
	autoJunk bool
}

// NewMatcher returns a matcher with autojunk enabled and no junk predicate.
func NewMatcher[E comparable](a, b []E) *SequenceMatcher[E] {
	return NewMatcherWithJunk(a, b, true, nil)
}

// NewMatcherWithJunk returns a matcher using isJunk to classify elements of b.
// autoJunk is ignored when isJunk is not nil.
func NewMatcherWithJunk[E comparable](a, b []E, autoJunk bool, isJunk func(E) bool) *SequenceMatcher[E] {
	m := &SequenceMatcher[E]{
		a:        a,
		b:        b,
		isJunk:   isJunk,
		autoJunk: autoJunk && isJunk == nil,
	}
	m.indexB()
	return m
}

func (m *SequenceMatcher[E]) indexB() {
	b2j := make(map[E][]int, max(len(m.b)/3, 16))
	for j, e := range m.b {
		b2j[e] = append(b2j[e], j)
	}
	m.junk = make(map[E]struct{})
	if m.isJunk != nil {
		for e := range b2j {
			if m.isJunk(e) {
				m.junk[e] = struct{}{}
			}
		}
		for e := range m.junk {
			delete(b2j, e)
		}
	}
	m.popular = make(map[E]struct{})
	if n := len(m.b); m.autoJunk && n >= autoJunkMinLen {
		ntest := n/100 + 1
		for e, positions := range b2j {
			if len(positions) > ntest {
				m.popular[e] = struct{}{}
			}
		}
		for e := range m.popular {
			delete(b2j, e)
		}
	}
	m.b2j = b2j
}

// IsJunk reports whether e was classified as junk by the predicate.
func (m *SequenceMatcher[E]) IsJunk(e E) bool {
	_, ok := m.junk[e]
	return ok
}

// IsPopular reports whether e was dropped from the index by autojunk.
func (m *SequenceMatcher[E]) IsPopular(e E) bool {
	_, ok := m.popular[e]
	return ok
}

// FindLongestMatch returns the longest matching block in a[alo:ahi] and
// b[blo:bhi]. Of all maximal blocks it returns the one starting earliest in a,
// then earliest in b. The block is anchored on indexed elements only, then
// grown across equal non-junk neighbours and finally across equal junk
// neighbours. If nothing matches it returns (alo, blo, 0).
func (m *SequenceMatcher[E]) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	a, b := m.a, m.b
	besti, bestj, bestsize := alo, blo, 0
	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	newj2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		clear(newj2len)
		for _, j := range m.b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len, newj2len = newj2len, j2len
	}

	for besti > alo && bestj > blo && !m.IsJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && !m.IsJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	for besti > alo && bestj > blo && m.IsJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && m.IsJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}
	return Match{A: besti, B: bestj, Size: bestsize}
}

type span struct {
	alo, ahi, blo, bhi int
}

// MatchingBlocks returns the matching blocks of a and b, ordered and
// non-overlapping in both sequences, with adjacent blocks merged. The last
// block is always the sentinel (len(a), len(b), 0).
func (m *SequenceMatcher[E]) MatchingBlocks() []Match {
	la, lb := len(m.a), len(m.b)
	if slices.Equal(m.a, m.b) {
		if la == 0 {
			return []Match{{A: 0, B: 0, Size: 0}}
		}
		return []Match{{A: 0, B: 0, Size: la}, {A: la, B: lb, Size: 0}}
	}
	var matched []Match
	stack := []span{{alo: 0, ahi: la, blo: 0, bhi: lb}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := m.FindLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if x.Size == 0 {
			continue
		}
		matched = append(matched, x)
		if s.alo < x.A && s.blo < x.B {
			stack = append(stack, span{alo: s.alo, ahi: x.A, blo: s.blo, bhi: x.B})
		}
		if x.A+x.Size < s.ahi && x.B+x.Size < s.bhi {
			stack = append(stack, span{alo: x.A + x.Size, ahi: s.ahi, blo: x.B + x.Size, bhi: s.bhi})
		}
	}
	slices.SortFunc(matched, func(x, y Match) int {
		if x.A != y.A {
			return x.A - y.A
		}
		return x.B - y.B
	})

	blocks := make([]Match, 0, len(matched)+1)
	for _, x := range matched {
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.A+last.Size == x.A && last.B+last.Size == x.B {
				last.Size += x.Size
				continue
			}
		}
		blocks = append(blocks, x)
	}
	return append(blocks, Match{A: la, B: lb, Size: 0})
}

// OpCodes returns the edit operations turning a into b. The first opcode
// starts at (0, 0), each following one starts where the previous ended and
// the last one ends at (len(a), len(b)).
func (m *SequenceMatcher[E]) OpCodes() []OpCode {
	blocks := m.MatchingBlocks()
	codes := make([]OpCode, 0, len(blocks)*2)
	i, j := 0, 0
	for _, x := range blocks {
		switch {
		case i < x.A && j < x.B:
			codes = append(codes, OpCode{Tag: Replace, I1: i, I2: x.A, J1: j, J2: x.B})
		case i < x.A:
			codes = append(codes, OpCode{Tag: Delete, I1: i, I2: x.A, J1: j, J2: j})
		case j < x.B:
			codes = append(codes, OpCode{Tag: Insert, I1: i, I2: i, J1: j, J2: x.B})
		}
		if x.Size > 0 {
			codes = append(codes, OpCode{Tag: Equal, I1: x.A, I2: x.A + x.Size, J1: x.B, J2: x.B + x.Size})
		}
		i, j = x.A+x.Size, x.B+x.Size
	}
	return codes
}

// Ratio returns 2*M/T where M is the number of matched elements and T the
// total number of elements in both sequences.
func (m *SequenceMatcher[E]) Ratio() float64 {
	matches := 0
	for _, x := range m.MatchingBlocks() {
		matches += x.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on Ratio computed from the multiset
// intersection of a and b.
func (m *SequenceMatcher[E]) QuickRatio() float64 {
	avail := make(map[E]int, len(m.b2j))
	for _, e := range m.b {
		avail[e]++
	}
	matches := 0
	for _, e := range m.a {
		if avail[e] > 0 {
			matches++
		}
		avail[e]--
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns an upper bound on QuickRatio from lengths only.
func (m *SequenceMatcher[E]) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}
