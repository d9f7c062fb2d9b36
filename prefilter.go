package rgx

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"golang.org/x/sys/cpu"
)

// prefilter narrows the set of byte offsets the VM needs to try an
// anchored match from. It never affects correctness — a pattern whose
// prefilter reports no match still gets a nil result from the VM loop
// either way — it only skips positions that provably cannot start a
// match, the same role coregx's literal-alternation prefilter and
// leading-literal scan play ahead of its own matcher.
type prefilter struct {
	automaton *ahocorasick.Automaton // set when every top-level branch is a plain literal
	single    []byte                 // set when the whole pattern has one required literal prefix
}

// buildPrefilter inspects node and returns a prefilter, or nil if nothing
// usable was found (the caller falls back to trying every offset).
func buildPrefilter(node Node) *prefilter {
	if lits := literalAltBranches(node); len(lits) > 1 {
		b := ahocorasick.NewBuilder()
		for _, lit := range lits {
			b.AddPattern([]byte(lit))
		}
		automaton, err := b.Build()
		if err == nil {
			return &prefilter{automaton: automaton}
		}
	}

	if prefix := leadingLiteral(node); prefix != "" {
		return &prefilter{single: []byte(prefix)}
	}

	return nil
}

// next returns the smallest offset >= from at which a match could
// possibly start, or -1 if none exists in the remainder of haystack.
func (pf *prefilter) next(haystack []byte, from int) int {
	if pf == nil || from >= len(haystack) {
		return from
	}

	if pf.automaton != nil {
		if m := pf.automaton.Find(haystack, from); m != nil {
			return m.Start
		}
		return -1
	}

	if len(pf.single) > 0 {
		// x/sys/cpu gates a coarse choice of scan strategy rather than
		// hand-written SIMD: on SSE2 hardware a one-byte prefix is found
		// with bytes.IndexByte; every other case uses a plain bytes.Index.
		// The Aho-Corasick automaton is not used for a single prefix.
		if cpu.X86.HasSSE2 && len(pf.single) == 1 {
			idx := bytes.IndexByte(haystack[from:], pf.single[0])
			if idx == -1 {
				return -1
			}
			return from + idx
		}
		idx := bytes.Index(haystack[from:], pf.single)
		if idx == -1 {
			return -1
		}
		return from + idx
	}

	return from
}

// literalAltBranches returns the string form of every branch of a
// top-level Alt, if and only if every branch is composed solely of
// Literal/Concat-of-Literal nodes (no captures, classes, or quantifiers
// that could widen what actually starts a match).
func literalAltBranches(node Node) []string {
	alt, ok := node.(*Alt)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(alt.Children))
	for _, child := range alt.Children {
		s, ok := literalString(child)
		if !ok || s == "" {
			return nil
		}
		out = append(out, s)
	}
	return out
}

func literalString(node Node) (string, bool) {
	switch n := node.(type) {
	case *Literal:
		return string(n.Rune), true
	case *Concat:
		var b []rune
		for _, c := range n.Children {
			lit, ok := c.(*Literal)
			if !ok {
				return "", false
			}
			b = append(b, lit.Rune)
		}
		return string(b), true
	}
	return "", false
}

// leadingLiteral returns the longest run of unconditional leading literal
// runes in node — the prefix every match must begin with.
func leadingLiteral(node Node) string {
	switch n := node.(type) {
	case *Literal:
		return string(n.Rune)
	case *Concat:
		var b []rune
		for _, c := range n.Children {
			lit, ok := c.(*Literal)
			if !ok {
				break
			}
			b = append(b, lit.Rune)
		}
		return string(b)
	}
	return ""
}
