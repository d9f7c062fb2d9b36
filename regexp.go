package rgx

import (
	"fmt"
	"io"
	"strings"
)

// Regexp is a compiled pattern. It holds no mutable state once built, so a
// single *Regexp is safe to share across goroutines; every match runs its
// own VM over its own capture registers.
type Regexp struct {
	expr        string
	prog        *Prog
	subexpNames []string
	pf          *prefilter
}

// Compile parses and compiles expr, returning an error describing the
// first lexical, structural, or reference problem found.
func Compile(expr string) (*Regexp, error) {
	parser := newParser(expr)
	node, groups, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	prog := newBuilder(groups).build(node)

	names := make([]string, groups.count()+1)
	for idx := 1; idx <= groups.count(); idx++ {
		names[idx] = groups.nameOf(idx)
	}

	return &Regexp{
		expr:        expr,
		prog:        prog,
		subexpNames: names,
		pf:          buildPrefilter(node),
	}, nil
}

// MustCompile is like Compile but panics if expr cannot be compiled.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("rgx: Compile(%q): %v", expr, err))
	}
	return re
}

// String returns the source pattern text.
func (re *Regexp) String() string { return re.expr }

// NumSubexp returns the number of capture groups in the pattern.
func (re *Regexp) NumSubexp() int { return len(re.subexpNames) - 1 }

// SubexpNames returns the capture group names, indexed by group number.
// Index 0 (the whole match) is always "".
func (re *Regexp) SubexpNames() []string { return re.subexpNames }

// SubexpIndex returns the index of the capture group with the given name,
// or -1 if no group has that name.
func (re *Regexp) SubexpIndex(name string) int {
	for i, n := range re.subexpNames {
		if n == name {
			return i
		}
	}
	return -1
}

// MatchString reports whether the pattern matches anywhere in s.
func (re *Regexp) MatchString(s string) bool {
	return re.search(NewStringInput(s), []byte(s), 0) != nil
}

// MatchReader reports whether the pattern matches anywhere in r's content.
func (re *Regexp) MatchReader(r io.Reader) (bool, error) {
	input, err := NewReaderInput(r)
	if err != nil {
		return false, err
	}
	caps := re.searchInput(input, 0)
	return caps != nil, nil
}

// search finds the leftmost match starting at or after pos, using the
// prefilter (if any) to skip offsets that cannot start a match.
func (re *Regexp) search(input Input, haystack []byte, pos int) []int {
	vm := NewVM(re.prog, input)
	inputLen := input.Len()

	for pos <= inputLen {
		if re.pf != nil && pos < inputLen {
			next := re.pf.next(haystack, pos)
			if next == -1 {
				return nil
			}
			pos = next
		}

		if matched, caps := vm.Run(pos); matched {
			return caps
		}

		_, w := input.Step(pos)
		if w == 0 {
			break
		}
		pos += w
	}
	return nil
}

// searchInput is like search but without a byte-slice prefilter, for
// inputs (like an io.Reader) that never had a []byte handy up front.
func (re *Regexp) searchInput(input Input, pos int) []int {
	vm := NewVM(re.prog, input)
	inputLen := input.Len()

	for pos <= inputLen {
		if matched, caps := vm.Run(pos); matched {
			return caps
		}
		_, w := input.Step(pos)
		if w == 0 {
			break
		}
		pos += w
	}
	return nil
}

func (re *Regexp) submatchFromCaps(s string, caps []int) []string {
	result := make([]string, len(re.subexpNames))
	for i := range result {
		lo, hi := -1, -1
		if 2*i < len(caps) {
			lo = caps[2*i]
		}
		if 2*i+1 < len(caps) {
			hi = caps[2*i+1]
		}
		if lo >= 0 && hi >= lo {
			result[i] = s[lo:hi]
		}
	}
	return result
}

// FindStringSubmatch returns the leftmost match and its submatches, or nil
// if there is none. Index 0 is the whole match.
func (re *Regexp) FindStringSubmatch(s string) []string {
	caps := re.search(NewStringInput(s), []byte(s), 0)
	if caps == nil {
		return nil
	}
	return re.submatchFromCaps(s, caps)
}

// FindStringIndex returns the [start, end) byte range of the leftmost
// match, or nil if there is none.
func (re *Regexp) FindStringIndex(s string) []int {
	caps := re.search(NewStringInput(s), []byte(s), 0)
	if caps == nil || len(caps) < 2 {
		return nil
	}
	return []int{caps[0], caps[1]}
}

// FindString returns the text of the leftmost match, or "" if there is
// none.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindAllStringSubmatch returns every successive non-overlapping match and
// its submatches. n < 0 means return all of them. After a zero-width
// match, the search resumes one rune later so it can't loop forever.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	if n == 0 {
		return nil
	}
	var results [][]string
	input := NewStringInput(s)
	haystack := []byte(s)
	inputLen := input.Len()
	pos := 0

	for (n < 0 || len(results) < n) && pos <= inputLen {
		caps := re.search(input, haystack, pos)
		if caps == nil {
			break
		}
		results = append(results, re.submatchFromCaps(s, caps))
		pos = advancePast(input, caps[0], caps[1])
	}
	return results
}

// FindAllStringIndex is like FindAllStringSubmatch but returns only the
// [start, end) byte range of each match.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	var results [][]int
	input := NewStringInput(s)
	haystack := []byte(s)
	inputLen := input.Len()
	pos := 0

	for (n < 0 || len(results) < n) && pos <= inputLen {
		caps := re.search(input, haystack, pos)
		if caps == nil || len(caps) < 2 {
			break
		}
		results = append(results, []int{caps[0], caps[1]})
		pos = advancePast(input, caps[0], caps[1])
	}
	return results
}

// FindAllString is like FindAllStringIndex but returns the matched text
// itself instead of its byte range.
func (re *Regexp) FindAllString(s string, n int) []string {
	idx := re.FindAllStringIndex(s, n)
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx))
	for i, m := range idx {
		out[i] = s[m[0]:m[1]]
	}
	return out
}

// advancePast computes the next search position after a match spanning
// [matchStart, matchEnd): past the match normally, or one rune beyond
// matchStart for a zero-width match.
func advancePast(input Input, matchStart, matchEnd int) int {
	if matchEnd > matchStart {
		return matchEnd
	}
	_, w := input.Step(matchStart)
	if w == 0 {
		return matchStart + 1 // forces loop exit via pos > inputLen
	}
	return matchStart + w
}

// Split slices s around every match of the pattern. n < 0 means keep
// splitting until no matches remain.
func (re *Regexp) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if n < 0 {
		n = len(s) + 1
	}

	matches := re.FindAllStringIndex(s, n-1)
	if matches == nil {
		return []string{s}
	}

	result := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		result = append(result, s[prev:m[0]])
		prev = m[1]
	}
	result = append(result, s[prev:])
	return result
}

// Match is a single successful match, carrying enough of the subject text
// to resolve group lookups lazily.
type Match struct {
	re     *Regexp
	text   string
	caps   []int
}

// Start returns the byte offset where the match begins.
func (m *Match) Start() int { return m.caps[0] }

// End returns the byte offset just past the match.
func (m *Match) End() int { return m.caps[1] }

// String returns the whole matched text.
func (m *Match) String() string { return m.text[m.caps[0]:m.caps[1]] }

// Group returns the text captured by group idx (0 is the whole match),
// and false if that group did not participate in the match or doesn't
// exist.
func (m *Match) Group(idx int) (string, bool) {
	if idx < 0 || 2*idx+1 >= len(m.caps) {
		return "", false
	}
	lo, hi := m.caps[2*idx], m.caps[2*idx+1]
	if lo < 0 || hi < 0 {
		return "", false
	}
	return m.text[lo:hi], true
}

// NamedGroup returns the text captured by the group with the given name,
// and false if there is no such group or it did not participate.
func (m *Match) NamedGroup(name string) (string, bool) {
	idx := m.re.SubexpIndex(name)
	if idx < 0 {
		return "", false
	}
	return m.Group(idx)
}

// IsMatch reports whether the pattern matches anywhere in s.
func (re *Regexp) IsMatch(s string) bool { return re.MatchString(s) }

// Find returns the leftmost match in s, or nil if there is none.
func (re *Regexp) Find(s string) *Match {
	caps := re.search(NewStringInput(s), []byte(s), 0)
	if caps == nil {
		return nil
	}
	return &Match{re: re, text: s, caps: caps}
}

// FindAll returns every successive non-overlapping match in s.
func (re *Regexp) FindAll(s string) []*Match {
	var out []*Match
	input := NewStringInput(s)
	haystack := []byte(s)
	inputLen := input.Len()
	pos := 0

	for pos <= inputLen {
		caps := re.search(input, haystack, pos)
		if caps == nil {
			break
		}
		out = append(out, &Match{re: re, text: s, caps: caps})
		pos = advancePast(input, caps[0], caps[1])
	}
	return out
}

// Convert translates this pattern's named-group and backreference syntax
// into the `(?<name>...)` / `\k<name>` vocabulary a downstream consumer
// (a CLI, another regex library) might expect, leaving every other token
// untouched. It is the library half of a translation operation; it has no
// command-line front end of its own.
func (re *Regexp) Convert() (string, error) {
	lex := newLexer(re.expr)
	var out strings.Builder

	for {
		tok, err := lex.Next()
		if err != nil {
			return "", err
		}
		if tok.Type == TokenEOF {
			break
		}
		switch tok.Type {
		case TokenLParenNamed:
			out.WriteString("(?<")
			out.WriteString(tok.Name)
			out.WriteString(">")
		case TokenBackrefName:
			out.WriteString("\\k<")
			out.WriteString(tok.Name)
			out.WriteString(">")
		default:
			out.WriteString(re.expr[tok.Start:tok.End])
		}
	}
	return out.String(), nil
}
