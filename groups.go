package rgx

import "fmt"

// groupRegistry tracks capture groups as a pattern is parsed. It keeps two
// parallel views of the same groups: a name<->index map for named-group
// lookups, and an ordered list of indices for groups that were never given
// a name, consulted only when resolving a relative backreference (\g{-k}).
type groupRegistry struct {
	next       int // next index to hand out; 0 is reserved for the whole match
	nameToIdx  map[string]int
	idxToName  map[int]string
	numbered   []int // indices of groups with no name, in open order

	// pending holds named backreferences seen before their target group
	// was registered. Each is resolved against nameToIdx once parsing
	// finishes; any still unresolved at that point is a compile error.
	// Numbered backreferences get no such leniency: a numbered group must
	// already be open at the point of reference, checked immediately by
	// the parser rather than deferred here.
	pending []pendingNamedRef
}

type pendingNamedRef struct {
	name string
	pos  int
}

func newGroupRegistry() *groupRegistry {
	return &groupRegistry{
		next:      1,
		nameToIdx: make(map[string]int),
		idxToName: make(map[int]string),
	}
}

// openCapture allocates the next capture index. If name is non-empty it is
// recorded in the name map and the index is excluded from the numbered-only
// view; an already-used name is a compile error.
func (g *groupRegistry) openCapture(name string, pos int) (int, error) {
	idx := g.next
	g.next++

	if name == "" {
		g.numbered = append(g.numbered, idx)
		return idx, nil
	}

	if _, exists := g.nameToIdx[name]; exists {
		return 0, newCompileError(pos, fmt.Errorf("%w: %q", ErrDuplicateName, name))
	}
	g.nameToIdx[name] = idx
	g.idxToName[idx] = name
	return idx, nil
}

// resolveName looks up a name immediately; used for backreferences that
// appear after their target has already opened.
func (g *groupRegistry) resolveName(name string) (int, bool) {
	idx, ok := g.nameToIdx[name]
	return idx, ok
}

// recordForwardRef records a named backreference for resolution once the
// whole pattern has been parsed, covering the case where \g{name} appears
// before (name:...) has been seen.
func (g *groupRegistry) recordForwardRef(name string, pos int) {
	g.pending = append(g.pending, pendingNamedRef{name: name, pos: pos})
}

// finish resolves every pending named forward reference against the final
// registry. It must be called once, after the whole pattern has been
// parsed.
func (g *groupRegistry) finish() error {
	for _, ref := range g.pending {
		if _, ok := g.nameToIdx[ref.name]; !ok {
			return newCompileError(ref.pos, fmt.Errorf("%w: %q", ErrUnknownBackrefName, ref.name))
		}
	}
	return nil
}

// resolveRelative resolves \g{-k}: the k-th most recently opened
// numbered-only (unnamed) group, counted back from the point in the
// pattern where the backreference appears. It consults g.numbered as it
// stands at the call site, not the final list — a backreference can only
// see groups opened before it.
func (g *groupRegistry) resolveRelative(k int, pos int) (int, error) {
	if k <= 0 || k > len(g.numbered) {
		return 0, newCompileError(pos, fmt.Errorf("%w: -%d (only %d numbered group(s) opened so far)", ErrRelativeOutOfRange, k, len(g.numbered)))
	}
	return g.numbered[len(g.numbered)-k], nil
}

// count returns the number of capture groups opened so far (excluding the
// implicit whole-match group 0).
func (g *groupRegistry) count() int {
	return g.next - 1
}

// nameOf returns the name assigned to a capture index, or "" if it is
// unnamed.
func (g *groupRegistry) nameOf(idx int) string {
	return g.idxToName[idx]
}
