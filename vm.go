package rgx

import "sync"

// capsPool recycles capture-register slices across VM runs to keep the
// backtracking search from thrashing the allocator — a pattern with a lot
// of alternation can take a split at nearly every step.
var capsPool = sync.Pool{
	New: func() interface{} {
		return make([]int, 0, 20)
	},
}

// VM executes a compiled Prog against an Input by backtracking: each
// OpSplit tries its first branch to completion (recursively) before
// falling back to its second. This is what makes backreferences tractable
// here — a pure Thompson NFA/DFA has no notion of "the text captured so
// far" to compare against, but a backtracking thread always does.
type VM struct {
	prog  *Prog
	input Input
}

func NewVM(prog *Prog, input Input) *VM {
	return &VM{prog: prog, input: input}
}

// Run attempts a match anchored at pos. On success it returns the capture
// register slice (length 2*(NumCap+1), register i holding [2i, 2i+1) in
// byte offsets, -1 where a group did not participate).
func (vm *VM) Run(pos int) (bool, []int) {
	poolCaps := capsPool.Get().([]int)
	caps := poolCaps[:0]

	needed := (vm.prog.NumCap + 1) * 2
	if cap(caps) < needed {
		caps = make([]int, needed)
	} else {
		caps = caps[:needed]
	}
	for i := range caps {
		caps[i] = -1
	}

	_, matched := vm.match(vm.prog.Start, pos, caps)
	if matched {
		return true, caps
	}
	capsPool.Put(caps)
	return false, nil
}

// match is the recursive backtracking core. It returns the position just
// past a successful match, or (-1, false).
func (vm *VM) match(pc int, pos int, caps []int) (int, bool) {
	const maxSteps = 2000000
	steps := 0

	for {
		steps++
		if steps > maxSteps || pc >= len(vm.prog.Insts) {
			return -1, false
		}

		inst := vm.prog.Insts[pc]

		switch inst.Op {
		case OpMatch:
			return pos, true

		case OpChar:
			r, w := vm.input.Step(pos)
			if w == 0 || r != inst.Val {
				return -1, false
			}
			pos += w
			pc++

		case OpClass:
			r, w := vm.input.Step(pos)
			if w == 0 {
				return -1, false
			}
			if !matchClass(r, inst.Ranges, inst.Negated) {
				return -1, false
			}
			pos += w
			pc++

		case OpAny:
			r, w := vm.input.Step(pos)
			if w == 0 || r == '\n' {
				return -1, false
			}
			pos += w
			pc++

		case OpJmp:
			pc = inst.Out

		case OpSplit:
			poolCaps := capsPool.Get().([]int)
			capsCopy := poolCaps[:0]
			if cap(capsCopy) < len(caps) {
				capsCopy = make([]int, len(caps))
			} else {
				capsCopy = capsCopy[:len(caps)]
			}
			copy(capsCopy, caps)

			if endPos, ok := vm.match(inst.Out, pos, capsCopy); ok {
				copy(caps, capsCopy)
				capsPool.Put(capsCopy)
				return endPos, true
			}
			capsPool.Put(capsCopy)

			return vm.match(inst.Out1, pos, caps)

		case OpSave:
			if inst.Idx < len(caps) {
				caps[inst.Idx] = pos
			}
			pc++

		case OpAssert:
			if !vm.checkAssertion(inst.Assert, pos) {
				return -1, false
			}
			pc++

		case OpBackref:
			newPos, ok := vm.matchBackref(inst.Idx, pos, caps)
			if !ok {
				return -1, false
			}
			pos = newPos
			pc++
		}
	}
}

// matchBackref compares the input at pos against the literal text most
// recently captured by group idx. A group that never participated in the
// match (its registers are still -1) makes the backreference fail, rather
// than silently matching the empty string.
func (vm *VM) matchBackref(idx int, pos int, caps []int) (int, bool) {
	lo, hi := -1, -1
	if 2*idx < len(caps) {
		lo = caps[2*idx]
	}
	if 2*idx+1 < len(caps) {
		hi = caps[2*idx+1]
	}
	if lo < 0 || hi < 0 || hi < lo {
		return -1, false
	}

	want := vm.input.Slice(lo, hi)
	if want == "" {
		return pos, true
	}
	got := vm.input.Slice(pos, pos+len(want))
	if got != want {
		return -1, false
	}
	return pos + len(want), true
}

// matchClass checks whether r is covered by ranges, honoring negation.
func matchClass(r rune, ranges []ClassRange, negated bool) bool {
	matched := false
	for _, rng := range ranges {
		if r >= rng.Lo && r <= rng.Hi {
			matched = true
			break
		}
	}
	if negated {
		return !matched
	}
	return matched
}

func (vm *VM) checkAssertion(kind AnchorKind, pos int) bool {
	switch kind {
	case AnchorStart:
		return pos == 0
	case AnchorEnd:
		return pos >= vm.input.Len()
	}
	return true
}
