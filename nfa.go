package rgx

// builder compiles an AST into a Prog via Thompson's construction,
// extended with Save instructions for capture groups and a dedicated
// OpBackref instruction for backreferences — the two things a plain
// Thompson NFA doesn't need but a backtracking engine with groups does.
type builder struct {
	insts  []Inst
	groups *groupRegistry
}

func newBuilder(groups *groupRegistry) *builder {
	return &builder{groups: groups}
}

// build compiles node into a Prog. Save(0)/Save(1) bracket the whole
// pattern so the overall match span lands in capture register 0, exactly
// like every other capture group.
func (b *builder) build(node Node) *Prog {
	b.emit(Inst{Op: OpSave, Idx: 0})
	b.compile(node)
	b.emit(Inst{Op: OpSave, Idx: 1})
	b.emit(Inst{Op: OpMatch})

	return &Prog{
		Insts:  b.insts,
		Start:  0,
		NumCap: b.groups.count(),
	}
}

func (b *builder) emit(i Inst) int {
	b.insts = append(b.insts, i)
	return len(b.insts) - 1
}

func (b *builder) compile(node Node) int {
	switch n := node.(type) {
	case *Empty:
		return len(b.insts)

	case *Literal:
		return b.emit(Inst{Op: OpChar, Val: n.Rune})

	case *Class:
		return b.emit(Inst{Op: OpClass, Ranges: n.Ranges, Negated: n.Negated})

	case *Any:
		return b.emit(Inst{Op: OpAny})

	case *Anchor:
		return b.emit(Inst{Op: OpAssert, Assert: n.Kind})

	case *Backref:
		idx := n.Index
		if n.Kind == BackrefByName {
			idx, _ = b.groups.resolveName(n.Name)
		}
		return b.emit(Inst{Op: OpBackref, Idx: idx})

	case *Concat:
		return b.compileConcat(n)

	case *Alt:
		return b.compileAlt(n)

	case *Group:
		return b.compileGroup(n)

	case *Repeat:
		return b.compileRepeat(n)
	}
	return len(b.insts)
}

func (b *builder) compileConcat(n *Concat) int {
	if len(n.Children) == 0 {
		return len(b.insts)
	}
	start := b.compile(n.Children[0])
	for _, child := range n.Children[1:] {
		b.compile(child)
	}
	return start
}

func (b *builder) compileAlt(n *Alt) int {
	if len(n.Children) == 0 {
		return len(b.insts)
	}
	if len(n.Children) == 1 {
		return b.compile(n.Children[0])
	}

	left := n.Children[0]
	var right Node
	if len(n.Children) == 2 {
		right = n.Children[1]
	} else {
		right = &Alt{Children: n.Children[1:]}
	}

	splitIdx := b.emit(Inst{Op: OpSplit})
	b.insts[splitIdx].Out = len(b.insts)
	b.compile(left)

	jmpIdx := b.emit(Inst{Op: OpJmp})
	b.insts[splitIdx].Out1 = len(b.insts)
	b.compile(right)

	b.insts[jmpIdx].Out = len(b.insts)
	return splitIdx
}

func (b *builder) compileGroup(n *Group) int {
	if !n.Capture {
		return b.compile(n.Child)
	}
	start := b.emit(Inst{Op: OpSave, Idx: 2 * n.Index})
	b.compile(n.Child)
	b.emit(Inst{Op: OpSave, Idx: 2*n.Index + 1})
	return start
}

// compileRepeat unrolls the quantifier's mandatory Min copies of the body,
// then handles the open-ended or bounded tail: {n,} becomes "n copies then
// a *-loop"; {n,m} becomes "n copies then (m-n) nested optional copies".
// This is the same shape the engine this spec distills from uses, and it
// keeps quantifier compilation as a single structural recursion instead of
// a separate counted-repetition instruction.
func (b *builder) compileRepeat(n *Repeat) int {
	q := n.Bound
	start := len(b.insts)

	if q.Min == 0 && q.Max == 0 {
		return start
	}

	first := -1
	for i := 0; i < q.Min; i++ {
		idx := b.compile(n.Child)
		if first == -1 {
			first = idx
		}
	}

	switch {
	case q.Max == -1:
		tail := b.compileStar(n.Child, q.Greedy)
		if first == -1 {
			first = tail
		}
	case q.Max > q.Min:
		tail := b.compileOptionalChain(n.Child, q.Max-q.Min, q.Greedy)
		if first == -1 {
			first = tail
		}
	}

	if first == -1 {
		return start
	}
	return first
}

// compileStar emits `child*`.
func (b *builder) compileStar(child Node, greedy bool) int {
	split := b.emit(Inst{Op: OpSplit})
	bodyStart := b.compile(child)
	b.emit(Inst{Op: OpJmp, Out: split})
	end := len(b.insts)

	if greedy {
		b.insts[split].Out = bodyStart
		b.insts[split].Out1 = end
	} else {
		b.insts[split].Out = end
		b.insts[split].Out1 = bodyStart
	}
	return split
}

// compileOptionalChain emits `child?` nested n times: (child(child(child)?)?)?.
func (b *builder) compileOptionalChain(child Node, n int, greedy bool) int {
	if n == 0 {
		return len(b.insts)
	}
	split := b.emit(Inst{Op: OpSplit})
	bodyStart := b.compile(child)
	b.compileOptionalChain(child, n-1, greedy)
	end := len(b.insts)

	if greedy {
		b.insts[split].Out = bodyStart
		b.insts[split].Out1 = end
	} else {
		b.insts[split].Out = end
		b.insts[split].Out1 = bodyStart
	}
	return split
}
