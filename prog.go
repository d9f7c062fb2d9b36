package rgx

import "fmt"

// OpCode identifies a VM instruction.
type OpCode int

const (
	OpMatch   OpCode = iota // terminate successfully
	OpChar                  // match a specific rune
	OpClass                 // match a character class
	OpAny                   // match any rune except newline
	OpJmp                   // unconditional jump
	OpSplit                 // try Out, then Out1 on backtrack (a non-greedy loop has its exit in Out)
	OpSave                  // record the current position into capture register Idx
	OpAssert                // zero-width position assertion
	OpBackref               // match the literal text of a previously captured group
)

// Inst is a single compiled instruction.
type Inst struct {
	Op      OpCode
	Val     rune         // OpChar
	Ranges  []ClassRange // OpClass
	Negated bool         // OpClass
	Out     int          // OpJmp, OpSplit (primary branch)
	Out1    int          // OpSplit (secondary branch)
	Idx     int          // OpSave (capture register), OpBackref (capture index)
	Assert  AnchorKind   // OpAssert
}

// Prog is a compiled pattern, ready for the VM to execute.
type Prog struct {
	Insts  []Inst
	Start  int
	NumCap int // number of capture groups, excluding the whole match
}

func (i Inst) String() string {
	switch i.Op {
	case OpMatch:
		return "match"
	case OpChar:
		return fmt.Sprintf("char %q", i.Val)
	case OpClass:
		neg := ""
		if i.Negated {
			neg = "^"
		}
		return fmt.Sprintf("class %s%v", neg, i.Ranges)
	case OpAny:
		return "any"
	case OpJmp:
		return fmt.Sprintf("jmp %d", i.Out)
	case OpSplit:
		return fmt.Sprintf("split %d, %d", i.Out, i.Out1)
	case OpSave:
		return fmt.Sprintf("save %d", i.Idx)
	case OpAssert:
		return fmt.Sprintf("assert %d", i.Assert)
	case OpBackref:
		return fmt.Sprintf("backref %d", i.Idx)
	}
	return "?"
}
