package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// Combinator joins case labels inside a switch group. The values are the
// SS_OR and SS_AND pseudo-opcodes.
type Combinator int16

// Case label combinators.
const (
	// CombNone precedes the first label of a group.
	CombNone Combinator = 0
	CombOr   Combinator = Combinator(opcode.SS_OR)
	CombAnd  Combinator = Combinator(opcode.SS_AND)
)

// String implements the fmt.Stringer interface.
func (c Combinator) String() string {
	switch c {
	case CombNone:
		return ""
	case CombOr, CombAnd:
		return opcode.Opcode(c).String()
	default:
		return fmt.Sprintf("Combinator(%d)", int16(c))
	}
}

// Term is a single case label with the combinator joining it to the
// previous label of the group.
type Term struct {
	Comb  Combinator
	Label int32
}

// CaseGroup is a set of labels sharing one branch displacement.
type CaseGroup struct {
	Terms []Term
	Disp  int32
}

// RawCase is an entry of a switch table stored in a script container.
type RawCase struct {
	Label int32
	Disp  int32
}

// RawTable is a switch table stored in a script container.
type RawTable []RawCase

// SwitchOperand is a decoded switch table. Index is the container table
// number for indexed switches and -1 for inline ones.
type SwitchOperand struct {
	Index  int32
	Groups []CaseGroup
}

// Operand is a decoded inline operand, only the field matching the
// descriptor's operand shape is set.
type Operand struct {
	Int    int32
	String string
	Byte   byte
	Raw    []byte
	Switch *SwitchOperand
}

// Depth is the height of both operand stacks. Known is false after
// instructions whose effect can't be computed, up to the next block
// terminator.
type Depth struct {
	Ints    int
	Strings int
	Known   bool
}

// String implements the fmt.Stringer interface.
func (d Depth) String() string {
	if !d.Known {
		return "?"
	}
	return fmt.Sprintf("i%d s%d", d.Ints, d.Strings)
}

// Value is a stack slot. Const values carry the constant pushed.
type Value struct {
	Kind  registry.Kind
	Const bool
	Int   int32
	Str   string
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	switch {
	case !v.Const && v.Kind == registry.String:
		return "s?"
	case !v.Const:
		return "i?"
	case v.Kind == registry.String:
		return strconv.Quote(v.Str)
	default:
		return strconv.FormatInt(int64(v.Int), 10)
	}
}

// Frame is a snapshot of both operand stacks, the last element is the
// top.
type Frame struct {
	Ints    []Value
	Strings []Value
}

// Instruction is a decoded instruction. Offset is the byte position of its
// opcode in the program, Index its ordinal number and Size the encoded
// length including the opcode.
type Instruction struct {
	Offset  int
	Index   int
	Op      opcode.Opcode
	Desc    *registry.Descriptor
	Operand Operand
	Size    int
	Before  Depth
	After   Depth
	// Stack is the state after the instruction, nil if the depth is not
	// known.
	Stack *Frame
}

// Next returns the offset of the following instruction.
func (i *Instruction) Next() int {
	return i.Offset + i.Size
}

// OperandString formats the operand for listings.
func (i *Instruction) OperandString() string {
	switch i.Desc.Operand {
	case registry.ShapeInt:
		return strconv.FormatInt(int64(i.Operand.Int), 10)
	case registry.ShapeLocal:
		return fmt.Sprintf("%s%d", i.Desc.Local.String()[:1], i.Operand.Int)
	case registry.ShapeString:
		return strconv.Quote(i.Operand.String)
	case registry.ShapeByte:
		return strconv.Itoa(int(i.Operand.Byte))
	case registry.ShapeUnknown:
		return fmt.Sprintf("%x", i.Operand.Raw)
	case registry.ShapeSwitch:
		if i.Operand.Switch == nil {
			return ""
		}
		var sb strings.Builder
		if i.Operand.Switch.Index >= 0 {
			fmt.Fprintf(&sb, "#%d ", i.Operand.Switch.Index)
		}
		for n, g := range i.Operand.Switch.Groups {
			if n > 0 {
				sb.WriteString(", ")
			}
			for _, t := range g.Terms {
				if t.Comb != CombNone {
					sb.WriteString(" " + t.Comb.String() + " ")
				}
				sb.WriteString(strconv.FormatInt(int64(t.Label), 10))
			}
			fmt.Fprintf(&sb, ": %+d", g.Disp)
		}
		return sb.String()
	default:
		return ""
	}
}

// String implements the fmt.Stringer interface.
func (i *Instruction) String() string {
	if s := i.OperandString(); s != "" {
		return i.Desc.Mnemonic + " " + s
	}
	return i.Desc.Mnemonic
}
