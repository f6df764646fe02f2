package registry

import (
	"fmt"
	"strings"

	"github.com/cs2kit/cs2/pkg/opcode"
)

// Kind is a type of a value on the operand stack. CS2 keeps integers and
// strings on two separate stacks.
type Kind byte

// Stack value kinds.
const (
	Int Kind = iota
	String
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Shape describes the inline operand that follows an opcode.
type Shape byte

// Operand shapes.
const (
	// ShapeNone is an opcode without inline data.
	ShapeNone Shape = iota
	// ShapeInt is a signed 32-bit immediate (constants, variable ids,
	// branch displacements, callee ids, counts).
	ShapeInt
	// ShapeString is a NUL-terminated CP1252 string.
	ShapeString
	// ShapeSwitch is a switch table, either inline or an index into the
	// tables of the script container.
	ShapeSwitch
	// ShapeLocal is a 32-bit local variable slot, see Descriptor.Local.
	ShapeLocal
	// ShapeByte is a single unsigned byte.
	ShapeByte
	// ShapeUnknown is an operand of unknown meaning, Descriptor.Width
	// bytes long.
	ShapeUnknown
)

var shapeNames = [...]string{
	ShapeNone:    "none",
	ShapeInt:     "int",
	ShapeString:  "string",
	ShapeSwitch:  "switch",
	ShapeLocal:   "local",
	ShapeByte:    "byte",
	ShapeUnknown: "unknown",
}

// String implements the fmt.Stringer interface.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", byte(s))
}

// Rule tells how the number of popped and pushed values is obtained.
type Rule byte

// Stack effect rules.
const (
	// RuleFixed uses Pops and Pushes as is.
	RuleFixed Rule = iota
	// RuleOperandCount pops as many values of Pops[0] kind as the int
	// operand says, then pushes Pushes.
	RuleOperandCount
	// RuleCall takes arguments and results from the callee signature.
	RuleCall
	// RulePopAll pops everything left on both stacks.
	RulePopAll
	// RuleHook is an event handler setter whose arguments are described
	// by a type string constant on the string stack.
	RuleHook
	// RuleEnum pops Pops and pushes a value whose kind is given by a type
	// constant among the popped ones.
	RuleEnum
	// RuleUnknown means the effect can't be asserted.
	RuleUnknown
)

var ruleNames = [...]string{
	RuleFixed:        "fixed",
	RuleOperandCount: "operand-count",
	RuleCall:         "call",
	RulePopAll:       "pop-all",
	RuleHook:         "hook",
	RuleEnum:         "enum",
	RuleUnknown:      "unknown",
}

// String implements the fmt.Stringer interface.
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", byte(r))
}

// Flow is a control flow class of an opcode.
type Flow byte

// Control flow classes.
const (
	Sequential Flow = iota
	CondBranch
	Branch
	Switch
	Return
	Call
)

var flowNames = [...]string{
	Sequential: "sequential",
	CondBranch: "conditional-branch",
	Branch:     "branch",
	Switch:     "switch",
	Return:     "return",
	Call:       "call",
}

// String implements the fmt.Stringer interface.
func (f Flow) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return fmt.Sprintf("Flow(%d)", byte(f))
}

// Terminates returns true if the instruction ends a basic block.
func (f Flow) Terminates() bool {
	return f == CondBranch || f == Branch || f == Switch || f == Return
}

// Referent is the kind of object a CC_*/IF_* operation is applied to.
type Referent byte

// Referent kinds.
const (
	NoReferent Referent = iota
	// Component is the component selected by the script (CC_* family).
	Component
	// Interface is a component passed on the stack (IF_* family).
	Interface
)

// String implements the fmt.Stringer interface.
func (r Referent) String() string {
	switch r {
	case NoReferent:
		return "none"
	case Component:
		return "component"
	case Interface:
		return "interface"
	default:
		return fmt.Sprintf("Referent(%d)", byte(r))
	}
}

// Variable is the Width of operands whose length depends on the data.
const Variable = -1

// StackEffect describes values consumed and produced by an instruction.
// Pops are listed in argument order, so the last one is the top of its
// stack.
type StackEffect struct {
	Pops   []Kind
	Pushes []Kind
	Rule   Rule
}

// Count returns the number of ints and strings in ks.
func Count(ks []Kind) (ints, strs int) {
	for _, k := range ks {
		if k == String {
			strs++
		} else {
			ints++
		}
	}
	return ints, strs
}

// String implements the fmt.Stringer interface.
func (e StackEffect) String() string {
	var sb strings.Builder
	for _, k := range e.Pops {
		sb.WriteByte(k.String()[0])
	}
	sb.WriteString("->")
	for _, k := range e.Pushes {
		sb.WriteByte(k.String()[0])
	}
	if e.Rule != RuleFixed {
		sb.WriteString(" (" + e.Rule.String() + ")")
	}
	return sb.String()
}

// Descriptor is an immutable description of a single opcode.
type Descriptor struct {
	Code     opcode.Opcode
	Mnemonic string
	Operand  Shape
	// Local is the kind of the local variable slot for ShapeLocal.
	Local Kind
	// Width is the operand length in bytes or Variable.
	Width    int
	Stack    StackEffect
	Flow     Flow
	Referent Referent
	// Opaque marks placeholders and unregistered codes: only the code and
	// the operand width are known.
	Opaque bool
	// Pseudo marks switch case combinators.
	Pseudo bool
}

// String implements the fmt.Stringer interface.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%d) operand=%s/%d stack=%s flow=%s",
		d.Mnemonic, int32(d.Code), d.Operand, d.Width, d.Stack, d.Flow)
}
