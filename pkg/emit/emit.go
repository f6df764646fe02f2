/*
Package emit writes CS2 bytecode. It's used to build test programs and to
re-encode decoded instructions.
*/
package emit

import (
	"errors"
	"fmt"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// ErrShape is returned when an operand doesn't match the opcode.
var ErrShape = errors.New("operand doesn't match opcode")

// Instruction emits an opcode followed by raw operand bytes.
func Instruction(w *io.BinWriter, op opcode.Opcode, b []byte) {
	w.WriteU16BE(uint16(op))
	w.WriteBytes(b)
}

// Opcode emits an opcode with a zero operand of the width its descriptor
// declares. Use it for opcodes whose operand is ignored by the client.
func Opcode(w *io.BinWriter, op opcode.Opcode) {
	d := registry.Lookup(op)
	w.WriteU16BE(uint16(op))
	switch d.Operand {
	case registry.ShapeNone:
	case registry.ShapeString:
		w.WriteCString("")
	case registry.ShapeSwitch:
		w.WriteU16BE(0)
	default:
		w.WriteBytes(make([]byte, d.Width))
	}
}

// Int emits an opcode with an int32 operand.
func Int(w *io.BinWriter, op opcode.Opcode, v int32) {
	w.WriteU16BE(uint16(op))
	w.WriteI32BE(v)
}

// Byte emits an opcode with a one byte operand.
func Byte(w *io.BinWriter, op opcode.Opcode, b byte) {
	w.WriteU16BE(uint16(op))
	w.WriteB(b)
}

// String emits PUSH_CONSTANT_STRING.
func String(w *io.BinWriter, s string) {
	w.WriteU16BE(uint16(opcode.PUSH_CONSTANT_STRING))
	w.WriteCString(s)
}

// Jmp emits a branch with the given displacement.
func Jmp(w *io.BinWriter, op opcode.Opcode, disp int32) {
	if registry.Lookup(op).Flow != registry.CondBranch && op != opcode.BRANCH {
		w.Err = fmt.Errorf("%w: %s is not a branch", ErrShape, op)
		return
	}
	Int(w, op, disp)
}

// Switch emits a SWITCH with an inline table.
func Switch(w *io.BinWriter, groups []decoder.CaseGroup) {
	w.WriteU16BE(uint16(opcode.SWITCH))
	switchTable(w, groups)
}

// SwitchIndex emits a SWITCH referring to a container table.
func SwitchIndex(w *io.BinWriter, idx int32) {
	Int(w, opcode.SWITCH, idx)
}

func switchTable(w *io.BinWriter, groups []decoder.CaseGroup) {
	if len(groups) > 0xffff {
		w.Err = fmt.Errorf("%w: %d case groups", ErrShape, len(groups))
		return
	}
	w.WriteU16BE(uint16(len(groups)))
	for _, g := range groups {
		if len(g.Terms) == 0 || len(g.Terms) > 0xff {
			w.Err = fmt.Errorf("%w: %d terms in a case group", ErrShape, len(g.Terms))
			return
		}
		w.WriteB(byte(len(g.Terms)))
		w.WriteI32BE(g.Terms[0].Label)
		for _, t := range g.Terms[1:] {
			w.WriteI16BE(int16(t.Comb))
			w.WriteI32BE(t.Label)
		}
		w.WriteI32BE(g.Disp)
	}
}

// Decoded re-encodes a decoded instruction.
func Decoded(w *io.BinWriter, inst *decoder.Instruction) {
	d := inst.Desc
	if d == nil {
		d = registry.Lookup(inst.Op)
	}
	w.WriteU16BE(uint16(inst.Op))
	switch d.Operand {
	case registry.ShapeNone:
	case registry.ShapeInt, registry.ShapeLocal:
		w.WriteI32BE(inst.Operand.Int)
	case registry.ShapeString:
		w.WriteCString(inst.Operand.String)
	case registry.ShapeByte:
		w.WriteB(inst.Operand.Byte)
	case registry.ShapeSwitch:
		sw := inst.Operand.Switch
		switch {
		case sw == nil:
			w.Err = fmt.Errorf("%w: SWITCH without table", ErrShape)
		case sw.Index >= 0:
			w.WriteI32BE(sw.Index)
		default:
			switchTable(w, sw.Groups)
		}
	default:
		if len(inst.Operand.Raw) != d.Width {
			w.Err = fmt.Errorf("%w: %s needs %d operand bytes, got %d",
				ErrShape, inst.Op, d.Width, len(inst.Operand.Raw))
			return
		}
		w.WriteBytes(inst.Operand.Raw)
	}
}

// Program re-encodes a list of decoded instructions.
func Program(insts []decoder.Instruction) ([]byte, error) {
	buf := io.NewBufBinWriter()
	for i := range insts {
		Decoded(buf.BinWriter, &insts[i])
	}
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}
