/*
Package decoder turns CS2 bytecode into a list of instructions. Decoding is
a single forward pass: every opcode is followed by exactly the operand its
descriptor declares, so one misjudged width would shift everything after
it. Any failure aborts the whole decode, no partial results are returned.
*/
package decoder

import (
	"errors"
	"fmt"
	"math"

	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// NoOpcode is used in errors that happen before an opcode is read.
const NoOpcode = opcode.Opcode(math.MinInt32)

// Decoding errors, wrapped by *Error.
var (
	ErrTruncated           = errors.New("stream truncated")
	ErrBadSwitch           = errors.New("malformed switch table")
	ErrTooManyInstructions = errors.New("instruction limit exceeded")
	ErrStack               = errors.New("stack mismatch")
)

// Error is a decoding failure at a particular instruction.
type Error struct {
	Offset int
	Op     opcode.Opcode
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == NoOpcode {
		return fmt.Sprintf("decode at %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode %s at %d: %v", e.Op, e.Offset, e.Err)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// SwitchEncoding selects how SWITCH operands are stored.
type SwitchEncoding byte

// Switch encodings.
const (
	// SwitchInline is a table stored right after the opcode: u16 group
	// count, then for every group a u8 term count, an int32 label,
	// (int16 combinator, int32 label) for every other term and an int32
	// displacement.
	SwitchInline SwitchEncoding = iota
	// SwitchIndexed is an int32 index into Decoder.Tables.
	SwitchIndexed
)

// String implements the fmt.Stringer interface.
func (s SwitchEncoding) String() string {
	switch s {
	case SwitchInline:
		return "inline"
	case SwitchIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("SwitchEncoding(%d)", byte(s))
	}
}

// ParseSwitchEncoding is the inverse of SwitchEncoding.String.
func ParseSwitchEncoding(s string) (SwitchEncoding, error) {
	switch s {
	case "inline", "":
		return SwitchInline, nil
	case "indexed":
		return SwitchIndexed, nil
	default:
		return 0, fmt.Errorf("unknown switch encoding %q", s)
	}
}

// Decoder holds decoding parameters. The zero value decodes inline
// switches with the default registry, no instruction limit and lenient
// stack checks.
type Decoder struct {
	// Registry defaults to registry.Default().
	Registry *registry.Registry
	Switches SwitchEncoding
	// Tables are the switch tables for SwitchIndexed.
	Tables []RawTable
	// Signatures is used to compute GOSUB_WITH_PARAMS stack effects.
	Signatures Signatures
	// MaxInstructions limits the number of decoded instructions if
	// positive.
	MaxInstructions int
	// Strict turns stack underflows and values left at block terminators
	// into ErrStack errors.
	Strict bool
}

// Decode decodes prog starting at byte offset start with default settings.
func Decode(prog []byte, start int) ([]Instruction, error) {
	var d Decoder
	return d.Decode(prog, start)
}

// Decode decodes prog from start to its end.
func (d *Decoder) Decode(prog []byte, start int) ([]Instruction, error) {
	if start < 0 || start > len(prog) {
		return nil, &Error{Offset: start, Op: NoOpcode, Err: ErrTruncated}
	}
	reg := d.Registry
	if reg == nil {
		reg = registry.Default()
	}

	var (
		r     = io.NewBinReaderFromBuf(prog)
		tr    = newTracker(d.Signatures, d.Strict)
		insts []Instruction
	)
	r.Pos = start
	for r.Len() > 0 {
		off := r.Pos
		if d.MaxInstructions > 0 && len(insts) >= d.MaxInstructions {
			return nil, &Error{Offset: off, Op: NoOpcode, Err: ErrTooManyInstructions}
		}
		op := opcode.Opcode(r.ReadU16BE())
		if r.Err != nil {
			return nil, &Error{Offset: off, Op: NoOpcode, Err: fmt.Errorf("%w: opcode: %v", ErrTruncated, r.Err)}
		}
		inst := Instruction{
			Offset: off,
			Index:  len(insts),
			Op:     op,
			Desc:   reg.Lookup(op),
		}
		if err := d.readOperand(r, &inst); err != nil {
			return nil, &Error{Offset: off, Op: op, Err: err}
		}
		inst.Size = r.Pos - off
		if err := tr.step(&inst); err != nil {
			return nil, &Error{Offset: off, Op: op, Err: err}
		}
		insts = append(insts, inst)
	}
	return insts, nil
}

func (d *Decoder) readOperand(r *io.BufBinReader, inst *Instruction) error {
	desc := inst.Desc
	switch desc.Operand {
	case registry.ShapeNone:
	case registry.ShapeInt, registry.ShapeLocal:
		inst.Operand.Int = r.ReadI32BE()
	case registry.ShapeString:
		inst.Operand.String = r.ReadCString()
	case registry.ShapeByte:
		inst.Operand.Byte = r.ReadB()
	case registry.ShapeSwitch:
		sw, err := d.readSwitch(r)
		if err != nil {
			return err
		}
		inst.Operand.Switch = sw
	default:
		raw := make([]byte, desc.Width)
		r.ReadBytes(raw)
		inst.Operand.Raw = raw
	}
	if r.Err != nil {
		return fmt.Errorf("%w: %s operand: %v", ErrTruncated, desc.Operand, r.Err)
	}
	return nil
}

func (d *Decoder) readSwitch(r *io.BufBinReader) (*SwitchOperand, error) {
	if d.Switches == SwitchIndexed {
		idx := r.ReadI32BE()
		if r.Err != nil {
			return nil, nil
		}
		if idx < 0 || int(idx) >= len(d.Tables) {
			return nil, fmt.Errorf("%w: table %d of %d", ErrBadSwitch, idx, len(d.Tables))
		}
		tab := d.Tables[idx]
		sw := &SwitchOperand{Index: idx, Groups: make([]CaseGroup, len(tab))}
		for i, c := range tab {
			sw.Groups[i] = CaseGroup{Terms: []Term{{Label: c.Label}}, Disp: c.Disp}
		}
		return sw, nil
	}

	n := int(r.ReadU16BE())
	sw := &SwitchOperand{Index: -1, Groups: make([]CaseGroup, 0, n)}
	for i := 0; i < n && r.Err == nil; i++ {
		cnt := int(r.ReadB())
		if r.Err == nil && cnt == 0 {
			return nil, fmt.Errorf("%w: empty case group %d", ErrBadSwitch, i)
		}
		g := CaseGroup{Terms: make([]Term, 0, cnt)}
		g.Terms = append(g.Terms, Term{Label: r.ReadI32BE()})
		for j := 1; j < cnt && r.Err == nil; j++ {
			c := Combinator(r.ReadI16BE())
			if r.Err == nil && c != CombOr && c != CombAnd {
				return nil, fmt.Errorf("%w: bad combinator %d in group %d", ErrBadSwitch, int16(c), i)
			}
			g.Terms = append(g.Terms, Term{Comb: c, Label: r.ReadI32BE()})
		}
		g.Disp = r.ReadI32BE()
		sw.Groups = append(sw.Groups, g)
	}
	return sw, nil
}
