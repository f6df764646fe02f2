/*
Package script reads compiled CS2 script containers. A container is a
NUL-terminated name, the code and a trailer:

	int32 instruction count
	u16   int locals, string locals, int arguments, string arguments
	u8    switch table count
	      for every table: u16 case count, then (int32 label, int32 disp)
	u16   length of the switch section, the count byte included

All numbers are big-endian.
*/
package script

import (
	"errors"
	"fmt"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// fixedTrailer is the trailer size without switch tables.
const fixedTrailer = 4 + 4*2 + 2

var (
	// ErrFormat is returned for containers that can't be parsed.
	ErrFormat = errors.New("malformed script container")
	// ErrInstructionCount is returned when the code doesn't match the
	// declared instruction count.
	ErrInstructionCount = errors.New("instruction count mismatch")
)

// Script is a parsed container. Code offsets are relative to Code.
type Script struct {
	Name             string
	Code             []byte
	InstructionCount int
	LocalInts        int
	LocalStrings     int
	IntArgs          int
	StringArgs       int
	Switches         []decoder.RawTable
}

// Read parses a script container.
func Read(b []byte) (*Script, error) {
	if len(b) < fixedTrailer+1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrFormat, len(b))
	}
	s := new(Script)
	r := io.NewBinReaderFromBuf(b)
	s.Name = r.ReadCString()
	if r.Err != nil {
		return nil, fmt.Errorf("%w: name: %v", ErrFormat, r.Err)
	}
	codeStart := r.Pos

	swLen := int(b[len(b)-2])<<8 | int(b[len(b)-1])
	trailer := len(b) - swLen - fixedTrailer
	if swLen < 1 || trailer < codeStart {
		return nil, fmt.Errorf("%w: switch section of %d bytes", ErrFormat, swLen)
	}

	r = io.NewBinReaderFromBuf(b[trailer : len(b)-2])
	count := r.ReadI32BE()
	s.LocalInts = int(r.ReadU16BE())
	s.LocalStrings = int(r.ReadU16BE())
	s.IntArgs = int(r.ReadU16BE())
	s.StringArgs = int(r.ReadU16BE())
	n := int(r.ReadB())
	for i := 0; i < n && r.Err == nil; i++ {
		cases := int(r.ReadU16BE())
		if cases*8 > r.Len() {
			return nil, fmt.Errorf("%w: switch %d has %d cases", ErrFormat, i, cases)
		}
		tab := make(decoder.RawTable, cases)
		for j := range tab {
			tab[j].Label = r.ReadI32BE()
			tab[j].Disp = r.ReadI32BE()
		}
		s.Switches = append(s.Switches, tab)
	}
	if r.Err != nil {
		return nil, fmt.Errorf("%w: trailer: %v", ErrFormat, r.Err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d stray bytes in the switch section", ErrFormat, r.Len())
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: instruction count %d", ErrFormat, count)
	}
	s.InstructionCount = int(count)
	s.Code = b[codeStart:trailer]
	return s, nil
}

// Bytes serializes the container.
func (s *Script) Bytes() ([]byte, error) {
	w := io.NewBufBinWriter()
	w.WriteCString(s.Name)
	w.WriteBytes(s.Code)

	for _, v := range []int{s.LocalInts, s.LocalStrings, s.IntArgs, s.StringArgs} {
		if v < 0 || v > 0xffff {
			return nil, fmt.Errorf("%w: header value %d", ErrFormat, v)
		}
	}
	if len(s.Switches) > 0xff {
		return nil, fmt.Errorf("%w: %d switch tables", ErrFormat, len(s.Switches))
	}
	w.WriteI32BE(int32(s.InstructionCount))
	w.WriteU16BE(uint16(s.LocalInts))
	w.WriteU16BE(uint16(s.LocalStrings))
	w.WriteU16BE(uint16(s.IntArgs))
	w.WriteU16BE(uint16(s.StringArgs))

	swLen := 1
	w.WriteB(byte(len(s.Switches)))
	for _, tab := range s.Switches {
		if len(tab) > 0xffff {
			return nil, fmt.Errorf("%w: %d cases", ErrFormat, len(tab))
		}
		w.WriteU16BE(uint16(len(tab)))
		for _, c := range tab {
			w.WriteI32BE(c.Label)
			w.WriteI32BE(c.Disp)
		}
		swLen += 2 + 8*len(tab)
	}
	if swLen > 0xffff {
		return nil, fmt.Errorf("%w: switch section of %d bytes", ErrFormat, swLen)
	}
	w.WriteU16BE(uint16(swLen))
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}

// Decode decodes the code using the container's switch tables. Settings
// other than the switch encoding are taken from d, which may be nil.
func (s *Script) Decode(d *decoder.Decoder) ([]decoder.Instruction, error) {
	var dec decoder.Decoder
	if d != nil {
		dec = *d
	}
	dec.Switches = decoder.SwitchIndexed
	dec.Tables = s.Switches
	insts, err := dec.Decode(s.Code, 0)
	if err != nil {
		return nil, err
	}
	if len(insts) != s.InstructionCount {
		return nil, fmt.Errorf("%w: %d declared, %d decoded", ErrInstructionCount, s.InstructionCount, len(insts))
	}
	return insts, nil
}

// Signature returns the calling convention of the script. Return types
// are found in the code, so it's decoded without callee signatures.
func (s *Script) Signature() (decoder.Signature, error) {
	insts, err := s.Decode(nil)
	if err != nil {
		return decoder.Signature{}, err
	}
	return decoder.Signature{
		IntArgs:    s.IntArgs,
		StringArgs: s.StringArgs,
		Returns:    ReturnTypes(insts),
	}, nil
}

// ReturnTypes returns the kinds of constants pushed right before the final
// instruction, which is how scripts declare their results.
func ReturnTypes(insts []decoder.Instruction) []registry.Kind {
	var ts []registry.Kind
loop:
	for i := len(insts) - 2; i >= 0; i-- {
		switch insts[i].Op {
		case opcode.PUSH_CONSTANT_INT:
			ts = append(ts, registry.Int)
		case opcode.PUSH_CONSTANT_STRING:
			ts = append(ts, registry.String)
		default:
			break loop
		}
	}
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
	return ts
}
