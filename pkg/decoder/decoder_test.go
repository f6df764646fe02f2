package decoder_test

import (
	"testing"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/emit"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, f func(w *io.BinWriter)) []byte {
	buf := io.NewBufBinWriter()
	f(buf.BinWriter)
	require.NoError(t, buf.Err)
	return buf.Bytes()
}

func ints(vs ...int32) []decoder.Value {
	res := make([]decoder.Value, len(vs))
	for i, v := range vs {
		res[i] = decoder.Value{Kind: registry.Int, Const: true, Int: v}
	}
	return res
}

func TestDecodeArithmetic(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 5)
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 3)
		emit.Opcode(w, opcode.ADD)
		emit.Opcode(w, opcode.RETURN)
	})
	require.Len(t, prog, 18)

	insts, err := decoder.Decode(prog, 0)
	require.NoError(t, err)
	require.Len(t, insts, 4)

	offsets := []int{0, 6, 12, 15}
	ops := []opcode.Opcode{opcode.PUSH_CONSTANT_INT, opcode.PUSH_CONSTANT_INT, opcode.ADD, opcode.RETURN}
	for i := range insts {
		assert.Equal(t, i, insts[i].Index)
		assert.Equal(t, offsets[i], insts[i].Offset)
		assert.Equal(t, ops[i], insts[i].Op)
	}
	assert.Equal(t, int32(5), insts[0].Operand.Int)
	assert.Equal(t, 18, insts[3].Next())

	trace := [][]decoder.Value{ints(5), ints(5, 3), ints(8), {}}
	require.Equal(t, decoder.Depth{Known: true}, insts[0].Before)
	for i, want := range trace {
		require.NotNil(t, insts[i].Stack)
		require.Equal(t, len(want), len(insts[i].Stack.Ints), "instruction %d", i)
		for j := range want {
			require.Equal(t, want[j], insts[i].Stack.Ints[j])
		}
		require.Equal(t, decoder.Depth{Ints: len(want), Known: true}, insts[i].After)
	}
}

func TestDecodeStart(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		w.WriteCString("script")
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err := decoder.Decode(prog, 7)
	require.NoError(t, err)
	require.Len(t, insts, 1)
	require.Equal(t, 7, insts[0].Offset)

	_, err = decoder.Decode(prog, len(prog)+1)
	require.ErrorIs(t, err, decoder.ErrTruncated)

	insts, err = decoder.Decode(nil, 0)
	require.NoError(t, err)
	require.Empty(t, insts)
}

func TestDecodeTruncated(t *testing.T) {
	tests := map[string][]byte{
		"string without payload": {0x00, 0x03},
		"string without NUL":     {0x00, 0x03, 'a', 'b'},
		"half opcode":            {0x00, 0x15, 0x00, 0x0f},
		"short int":              {0x00, 0x00, 0x00, 0x01},
		"missing byte operand":   {0x0f, 0xa0},
		"short switch":           {0x00, 0x3c, 0x00, 0x01, 0x01, 0x00},
		"short unknown operand":  {0x00, 0x04, 0x01},
	}
	for name, prog := range tests {
		t.Run(name, func(t *testing.T) {
			insts, err := decoder.Decode(prog, 0)
			require.ErrorIs(t, err, decoder.ErrTruncated)
			require.Nil(t, insts)
			var de *decoder.Error
			require.ErrorAs(t, err, &de)
		})
	}

	var de *decoder.Error
	_, err := decoder.Decode([]byte{0x00, 0x15, 0x00, 0x00, 0x03}, 0)
	require.ErrorAs(t, err, &de)
	require.Equal(t, 3, de.Offset)
	require.Equal(t, opcode.PUSH_CONSTANT_STRING, de.Op)

	_, err = decoder.Decode([]byte{0x00, 0x15, 0x00, 0x00}, 0)
	require.ErrorAs(t, err, &de)
	require.Equal(t, 3, de.Offset)
	require.Equal(t, decoder.NoOpcode, de.Op)
}

func TestDecodeUnknown(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Instruction(w, 7000, []byte{0xaa})
		emit.Instruction(w, 4, []byte{1, 2, 3, 4})
		emit.Instruction(w, opcode.OP_5630, []byte{0xbb})
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err := decoder.Decode(prog, 0)
	require.NoError(t, err)
	require.Len(t, insts, 4)

	require.True(t, insts[0].Desc.Opaque)
	require.Equal(t, []byte{0xaa}, insts[0].Operand.Raw)
	require.Equal(t, 3, insts[0].Size)
	require.Equal(t, []byte{1, 2, 3, 4}, insts[1].Operand.Raw)
	require.Equal(t, 6, insts[1].Size)
	require.True(t, insts[2].Desc.Opaque)
	require.Equal(t, "OP_5630 bb", insts[2].String())

	require.False(t, insts[0].After.Known)
	require.False(t, insts[2].After.Known)
	require.Equal(t, decoder.Depth{Known: true}, insts[3].After)
}

func TestDecodeInlineSwitch(t *testing.T) {
	groups := []decoder.CaseGroup{
		{Terms: []decoder.Term{{Label: 1}, {Comb: decoder.CombOr, Label: 2}}, Disp: 1},
		{Terms: []decoder.Term{{Label: 5}, {Comb: decoder.CombAnd, Label: 7}}, Disp: 2},
	}
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_VAR, 3)
		emit.Switch(w, groups)
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err := decoder.Decode(prog, 0)
	require.NoError(t, err)
	require.Len(t, insts, 3)

	sw := insts[1].Operand.Switch
	require.NotNil(t, sw)
	require.Equal(t, int32(-1), sw.Index)
	require.Equal(t, groups, sw.Groups)
	require.Equal(t, 2+2+(1+4+2+4+4)*2, insts[1].Size)
	require.Equal(t, decoder.Depth{Ints: 1, Known: true}, insts[1].Before)
	require.Equal(t, "SWITCH 1 SS_OR 2: +1, 5 SS_AND 7: +2", insts[1].String())
}

func TestDecodeBadSwitch(t *testing.T) {
	tests := map[string][]byte{
		"empty group":    {0x00, 0x3c, 0x00, 0x01, 0x00},
		"bad combinator": {0x00, 0x3c, 0x00, 0x01, 0x02, 0, 0, 0, 1, 0xff, 0xfd, 0, 0, 0, 2, 0, 0, 0, 0},
	}
	for name, prog := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decoder.Decode(prog, 0)
			require.ErrorIs(t, err, decoder.ErrBadSwitch)
		})
	}
}

func TestDecodeIndexedSwitch(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_VAR, 3)
		emit.SwitchIndex(w, 1)
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{
		Switches: decoder.SwitchIndexed,
		Tables: []decoder.RawTable{
			{{Label: 0, Disp: 0}},
			{{Label: 4, Disp: 0}, {Label: 9, Disp: 0}},
		},
	}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	sw := insts[1].Operand.Switch
	require.Equal(t, int32(1), sw.Index)
	require.Len(t, sw.Groups, 2)
	require.Equal(t, int32(9), sw.Groups[1].Terms[0].Label)
	require.Equal(t, 6, insts[1].Size)

	d.Tables = d.Tables[:1]
	_, err = d.Decode(prog, 0)
	require.ErrorIs(t, err, decoder.ErrBadSwitch)
}

func TestDecodeLimit(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		for i := 0; i < 4; i++ {
			emit.Opcode(w, opcode.RETURN)
		}
	})
	d := decoder.Decoder{MaxInstructions: 4}
	_, err := d.Decode(prog, 0)
	require.NoError(t, err)

	d.MaxInstructions = 3
	insts, err := d.Decode(prog, 0)
	require.ErrorIs(t, err, decoder.ErrTooManyInstructions)
	require.Nil(t, insts)
}

func TestSwitchEncodingString(t *testing.T) {
	for _, e := range []decoder.SwitchEncoding{decoder.SwitchInline, decoder.SwitchIndexed} {
		p, err := decoder.ParseSwitchEncoding(e.String())
		require.NoError(t, err)
		require.Equal(t, e, p)
	}
	_, err := decoder.ParseSwitchEncoding("table")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, -7)
		emit.String(w, "héllo")
		emit.Int(w, opcode.POP_STRING_LOCAL, 2)
		emit.Int(w, opcode.PUSH_INT_LOCAL, 0)
		emit.Jmp(w, opcode.BRANCH_NOT, 3)
		emit.Int(w, opcode.PUSH_VARBIT, 1234)
		emit.Byte(w, opcode.CC_SETHIDE, 1)
		emit.Instruction(w, opcode.OP_3100, []byte{9})
		emit.Int(w, opcode.PUSH_VAR, 1)
		emit.Switch(w, []decoder.CaseGroup{{Terms: []decoder.Term{{Label: 3}}, Disp: -2}})
		emit.Jmp(w, opcode.BRANCH, -4)
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err := decoder.Decode(prog, 0)
	require.NoError(t, err)
	require.Len(t, insts, 12)

	out, err := emit.Program(insts)
	require.NoError(t, err)
	require.Equal(t, prog, out)
}

func TestRoundTripStringBytes(t *testing.T) {
	for b := 1; b <= 0xff; b++ {
		prog := build(t, func(w *io.BinWriter) {
			emit.Instruction(w, opcode.PUSH_CONSTANT_STRING, []byte{byte(b), 0})
			emit.Opcode(w, opcode.RETURN)
		})
		insts, err := decoder.Decode(prog, 0)
		require.NoError(t, err, "byte %#x", b)

		out, err := emit.Program(insts)
		require.NoError(t, err, "byte %#x", b)
		require.Equal(t, prog, out, "byte %#x", b)
	}
}
