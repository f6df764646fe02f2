package decoder_test

import (
	"testing"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/emit"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
	"github.com/stretchr/testify/require"
)

func last(insts []decoder.Instruction) decoder.Instruction {
	return insts[len(insts)-1]
}

func TestStackStrict(t *testing.T) {
	underflow := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.Opcode(w, opcode.ADD)
		emit.Opcode(w, opcode.POP_INT_DISCARD)
		emit.Opcode(w, opcode.RETURN)
	})
	leftover := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.Jmp(w, opcode.BRANCH, 0)
		emit.Opcode(w, opcode.RETURN)
	})

	for _, prog := range [][]byte{underflow, leftover} {
		strict := decoder.Decoder{Strict: true}
		_, err := strict.Decode(prog, 0)
		require.ErrorIs(t, err, decoder.ErrStack)

		insts, err := decoder.Decode(prog, 0)
		require.NoError(t, err)
		require.Equal(t, decoder.Depth{Known: true}, last(insts).After)
	}

	insts, err := decoder.Decode(underflow, 0)
	require.NoError(t, err)
	require.False(t, insts[1].After.Known)
	require.Nil(t, insts[1].Stack)
	require.Equal(t, "?", insts[2].Before.String())
}

func TestStackReturnPopsAll(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.String(w, "a")
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{Strict: true}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	require.Equal(t, decoder.Depth{Ints: 1, Strings: 1, Known: true}, insts[2].Before)
	require.Equal(t, "i1 s1", insts[2].Before.String())
	require.Equal(t, decoder.Depth{Known: true}, insts[2].After)
}

func TestStackJoinString(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.String(w, "a")
		emit.String(w, "b")
		emit.String(w, "c")
		emit.Int(w, opcode.JOIN_STRING, 3)
		emit.Opcode(w, opcode.POP_STRING_DISCARD)
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{Strict: true}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	require.Equal(t, decoder.Depth{Strings: 1, Known: true}, insts[3].After)
	require.Equal(t, decoder.Depth{Known: true}, insts[4].After)

	bad := build(t, func(w *io.BinWriter) {
		emit.String(w, "a")
		emit.Int(w, opcode.JOIN_STRING, 2)
		emit.Opcode(w, opcode.RETURN)
	})
	_, err = d.Decode(bad, 0)
	require.ErrorIs(t, err, decoder.ErrStack)
}

func TestStackCall(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.String(w, "x")
		emit.Int(w, opcode.GOSUB_WITH_PARAMS, 77)
		emit.Opcode(w, opcode.POP_STRING_DISCARD)
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{
		Strict: true,
		Signatures: decoder.SignatureMap{
			77: {IntArgs: 1, StringArgs: 1, Returns: []registry.Kind{registry.String}},
		},
	}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	require.Equal(t, decoder.Depth{Strings: 1, Known: true}, insts[2].After)

	d.Signatures = nil
	insts, err = d.Decode(prog, 0)
	require.NoError(t, err)
	require.False(t, insts[2].After.Known)
	require.True(t, last(insts).After.Known)
}

func TestStackHooks(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 500) // script
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.String(w, "label")
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 9) // transmit list
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 10)
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 2)
		emit.String(w, "isY")
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 0x10001) // component
		emit.Opcode(w, opcode.IF_SETONVARTRANSMIT)

		emit.Int(w, opcode.PUSH_CONSTANT_INT, 501)
		emit.String(w, "")
		emit.Opcode(w, opcode.CC_SETONCLICK)
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{Strict: true}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	require.Equal(t, decoder.Depth{Ints: 6, Strings: 2, Known: true}, insts[8].Before)
	require.Equal(t, decoder.Depth{Known: true}, insts[8].After)
	require.Equal(t, decoder.Depth{Known: true}, insts[11].After)

	// The argument description has to be a constant.
	dyn := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 501)
		emit.Int(w, opcode.PUSH_STRING_LOCAL, 0)
		emit.Opcode(w, opcode.CC_SETONCLICK)
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err = d.Decode(dyn, 0)
	require.NoError(t, err)
	require.False(t, insts[2].After.Known)
}

func TestStackEnum(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 'i')
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 's')
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1000)
		emit.Int(w, opcode.PUSH_VAR, 5)
		emit.Opcode(w, opcode.ENUM)
		emit.Opcode(w, opcode.POP_STRING_DISCARD)
		emit.Opcode(w, opcode.RETURN)
	})
	d := decoder.Decoder{Strict: true}
	insts, err := d.Decode(prog, 0)
	require.NoError(t, err)
	require.Equal(t, decoder.Depth{Strings: 1, Known: true}, insts[4].After)
	require.Equal(t, registry.String, insts[4].Stack.Strings[0].Kind)
	require.False(t, insts[4].Stack.Strings[0].Const)
}

func TestStackFold(t *testing.T) {
	tests := []struct {
		op   opcode.Opcode
		a, b int32
		res  int32
		ok   bool
	}{
		{opcode.SUB, 3, 5, -2, true},
		{opcode.MULTIPLY, 6, 7, 42, true},
		{opcode.DIV, 7, 2, 3, true},
		{opcode.DIV, 7, 0, 0, false},
		{opcode.MOD, 7, 0, 0, false},
		{opcode.AND, 6, 3, 2, true},
		{opcode.OR, 4, 1, 5, true},
		{opcode.POW, 2, 3, 0, false},
	}
	for _, tc := range tests {
		prog := build(t, func(w *io.BinWriter) {
			emit.Int(w, opcode.PUSH_CONSTANT_INT, tc.a)
			emit.Int(w, opcode.PUSH_CONSTANT_INT, tc.b)
			emit.Opcode(w, tc.op)
		})
		insts, err := decoder.Decode(prog, 0)
		require.NoError(t, err)
		top := insts[2].Stack.Ints[0]
		require.Equal(t, tc.ok, top.Const, tc.op.String())
		if tc.ok {
			require.Equal(t, tc.res, top.Int, tc.op.String())
		}
	}
}

func TestStackPlaceholder(t *testing.T) {
	prog := build(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
		emit.Instruction(w, opcode.OP_3601, []byte{0})
		emit.Instruction(w, opcode.OP_5630, []byte{0})
		emit.Opcode(w, opcode.RETURN)
	})
	insts, err := decoder.Decode(prog, 0)
	require.NoError(t, err)
	require.True(t, insts[1].Desc.Opaque)
	require.Equal(t, decoder.Depth{Strings: 2, Known: true}, insts[1].After)
	require.False(t, insts[2].After.Known)
}
