package script

import (
	"testing"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/emit"
	"github.com/cs2kit/cs2/pkg/flow"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
	"github.com/stretchr/testify/require"
)

func code(t *testing.T, f func(w *io.BinWriter)) []byte {
	buf := io.NewBufBinWriter()
	f(buf.BinWriter)
	require.NoError(t, buf.Err)
	return buf.Bytes()
}

// switchScript takes an int argument, dispatches on it and returns an int
// and a string.
func switchScript(t *testing.T) *Script {
	return &Script{
		Code: code(t, func(w *io.BinWriter) {
			emit.Int(w, opcode.PUSH_INT_LOCAL, 0)    // 0
			emit.SwitchIndex(w, 0)                   // 1
			emit.Int(w, opcode.PUSH_CONSTANT_INT, 0) // 2
			emit.String(w, "none")                   // 3
			emit.Opcode(w, opcode.RETURN)            // 4
			emit.Int(w, opcode.PUSH_CONSTANT_INT, 1) // 5
			emit.String(w, "one")                    // 6
			emit.Opcode(w, opcode.RETURN)            // 7
		}),
		InstructionCount: 8,
		LocalInts:        1,
		IntArgs:          1,
		Switches:         []decoder.RawTable{{{Label: 1, Disp: 3}, {Label: 2, Disp: 3}}},
	}
}

func TestReadWrite(t *testing.T) {
	s := switchScript(t)
	b, err := s.Bytes()
	require.NoError(t, err)
	require.Equal(t, byte(0), b[0])

	r, err := Read(b)
	require.NoError(t, err)
	require.Equal(t, s, r)

	s.Name = "[clientscript,test]"
	b, err = s.Bytes()
	require.NoError(t, err)
	r, err = Read(b)
	require.NoError(t, err)
	require.Equal(t, "[clientscript,test]", r.Name)
	require.Equal(t, s.Code, r.Code)
}

func TestDecode(t *testing.T) {
	s := switchScript(t)
	insts, err := s.Decode(&decoder.Decoder{Strict: true})
	require.NoError(t, err)
	require.Len(t, insts, 8)
	require.Equal(t, int32(0), insts[1].Operand.Switch.Index)

	p, err := flow.Resolve(insts, flow.Options{})
	require.NoError(t, err)
	tab := p.Switches[1]
	require.Equal(t, insts[5].Offset, tab.Target(1))
	require.Equal(t, insts[5].Offset, tab.Target(2))
	require.Equal(t, insts[2].Offset, tab.Default)

	require.Equal(t, []registry.Kind{registry.Int, registry.String}, ReturnTypes(insts))

	sig, err := s.Signature()
	require.NoError(t, err)
	require.Equal(t, decoder.Signature{IntArgs: 1, Returns: []registry.Kind{registry.Int, registry.String}}, sig)

	s.InstructionCount = 7
	_, err = s.Decode(nil)
	require.ErrorIs(t, err, ErrInstructionCount)
	_, err = s.Signature()
	require.ErrorIs(t, err, ErrInstructionCount)

	s.InstructionCount = 8
	s.Switches = nil
	_, err = s.Decode(nil)
	require.ErrorIs(t, err, decoder.ErrBadSwitch)
}

func TestReturnTypes(t *testing.T) {
	insts, err := decoder.Decode(code(t, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_VAR, 1)
		emit.Opcode(w, opcode.RETURN)
	}), 0)
	require.NoError(t, err)
	require.Empty(t, ReturnTypes(insts))
	require.Empty(t, ReturnTypes(nil))
}

func TestReadMalformed(t *testing.T) {
	good, err := switchScript(t).Bytes()
	require.NoError(t, err)

	tests := map[string][]byte{
		"short":          {0, 0, 0},
		"no name end":    append([]byte{'a', 'b'}, make([]byte, 14)...),
		"huge switches":  append(append([]byte{}, good[:len(good)-2]...), 0xff, 0xff),
		"stray bytes":    append(append([]byte{}, good[:len(good)-2]...), 0, byte(good[len(good)-1]-1)),
		"zero sw length": append(append([]byte{}, good[:len(good)-2]...), 0, 0),
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(b)
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestBytesLimits(t *testing.T) {
	s := &Script{LocalInts: 0x10000}
	_, err := s.Bytes()
	require.ErrorIs(t, err, ErrFormat)

	s = &Script{Switches: make([]decoder.RawTable, 256)}
	_, err = s.Bytes()
	require.ErrorIs(t, err, ErrFormat)
}
