package registry

import (
	"testing"

	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdentity(t *testing.T) {
	for _, op := range opcode.All() {
		d := Lookup(op)
		require.NotNil(t, d)
		require.Equal(t, op, d.Code, "code %d", op)
		require.Equal(t, op.String(), d.Mnemonic)
		require.Same(t, d, Lookup(op), "descriptor of %s is not shared", op)
	}
}

func TestAllSorted(t *testing.T) {
	all := Default().All()
	require.Equal(t, len(opcode.All()), len(all))
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Code, all[i].Code)
	}
	all[0] = nil
	require.NotNil(t, Default().All()[0])
}

func TestUnknownCodes(t *testing.T) {
	for _, c := range []opcode.Opcode{4, 99, 103, 999, 7000, 0xffff} {
		require.False(t, Default().Contains(c))
		d := Lookup(c)
		require.True(t, d.Opaque)
		require.Equal(t, ShapeUnknown, d.Operand)
		require.Equal(t, RuleUnknown, d.Stack.Rule)
		require.Equal(t, c, d.Code)
	}
	require.Equal(t, 4, Lookup(4).Width)
	require.Equal(t, 4, Lookup(99).Width)
	require.Equal(t, 1, Lookup(100+0x7000).Width)
	require.Equal(t, 1, Lookup(7000).Width)
}

func TestPlaceholders(t *testing.T) {
	for _, op := range []opcode.Opcode{opcode.OP_3100, opcode.OP_3657, opcode.OP_4207,
		opcode.OP_4212, opcode.OP_5000, opcode.OP_6699, opcode.OP_1927, opcode.OP_2927} {
		d := Lookup(op)
		require.True(t, d.Opaque, op.String())
		require.Equal(t, 1, d.Width)
		require.Equal(t, ShapeUnknown, d.Operand)
	}

	enum := Lookup(opcode.ENUM)
	require.False(t, enum.Opaque)
	require.Equal(t, RuleEnum, enum.Stack.Rule)
	require.Equal(t, 1, enum.Width)

	// Low-range placeholders have known effects.
	d := Lookup(opcode.OP_42)
	require.False(t, d.Opaque)
	require.Equal(t, ShapeInt, d.Operand)
	require.Equal(t, []Kind{Int}, d.Stack.Pushes)
}

func TestPlaceholderEffects(t *testing.T) {
	d := Lookup(opcode.OP_5003)
	require.True(t, d.Opaque)
	require.Equal(t, RuleFixed, d.Stack.Rule)
	require.Equal(t, []Kind{Int, Int}, d.Stack.Pops)
	require.Equal(t, []Kind{Int, Int, Int, String, String, String}, d.Stack.Pushes)

	d = Lookup(opcode.OP_3103)
	require.Equal(t, RuleFixed, d.Stack.Rule)
	require.Empty(t, d.Stack.Pops)
	require.Empty(t, d.Stack.Pushes)

	require.Equal(t, RuleUnknown, Lookup(opcode.OP_5630).Stack.Rule)
	require.Equal(t, RuleUnknown, Lookup(opcode.OP_4212).Stack.Rule)
}

func TestOperandWidths(t *testing.T) {
	tests := []struct {
		op    opcode.Opcode
		shape Shape
		width int
	}{
		{opcode.PUSH_CONSTANT_INT, ShapeInt, 4},
		{opcode.PUSH_CONSTANT_STRING, ShapeString, Variable},
		{opcode.BRANCH, ShapeInt, 4},
		{opcode.RETURN, ShapeByte, 1},
		{opcode.PUSH_INT_LOCAL, ShapeLocal, 4},
		{opcode.POP_INT_DISCARD, ShapeByte, 1},
		{opcode.POP_STRING_DISCARD, ShapeByte, 1},
		{opcode.GOSUB_WITH_PARAMS, ShapeInt, 4},
		{opcode.SWITCH, ShapeSwitch, Variable},
		{opcode.CC_CREATE, ShapeByte, 1},
		{opcode.IF_SETTEXT, ShapeByte, 1},
		{opcode.ADD, ShapeByte, 1},
		{opcode.OC_UNCERT, ShapeByte, 1},
	}
	for _, tc := range tests {
		d := Lookup(tc.op)
		assert.Equal(t, tc.shape, d.Operand, tc.op.String())
		assert.Equal(t, tc.width, d.Width, tc.op.String())
	}
	require.Equal(t, String, Lookup(opcode.POP_STRING_LOCAL).Local)
	require.Equal(t, Int, Lookup(opcode.POP_INT_LOCAL).Local)
}

func TestFlowClasses(t *testing.T) {
	for _, op := range []opcode.Opcode{opcode.BRANCH_NOT, opcode.BRANCH_EQUALS,
		opcode.BRANCH_LESS_THAN, opcode.BRANCH_GREATER_THAN,
		opcode.BRANCH_LESS_THAN_OR_EQUALS, opcode.BRANCH_GREATER_THAN_OR_EQUALS} {
		d := Lookup(op)
		require.Equal(t, CondBranch, d.Flow)
		require.Equal(t, []Kind{Int, Int}, d.Stack.Pops)
		require.True(t, d.Flow.Terminates())
	}
	require.Equal(t, Branch, Lookup(opcode.BRANCH).Flow)
	require.Equal(t, Switch, Lookup(opcode.SWITCH).Flow)
	require.Equal(t, Return, Lookup(opcode.RETURN).Flow)
	require.Equal(t, Call, Lookup(opcode.GOSUB_WITH_PARAMS).Flow)
	require.False(t, Call.Terminates())
	require.Equal(t, Sequential, Lookup(opcode.ADD).Flow)
}

func TestWidgetFamilies(t *testing.T) {
	cc, ifc := Lookup(opcode.CC_SETPOSITION), Lookup(opcode.IF_SETPOSITION)
	require.Equal(t, Component, cc.Referent)
	require.Equal(t, Interface, ifc.Referent)
	require.Equal(t, []Kind{Int, Int, Int, Int}, cc.Stack.Pops)
	require.Equal(t, []Kind{Int, Int, Int, Int, Int}, ifc.Stack.Pops)

	get, ifget := Lookup(opcode.CC_GETTEXT), Lookup(opcode.IF_GETTEXT)
	require.Empty(t, get.Stack.Pops)
	require.Equal(t, []Kind{Int}, ifget.Stack.Pops)
	require.Equal(t, []Kind{String}, ifget.Stack.Pushes)

	op := Lookup(opcode.IF_SETOP)
	require.Equal(t, []Kind{Int, String, Int}, op.Stack.Pops)

	for _, p := range [][2]opcode.Opcode{{opcode.CC_SETONCLICK, opcode.IF_SETONCLICK}, {opcode.OP_1427, opcode.OP_2427}} {
		require.Equal(t, RuleHook, Lookup(p[0]).Stack.Rule)
		require.Equal(t, RuleHook, Lookup(p[1]).Stack.Rule)
		require.Equal(t, Interface, Lookup(p[1]).Referent)
	}
	require.Equal(t, NoReferent, Lookup(opcode.CC_CREATE).Referent)
}

func TestPseudo(t *testing.T) {
	for _, op := range []opcode.Opcode{opcode.SS_OR, opcode.SS_AND} {
		d := Lookup(op)
		require.True(t, d.Pseudo)
		require.False(t, d.Opaque)
		require.Equal(t, ShapeNone, d.Operand)
	}
}

func TestStrings(t *testing.T) {
	require.Equal(t, "ii->i", Lookup(opcode.ADD).Stack.String())
	require.Equal(t, "s->s (operand-count)", Lookup(opcode.JOIN_STRING).Stack.String())
	require.Equal(t, "ADD(4000) operand=byte/1 stack=ii->i flow=sequential", Lookup(opcode.ADD).String())
	require.Equal(t, "Shape(200)", Shape(200).String())
	require.Equal(t, "Kind(7)", Kind(7).String())
	require.Equal(t, "interface", Interface.String())

	ints, strs := Count([]Kind{Int, String, Int})
	require.Equal(t, 2, ints)
	require.Equal(t, 1, strs)
}
