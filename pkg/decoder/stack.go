package decoder

import (
	"fmt"

	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// Signature is the calling convention of a script: arguments it takes from
// the caller's stacks and values it leaves there.
type Signature struct {
	IntArgs    int
	StringArgs int
	Returns    []registry.Kind
}

// Signatures provides callee signatures for GOSUB_WITH_PARAMS.
type Signatures interface {
	Signature(id int32) (Signature, bool)
}

// SignatureMap is a static Signatures implementation.
type SignatureMap map[int32]Signature

// Signature implements the Signatures interface.
func (m SignatureMap) Signature(id int32) (Signature, bool) {
	s, ok := m[id]
	return s, ok
}

// tracker follows operand stack heights through a script. Constants are
// tracked because some effects depend on values pushed earlier.
type tracker struct {
	ints   []Value
	strs   []Value
	known  bool
	sigs   Signatures
	strict bool
}

func newTracker(sigs Signatures, strict bool) *tracker {
	return &tracker{known: true, sigs: sigs, strict: strict}
}

func (t *tracker) depth() Depth {
	if !t.known {
		return Depth{}
	}
	return Depth{Ints: len(t.ints), Strings: len(t.strs), Known: true}
}

func (t *tracker) frame() *Frame {
	if !t.known {
		return nil
	}
	return &Frame{
		Ints:    append([]Value(nil), t.ints...),
		Strings: append([]Value(nil), t.strs...),
	}
}

func (t *tracker) reset() {
	t.ints = t.ints[:0]
	t.strs = t.strs[:0]
	t.known = true
}

func (t *tracker) lose() {
	t.ints = t.ints[:0]
	t.strs = t.strs[:0]
	t.known = false
}

// step applies the stack effect of inst and fills its depths. Errors are
// only returned in strict mode, otherwise the depth becomes unknown.
func (t *tracker) step(inst *Instruction) error {
	inst.Before = t.depth()
	if t.known {
		ok, err := t.apply(inst)
		if err != nil {
			if t.strict {
				return err
			}
			ok = false
		}
		if !ok {
			t.lose()
		}
	}
	if inst.Desc.Flow.Terminates() {
		if t.strict && t.known && (len(t.ints) != 0 || len(t.strs) != 0) {
			return fmt.Errorf("%w: %d ints and %d strings left at %s",
				ErrStack, len(t.ints), len(t.strs), inst.Op)
		}
		t.reset()
	}
	inst.After = t.depth()
	inst.Stack = t.frame()
	return nil
}

// apply returns false if the effect can't be computed.
func (t *tracker) apply(inst *Instruction) (bool, error) {
	st := inst.Desc.Stack
	switch st.Rule {
	case registry.RuleFixed:
		args, err := t.popKinds(st.Pops)
		if err != nil {
			return false, err
		}
		t.pushFixed(inst, args)
		return true, nil
	case registry.RuleOperandCount:
		n := int(inst.Operand.Int)
		if n < 0 || len(st.Pops) != 1 {
			return false, fmt.Errorf("%w: bad argument count %d", ErrStack, n)
		}
		for i := 0; i < n; i++ {
			if _, err := t.pop(st.Pops[0]); err != nil {
				return false, err
			}
		}
		t.pushKinds(st.Pushes)
		return true, nil
	case registry.RuleCall:
		if t.sigs == nil {
			return false, nil
		}
		sig, ok := t.sigs.Signature(inst.Operand.Int)
		if !ok {
			return false, nil
		}
		for i := 0; i < sig.StringArgs; i++ {
			if _, err := t.pop(registry.String); err != nil {
				return false, err
			}
		}
		for i := 0; i < sig.IntArgs; i++ {
			if _, err := t.pop(registry.Int); err != nil {
				return false, err
			}
		}
		t.pushKinds(sig.Returns)
		return true, nil
	case registry.RulePopAll:
		t.ints = t.ints[:0]
		t.strs = t.strs[:0]
		return true, nil
	case registry.RuleHook:
		return t.hook(inst)
	case registry.RuleEnum:
		return t.enum()
	default:
		return false, nil
	}
}

func (t *tracker) hook(inst *Instruction) (bool, error) {
	if inst.Desc.Referent == registry.Interface {
		if _, err := t.pop(registry.Int); err != nil {
			return false, err
		}
	}
	desc, err := t.pop(registry.String)
	if err != nil || !desc.Const {
		return false, err
	}
	sig := desc.Str
	if n := len(sig); n > 0 && sig[n-1] == 'Y' {
		cnt, err := t.pop(registry.Int)
		if err != nil || !cnt.Const || cnt.Int < 0 {
			return false, err
		}
		for i := int32(0); i < cnt.Int; i++ {
			if _, err := t.pop(registry.Int); err != nil {
				return false, err
			}
		}
		sig = sig[:n-1]
	}
	for i := len(sig) - 1; i >= 0; i-- {
		if _, err := t.pop(typeKind(sig[i])); err != nil {
			return false, err
		}
	}
	_, err = t.pop(registry.Int)
	return err == nil, err
}

func (t *tracker) enum() (bool, error) {
	vals, err := t.popKinds([]registry.Kind{registry.Int, registry.Int, registry.Int, registry.Int})
	if err != nil {
		return false, err
	}
	// keyType, valueType, enumId, key.
	vt := vals[1]
	if !vt.Const {
		return false, nil
	}
	t.push(Value{Kind: typeKind(byte(vt.Int))})
	return true, nil
}

// typeKind maps a type descriptor character to the stack it lives on.
func typeKind(c byte) registry.Kind {
	if c == 's' {
		return registry.String
	}
	return registry.Int
}

func (t *tracker) pop(k registry.Kind) (Value, error) {
	st := &t.ints
	if k == registry.String {
		st = &t.strs
	}
	n := len(*st)
	if n == 0 {
		return Value{}, fmt.Errorf("%w: %s stack underflow", ErrStack, k)
	}
	v := (*st)[n-1]
	*st = (*st)[:n-1]
	return v, nil
}

// popKinds pops arguments listed in push order and returns them in the
// same order.
func (t *tracker) popKinds(ks []registry.Kind) ([]Value, error) {
	vals := make([]Value, len(ks))
	for i := len(ks) - 1; i >= 0; i-- {
		v, err := t.pop(ks[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (t *tracker) push(v Value) {
	if v.Kind == registry.String {
		t.strs = append(t.strs, v)
	} else {
		t.ints = append(t.ints, v)
	}
}

func (t *tracker) pushKinds(ks []registry.Kind) {
	for _, k := range ks {
		t.push(Value{Kind: k})
	}
}

func (t *tracker) pushFixed(inst *Instruction, args []Value) {
	switch inst.Op {
	case opcode.PUSH_CONSTANT_INT:
		t.push(Value{Kind: registry.Int, Const: true, Int: inst.Operand.Int})
		return
	case opcode.PUSH_CONSTANT_STRING:
		t.push(Value{Kind: registry.String, Const: true, Str: inst.Operand.String})
		return
	}
	if len(args) == 2 && args[0].Const && args[1].Const &&
		args[0].Kind == registry.Int && args[1].Kind == registry.Int {
		if v, ok := fold(inst.Op, args[0].Int, args[1].Int); ok {
			t.push(Value{Kind: registry.Int, Const: true, Int: v})
			return
		}
	}
	t.pushKinds(inst.Desc.Stack.Pushes)
}

// fold evaluates binary integer operations on constants.
func fold(op opcode.Opcode, a, b int32) (int32, bool) {
	switch op {
	case opcode.ADD:
		return a + b, true
	case opcode.SUB:
		return a - b, true
	case opcode.MULTIPLY:
		return a * b, true
	case opcode.DIV:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	case opcode.MOD:
		if b == 0 {
			return 0, false
		}
		return a % b, true
	case opcode.AND:
		return a & b, true
	case opcode.OR:
		return a | b, true
	default:
		return 0, false
	}
}
