/*
Package registry contains descriptors of all CS2 opcodes: operand shapes and
widths, stack effects and control flow classes. The default registry is
built once on package initialization and is read-only afterwards, so it can
be shared by any number of goroutines.
*/
package registry

import (
	"fmt"
	"sort"

	"github.com/cs2kit/cs2/pkg/opcode"
)

// ByteOperandThreshold is the first code whose operand is a single byte.
const ByteOperandThreshold = 100

// Registry maps opcodes to their descriptors.
type Registry struct {
	byCode map[opcode.Opcode]*Descriptor
	sorted []*Descriptor
}

var defaultRegistry = build()

// Default returns the registry of the supported client revision.
func Default() *Registry {
	return defaultRegistry
}

// Lookup is a shortcut for Default().Lookup(code).
func Lookup(code opcode.Opcode) *Descriptor {
	return defaultRegistry.Lookup(code)
}

// ConservativeWidth returns the operand width the client reader would use
// for the code, it's the only thing known about unregistered opcodes.
func ConservativeWidth(code opcode.Opcode) int {
	switch {
	case code >= ByteOperandThreshold,
		code == opcode.RETURN,
		code == opcode.POP_INT_DISCARD,
		code == opcode.POP_STRING_DISCARD:
		return 1
	default:
		return 4
	}
}

// Lookup returns the descriptor of the given code. It never returns nil,
// codes that are not registered get a fresh opaque descriptor.
func (r *Registry) Lookup(code opcode.Opcode) *Descriptor {
	if d, ok := r.byCode[code]; ok {
		return d
	}
	return opaque(code)
}

// Contains returns true if the code has its own descriptor.
func (r *Registry) Contains(code opcode.Opcode) bool {
	_, ok := r.byCode[code]
	return ok
}

// All returns all registered descriptors sorted by code.
func (r *Registry) All() []*Descriptor {
	res := make([]*Descriptor, len(r.sorted))
	copy(res, r.sorted)
	return res
}

func opaque(code opcode.Opcode) *Descriptor {
	st, ok := placeholderEffects[code]
	if !ok {
		st = unknownEffect
	}
	return &Descriptor{
		Code:     code,
		Mnemonic: code.String(),
		Operand:  ShapeUnknown,
		Width:    ConservativeWidth(code),
		Stack:    st,
		Opaque:   true,
	}
}

func widthOf(s Shape, code opcode.Opcode) int {
	switch s {
	case ShapeNone:
		return 0
	case ShapeInt, ShapeLocal:
		return 4
	case ShapeByte:
		return 1
	case ShapeString, ShapeSwitch:
		return Variable
	default:
		return ConservativeWidth(code)
	}
}

func build() *Registry {
	r := &Registry{byCode: make(map[opcode.Opcode]*Descriptor)}
	add := func(d *Descriptor) {
		if _, ok := r.byCode[d.Code]; ok {
			panic(fmt.Sprintf("duplicate descriptor for %s", d.Code))
		}
		r.byCode[d.Code] = d
	}

	for _, e := range coreOps {
		add(&Descriptor{
			Code:     e.op,
			Mnemonic: e.op.String(),
			Operand:  e.shape,
			Local:    e.local,
			Width:    widthOf(e.shape, e.op),
			Stack:    e.stack,
			Flow:     e.flow,
		})
	}

	for _, w := range widgetOps {
		cc, ifc := opcode.CCBase+w.off, opcode.IFBase+w.off
		if w.stack.Rule == RuleUnknown {
			add(opaque(cc))
			add(opaque(ifc))
			continue
		}
		add(widget(cc, Component, w.stack))
		ifStack := StackEffect{
			Pops:   append(append([]Kind{}, w.stack.Pops...), Int),
			Pushes: w.stack.Pushes,
			Rule:   w.stack.Rule,
		}
		add(widget(ifc, Interface, ifStack))
	}

	for _, off := range hookOps {
		hook := StackEffect{Rule: RuleHook}
		add(widget(opcode.CCBase+off, Component, hook))
		add(widget(opcode.IFBase+off, Interface, hook))
	}

	for _, op := range []opcode.Opcode{opcode.SS_OR, opcode.SS_AND} {
		add(&Descriptor{
			Code:     op,
			Mnemonic: op.String(),
			Operand:  ShapeNone,
			Pseudo:   true,
		})
	}

	for _, op := range opcode.All() {
		if _, ok := r.byCode[op]; ok {
			continue
		}
		if !opcode.IsPlaceholder(op) {
			panic(fmt.Sprintf("no descriptor for %s", op))
		}
		add(opaque(op))
	}

	r.sorted = make([]*Descriptor, 0, len(r.byCode))
	for _, d := range r.byCode {
		r.sorted = append(r.sorted, d)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Code < r.sorted[j].Code })
	return r
}

func widget(code opcode.Opcode, ref Referent, st StackEffect) *Descriptor {
	return &Descriptor{
		Code:     code,
		Mnemonic: code.String(),
		Operand:  ShapeByte,
		Width:    1,
		Stack:    st,
		Referent: ref,
	}
}
