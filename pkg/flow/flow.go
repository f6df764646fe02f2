/*
Package flow resolves control flow of decoded CS2 instructions: branch and
switch targets are turned into instruction offsets and every instruction
gets its list of successor edges.
*/
package flow

import (
	"errors"
	"fmt"

	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
)

// DefaultMaxSwitchRange is the largest number of labels a single SS_AND
// range may expand to.
const DefaultMaxSwitchRange = 4096

var (
	// ErrInvalidTarget is returned for targets not landing on an
	// instruction start.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrBadSwitch is returned for switch tables that can't be expanded.
	ErrBadSwitch = decoder.ErrBadSwitch
)

// Addressing tells how branch displacements are applied.
type Addressing byte

// Addressing modes.
const (
	// ByIndex targets instruction number index+disp+1, that's what the
	// client interpreter does.
	ByIndex Addressing = iota
	// ByOffset targets byte offset offset+disp where offset is the
	// position of the branch instruction.
	ByOffset
)

// String implements the fmt.Stringer interface.
func (a Addressing) String() string {
	switch a {
	case ByIndex:
		return "index"
	case ByOffset:
		return "offset"
	default:
		return fmt.Sprintf("Addressing(%d)", byte(a))
	}
}

// ParseAddressing is the inverse of Addressing.String.
func ParseAddressing(s string) (Addressing, error) {
	switch s {
	case "index", "":
		return ByIndex, nil
	case "offset":
		return ByOffset, nil
	default:
		return 0, fmt.Errorf("unknown addressing %q", s)
	}
}

// Options are resolver parameters, the zero value is valid.
type Options struct {
	Addressing Addressing
	// MaxSwitchRange defaults to DefaultMaxSwitchRange.
	MaxSwitchRange int
}

// TargetError describes a branch that doesn't land on an instruction.
// Target is an instruction number for ByIndex and a byte offset otherwise.
type TargetError struct {
	Offset     int
	Op         opcode.Opcode
	Target     int
	Addressing Addressing
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	return fmt.Sprintf("%s at %d: %v %d (by %s)", e.Op, e.Offset, ErrInvalidTarget, e.Target, e.Addressing)
}

// Unwrap returns ErrInvalidTarget.
func (e *TargetError) Unwrap() error {
	return ErrInvalidTarget
}

// EdgeKind is a type of a control flow edge.
type EdgeKind byte

// Edge kinds.
const (
	FallThrough EdgeKind = iota
	Jump
	Case
	Default
)

// String implements the fmt.Stringer interface.
func (k EdgeKind) String() string {
	switch k {
	case FallThrough:
		return "fallthrough"
	case Jump:
		return "jump"
	case Case:
		return "case"
	case Default:
		return "default"
	default:
		return fmt.Sprintf("EdgeKind(%d)", byte(k))
	}
}

// Edge is a successor of an instruction. Target is a byte offset.
type Edge struct {
	Kind   EdgeKind
	Target int
}

// CaseTarget maps a switch label to a target offset.
type CaseTarget struct {
	Label  int32
	Target int
}

// SwitchTable is an expanded switch, Cases are ordered as encoded.
type SwitchTable struct {
	Cases   []CaseTarget
	Default int
}

// Target returns the target offset for the given value.
func (s *SwitchTable) Target(v int32) int {
	for _, c := range s.Cases {
		if c.Label == v {
			return c.Target
		}
	}
	return s.Default
}

// Call is a subroutine call site.
type Call struct {
	Offset int
	Callee int32
}

// Program is a list of instructions with resolved control flow.
type Program struct {
	Insts []decoder.Instruction
	// Edges are successors of every instruction, by index.
	Edges [][]Edge
	// Switches are expanded tables of SWITCH instructions, by index.
	Switches map[int]*SwitchTable
	Calls    []Call

	byOffset map[int]int
}

// IndexAt returns the number of the instruction starting at off.
func (p *Program) IndexAt(off int) (int, bool) {
	i, ok := p.byOffset[off]
	return i, ok
}

// End returns the offset right after the last instruction.
func (p *Program) End() int {
	if len(p.Insts) == 0 {
		return 0
	}
	return p.Insts[len(p.Insts)-1].Next()
}

// Opaque returns offsets of instructions with unknown semantics.
func (p *Program) Opaque() []int {
	var res []int
	for i := range p.Insts {
		if p.Insts[i].Desc.Opaque {
			res = append(res, p.Insts[i].Offset)
		}
	}
	return res
}

// Resolve computes successor edges for insts, which must be a complete
// decoded program.
func Resolve(insts []decoder.Instruction, opts Options) (*Program, error) {
	if opts.MaxSwitchRange <= 0 {
		opts.MaxSwitchRange = DefaultMaxSwitchRange
	}
	p := &Program{
		Insts:    insts,
		Edges:    make([][]Edge, len(insts)),
		Switches: make(map[int]*SwitchTable),
		byOffset: make(map[int]int, len(insts)),
	}
	for i := range insts {
		p.byOffset[insts[i].Offset] = i
	}
	r := resolver{p: p, opts: opts}
	for i := range insts {
		if err := r.instruction(i); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type resolver struct {
	p    *Program
	opts Options
}

func (r *resolver) instruction(i int) error {
	inst := &r.p.Insts[i]
	switch inst.Desc.Flow {
	case registry.Return:
	case registry.Branch:
		t, err := r.jump(inst, inst.Operand.Int)
		if err != nil {
			return err
		}
		r.p.Edges[i] = []Edge{{Kind: Jump, Target: t}}
	case registry.CondBranch:
		t, err := r.jump(inst, inst.Operand.Int)
		if err != nil {
			return err
		}
		next, err := r.next(inst)
		if err != nil {
			return err
		}
		r.p.Edges[i] = []Edge{{Kind: Jump, Target: t}, {Kind: FallThrough, Target: next}}
	case registry.Switch:
		tab, err := r.switchTable(inst)
		if err != nil {
			return err
		}
		r.p.Switches[i] = tab
		var (
			seen  = make(map[int]bool)
			edges []Edge
		)
		for _, c := range tab.Cases {
			if !seen[c.Target] {
				seen[c.Target] = true
				edges = append(edges, Edge{Kind: Case, Target: c.Target})
			}
		}
		r.p.Edges[i] = append(edges, Edge{Kind: Default, Target: tab.Default})
	default:
		next, err := r.next(inst)
		if err != nil {
			return err
		}
		r.p.Edges[i] = []Edge{{Kind: FallThrough, Target: next}}
		if inst.Desc.Flow == registry.Call {
			r.p.Calls = append(r.p.Calls, Call{Offset: inst.Offset, Callee: inst.Operand.Int})
		}
	}
	return nil
}

// next is the fall-through target, falling off the end is an error.
func (r *resolver) next(inst *decoder.Instruction) (int, error) {
	if inst.Index+1 >= len(r.p.Insts) {
		target := inst.Next()
		if r.opts.Addressing == ByIndex {
			target = inst.Index + 1
		}
		return 0, &TargetError{Offset: inst.Offset, Op: inst.Op, Target: target, Addressing: r.opts.Addressing}
	}
	return r.p.Insts[inst.Index+1].Offset, nil
}

// jump converts a displacement into a target offset.
func (r *resolver) jump(inst *decoder.Instruction, disp int32) (int, error) {
	if r.opts.Addressing == ByIndex {
		t := int64(inst.Index) + int64(disp) + 1
		if t < 0 || t >= int64(len(r.p.Insts)) {
			return 0, &TargetError{Offset: inst.Offset, Op: inst.Op, Target: int(t), Addressing: ByIndex}
		}
		return r.p.Insts[t].Offset, nil
	}
	t := inst.Offset + int(disp)
	if _, ok := r.p.byOffset[t]; !ok {
		return 0, &TargetError{Offset: inst.Offset, Op: inst.Op, Target: t, Addressing: ByOffset}
	}
	return t, nil
}

func (r *resolver) switchTable(inst *decoder.Instruction) (*SwitchTable, error) {
	sw := inst.Operand.Switch
	if sw == nil {
		return nil, fmt.Errorf("%s at %d: %w: no table", inst.Op, inst.Offset, ErrBadSwitch)
	}
	def, err := r.next(inst)
	if err != nil {
		return nil, err
	}
	var (
		tab    = &SwitchTable{Default: def}
		labels = make(map[int32]bool)
	)
	add := func(label int32, target int) error {
		if labels[label] {
			return fmt.Errorf("%s at %d: %w: duplicate label %d", inst.Op, inst.Offset, ErrBadSwitch, label)
		}
		labels[label] = true
		tab.Cases = append(tab.Cases, CaseTarget{Label: label, Target: target})
		return nil
	}
	for gi, g := range sw.Groups {
		target, err := r.jump(inst, g.Disp)
		if err != nil {
			return nil, err
		}
		alts, err := alternatives(g.Terms)
		if err != nil {
			return nil, fmt.Errorf("%s at %d: %w: group %d: %v", inst.Op, inst.Offset, ErrBadSwitch, gi, err)
		}
		for _, a := range alts {
			if a.lo > a.hi || int64(a.hi)-int64(a.lo) >= int64(r.opts.MaxSwitchRange) {
				return nil, fmt.Errorf("%s at %d: %w: bad range %d..%d", inst.Op, inst.Offset, ErrBadSwitch, a.lo, a.hi)
			}
			for l := int64(a.lo); l <= int64(a.hi); l++ {
				if err := add(int32(l), target); err != nil {
					return nil, err
				}
			}
		}
	}
	return tab, nil
}

type labelRange struct {
	lo, hi int32
}

// alternatives splits a case group on SS_OR, every alternative is either a
// single label or an inclusive "lo SS_AND hi" range.
func alternatives(terms []decoder.Term) ([]labelRange, error) {
	if len(terms) == 0 {
		return nil, errors.New("no labels")
	}
	var (
		res []labelRange
		cur = []int32{terms[0].Label}
	)
	flush := func() error {
		switch len(cur) {
		case 1:
			res = append(res, labelRange{cur[0], cur[0]})
		case 2:
			res = append(res, labelRange{cur[0], cur[1]})
		default:
			return fmt.Errorf("%d labels joined by %s", len(cur), decoder.CombAnd)
		}
		return nil
	}
	for _, t := range terms[1:] {
		switch t.Comb {
		case decoder.CombOr:
			if err := flush(); err != nil {
				return nil, err
			}
			cur = []int32{t.Label}
		case decoder.CombAnd:
			cur = append(cur, t.Label)
		default:
			return nil, fmt.Errorf("bad combinator %d", int16(t.Comb))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return res, nil
}
