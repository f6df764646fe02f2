/*
Package block partitions a resolved program into basic blocks and links
them into a control flow graph.
*/
package block

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cs2kit/cs2/pkg/flow"
)

var (
	// ErrDangling means an edge leads to an offset no block starts at.
	ErrDangling = errors.New("dangling edge")
	// ErrPartition means blocks don't cover instructions exactly once.
	ErrPartition = errors.New("broken partition")
)

// Block is a maximal straight-line run of instructions. Start and End are
// byte offsets (End is exclusive), First and Last are instruction indices.
// Succs and Preds are block IDs.
type Block struct {
	ID        int
	Start     int
	End       int
	First     int
	Last      int
	Succs     []int
	Preds     []int
	Reachable bool
}

// Len returns the number of instructions in the block.
func (b *Block) Len() int {
	return b.Last - b.First + 1
}

// Graph is a set of blocks ordered by offset, block 0 is the entry.
type Graph struct {
	Program *flow.Program
	Blocks  []Block

	byStart map[int]int
}

// Build splits p into basic blocks. A block starts at the first
// instruction, at every jump, case or default target and right after
// every block terminator.
func Build(p *flow.Program) (*Graph, error) {
	n := len(p.Insts)
	g := &Graph{Program: p, byStart: make(map[int]int)}
	if n == 0 {
		return g, nil
	}

	leader := make([]bool, n)
	leader[0] = true
	for i := range p.Insts {
		for _, e := range p.Edges[i] {
			if e.Kind == flow.FallThrough {
				continue
			}
			t, ok := p.IndexAt(e.Target)
			if !ok {
				return nil, fmt.Errorf("%w: %d -> %d", ErrDangling, p.Insts[i].Offset, e.Target)
			}
			leader[t] = true
		}
		if p.Insts[i].Desc.Flow.Terminates() && i+1 < n {
			leader[i+1] = true
		}
	}

	for i := 0; i < n; i++ {
		if leader[i] {
			if len(g.Blocks) > 0 {
				g.Blocks[len(g.Blocks)-1].Last = i - 1
			}
			g.Blocks = append(g.Blocks, Block{ID: len(g.Blocks), First: i})
		}
	}
	g.Blocks[len(g.Blocks)-1].Last = n - 1

	for i := range g.Blocks {
		b := &g.Blocks[i]
		b.Start = p.Insts[b.First].Offset
		b.End = p.Insts[b.Last].Next()
		g.byStart[b.Start] = b.ID
	}

	for i := range g.Blocks {
		b := &g.Blocks[i]
		for _, e := range p.Edges[b.Last] {
			s, ok := g.byStart[e.Target]
			if !ok {
				return nil, fmt.Errorf("%w: block %d -> %d", ErrDangling, b.ID, e.Target)
			}
			if !contains(b.Succs, s) {
				b.Succs = append(b.Succs, s)
			}
		}
	}
	for i := range g.Blocks {
		for _, s := range g.Blocks[i].Succs {
			g.Blocks[s].Preds = append(g.Blocks[s].Preds, i)
		}
	}
	g.markReachable()
	return g, nil
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func (g *Graph) markReachable() {
	queue := []int{0}
	g.Blocks[0].Reachable = true
	for len(queue) > 0 {
		b := &g.Blocks[queue[0]]
		queue = queue[1:]
		for _, s := range b.Succs {
			if !g.Blocks[s].Reachable {
				g.Blocks[s].Reachable = true
				queue = append(queue, s)
			}
		}
	}
}

// BlockAt returns the block containing the given byte offset.
func (g *Graph) BlockAt(off int) (*Block, bool) {
	i := sort.Search(len(g.Blocks), func(i int) bool { return g.Blocks[i].End > off })
	if i == len(g.Blocks) || g.Blocks[i].Start > off {
		return nil, false
	}
	return &g.Blocks[i], true
}

// Entry returns the entry block, nil for an empty program.
func (g *Graph) Entry() *Block {
	if len(g.Blocks) == 0 {
		return nil
	}
	return &g.Blocks[0]
}

// Unreachable returns IDs of blocks that can't be reached from the entry.
func (g *Graph) Unreachable() []int {
	var res []int
	for i := range g.Blocks {
		if !g.Blocks[i].Reachable {
			res = append(res, i)
		}
	}
	return res
}

// Validate checks that blocks partition the program and that every edge
// of every block's last instruction leads to a block start.
func (g *Graph) Validate() error {
	insts := g.Program.Insts
	next := 0
	for i := range g.Blocks {
		b := &g.Blocks[i]
		switch {
		case b.ID != i:
			return fmt.Errorf("%w: block %d has ID %d", ErrPartition, i, b.ID)
		case b.First != next || b.Last < b.First || b.Last >= len(insts):
			return fmt.Errorf("%w: block %d covers %d..%d, expected to start at %d",
				ErrPartition, i, b.First, b.Last, next)
		case b.Start != insts[b.First].Offset || b.End != insts[b.Last].Next():
			return fmt.Errorf("%w: block %d spans %d..%d", ErrPartition, i, b.Start, b.End)
		}
		next = b.Last + 1

		for _, e := range g.Program.Edges[b.Last] {
			s, ok := g.byStart[e.Target]
			if !ok || !contains(b.Succs, s) {
				return fmt.Errorf("%w: block %d -> %d", ErrDangling, i, e.Target)
			}
		}
		for _, s := range b.Succs {
			if s < 0 || s >= len(g.Blocks) {
				return fmt.Errorf("%w: block %d -> block %d", ErrDangling, i, s)
			}
			if !contains(g.Blocks[s].Preds, i) {
				return fmt.Errorf("%w: block %d is not a predecessor of %d", ErrDangling, i, s)
			}
		}
	}
	if next != len(insts) {
		return fmt.Errorf("%w: %d of %d instructions covered", ErrPartition, next, len(insts))
	}
	return nil
}
