/*
Package disasm implements commands printing decoded scripts and the opcode
registry.
*/
package disasm

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cs2kit/cs2/cli/options"
	"github.com/cs2kit/cs2/pkg/batch"
	"github.com/cs2kit/cs2/pkg/block"
	"github.com/cs2kit/cs2/pkg/config"
	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/flow"
	gio "github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/registry"
	"github.com/cs2kit/cs2/pkg/script"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'dis' and 'opcodes' commands.
func NewCommands() []cli.Command {
	disFlags := []cli.Flag{
		options.ConfigFile,
		options.Debug,
		cli.BoolFlag{
			Name:  "raw",
			Usage: "treat the file as bare code without the container trailer",
		},
		cli.BoolFlag{
			Name:  "stack",
			Usage: "print operand stacks after every instruction",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "write the listing to the given file instead of stdout",
		},
	}
	disFlags = append(disFlags, options.Decoder...)
	return []cli.Command{
		{
			Name:      "dis",
			Usage:     "Disassemble a compiled script",
			UsageText: "dis [--config-file <file>] [--raw] [--stack] [--strict] [--out <file>] <file>",
			Description: `Decodes the script, resolves its control flow and prints it split into
   basic blocks. Every instruction is followed by the operand stack depths
   after it ("?" when unknown).
`,
			Action: disassemble,
			Flags:  disFlags,
		},
		{
			Name:      "opcodes",
			Usage:     "Print the opcode registry",
			UsageText: "opcodes [--all]",
			Action:    printOpcodes,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "all",
					Usage: "include opaque placeholders",
				},
			},
		},
	}
}

func disassemble(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.NewExitError("missing script file", 1)
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, _, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.Logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	path := ctx.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to read file: %w", err), 1)
	}

	var (
		g *block.Graph
		s *script.Script
	)
	if ctx.Bool("raw") {
		g, err = analyzeCode(data, cfg.Decoder)
	} else {
		s, err = script.Read(data)
		if err == nil {
			g, err = analyzeScript(s, cfg.Decoder)
		}
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("script decoded",
		zap.String("file", path),
		zap.Int("instructions", len(g.Program.Insts)),
		zap.Int("blocks", len(g.Blocks)))

	w := ctx.App.Writer
	if out := ctx.String("out"); out != "" {
		if err := gio.MakeDirForFile(out, "listing"); err != nil {
			return cli.NewExitError(err, 1)
		}
		f, err := os.Create(out)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer f.Close()
		w = f
	}
	if s != nil {
		printHeader(w, s, g.Program.Insts)
	}
	if err := PrintGraph(w, g, ctx.Bool("stack")); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func analyzeCode(code []byte, cfg config.Decoder) (*block.Graph, error) {
	d, err := cfg.NewDecoder()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.FlowOptions()
	if err != nil {
		return nil, err
	}
	insts, err := d.Decode(code, 0)
	if err != nil {
		return nil, err
	}
	p, err := flow.Resolve(insts, opts)
	if err != nil {
		return nil, err
	}
	return block.Build(p)
}

func analyzeScript(s *script.Script, cfg config.Decoder) (*block.Graph, error) {
	d, err := cfg.NewDecoder()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.FlowOptions()
	if err != nil {
		return nil, err
	}
	return batch.Analyze(s, d, opts)
}

func printHeader(w io.Writer, s *script.Script, insts []decoder.Instruction) {
	if s.Name != "" {
		fmt.Fprintf(w, "name: %s\n", s.Name)
	}
	fmt.Fprintf(w, "args: %d int, %d string\n", s.IntArgs, s.StringArgs)
	fmt.Fprintf(w, "locals: %d int, %d string\n", s.LocalInts, s.LocalStrings)
	if rt := script.ReturnTypes(insts); len(rt) > 0 {
		ks := make([]string, len(rt))
		for i, k := range rt {
			ks[i] = k.String()
		}
		fmt.Fprintf(w, "returns: %s\n", strings.Join(ks, ", "))
	}
	if len(s.Switches) > 0 {
		fmt.Fprintf(w, "switch tables: %d\n", len(s.Switches))
	}
}

// PrintGraph writes a listing of g split into blocks.
func PrintGraph(w io.Writer, g *block.Graph, withStack bool) error {
	p := g.Program
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := range g.Blocks {
		b := &g.Blocks[i]
		fmt.Fprintf(tw, "block %d [%d, %d) preds: %s succs: %s", b.ID, b.Start, b.End, ids(b.Preds), ids(b.Succs))
		if !b.Reachable {
			fmt.Fprint(tw, " unreachable")
		}
		fmt.Fprintln(tw)
		for n := b.First; n <= b.Last; n++ {
			inst := &p.Insts[n]
			fmt.Fprintf(tw, "  %d\t%d\t%s\t%s\t%s", inst.Index, inst.Offset, inst.Desc.Mnemonic, inst.OperandString(), inst.After)
			if t := targets(p, n); t != "" {
				fmt.Fprintf(tw, "\t-> %s", t)
			}
			if withStack && inst.Stack != nil {
				fmt.Fprintf(tw, "\t%s", frame(inst.Stack))
			}
			fmt.Fprintln(tw)
		}
	}
	if op := p.Opaque(); len(op) > 0 {
		fmt.Fprintf(tw, "opaque instructions at %s\n", ids(op))
	}
	return tw.Flush()
}

func ids(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = strconv.Itoa(x)
	}
	return strings.Join(ss, ",")
}

func targets(p *flow.Program, n int) string {
	var ts []int
	for _, e := range p.Edges[n] {
		if e.Kind != flow.FallThrough {
			ts = append(ts, e.Target)
		}
	}
	if len(ts) == 0 {
		return ""
	}
	return ids(ts)
}

func frame(f *decoder.Frame) string {
	vals := func(vs []decoder.Value) string {
		ss := make([]string, len(vs))
		for i, v := range vs {
			ss[i] = v.String()
		}
		return "[" + strings.Join(ss, " ") + "]"
	}
	return vals(f.Ints) + " " + vals(f.Strings)
}

func printOpcodes(ctx *cli.Context) error {
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tOPERAND\tWIDTH\tSTACK\tFLOW")
	for _, d := range registry.Default().All() {
		if d.Opaque && !ctx.Bool("all") {
			continue
		}
		width := strconv.Itoa(d.Width)
		if d.Width == registry.Variable {
			width = "var"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", int32(d.Code), d.Mnemonic, d.Operand, width, d.Stack, d.Flow)
	}
	return tw.Flush()
}
