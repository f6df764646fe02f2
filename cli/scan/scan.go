/*
Package scan implements the command decoding whole script directories.
*/
package scan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/cs2kit/cs2/cli/options"
	"github.com/cs2kit/cs2/pkg/batch"
	"github.com/urfave/cli"
)

// NewCommands returns the 'batch' command.
func NewCommands() []cli.Command {
	flags := []cli.Flag{
		options.ConfigFile,
		options.Debug,
		cli.StringFlag{
			Name:  "ext",
			Usage: "script file extension (overrides configuration)",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Usage: "number of concurrent workers (overrides configuration)",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "per-script timeout (overrides configuration)",
		},
	}
	flags = append(flags, options.Decoder...)
	return []cli.Command{{
		Name:      "batch",
		Usage:     "Decode every script in a directory",
		UsageText: "batch [--config-file <file>] [--workers <n>] [--timeout <duration>] [<dir>]",
		Description: `Decodes all <id><ext> files in the directory (Batch.Dir of the
   configuration if not given) and prints a summary line per script. Exits
   with an error if any script fails.
`,
		Action: run,
		Flags:  flags,
	}}
}

func run(ctx *cli.Context) error {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if ctx.Args().Present() {
		cfg.Batch.Dir = ctx.Args().First()
	}
	if ext := ctx.String("ext"); ext != "" {
		cfg.Batch.Ext = ext
	}
	if ctx.IsSet("workers") {
		cfg.Batch.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("timeout") {
		cfg.Batch.Timeout = ctx.Duration("timeout")
	}
	if cfg.Batch.Dir == "" {
		return cli.NewExitError("no script directory specified", 1)
	}

	log, _, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.Logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	ids, err := batch.ListDir(cfg.Batch.Dir, cfg.Batch.Ext)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to list scripts: %w", err), 1)
	}
	pool, err := batch.New(cfg, batch.DirLoader(cfg.Batch.Dir, cfg.Batch.Ext), log)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	gctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	res, err := pool.Run(gctx, ids)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	failed, err := printResults(ctx, res)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d scripts failed", failed, len(res)), 1)
	}
	return nil
}

func printResults(ctx *cli.Context, res []batch.Result) (int, error) {
	var failed int
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINSTRUCTIONS\tBLOCKS\tUNREACHABLE\tOPAQUE\tTIME\tSTATUS")
	for i := range res {
		r := &res[i]
		if r.Err != nil {
			failed++
			fmt.Fprintf(tw, "%d\t-\t-\t-\t-\t%s\t%v\n", r.ID, r.Took.Round(time.Microsecond), r.Err)
			continue
		}
		status := "ok"
		if r.Cached {
			status = "ok (cached)"
		}
		g := r.Graph
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t%s\n", r.ID, len(g.Program.Insts), len(g.Blocks),
			len(g.Unreachable()), len(g.Program.Opaque()), r.Took.Round(time.Microsecond), status)
	}
	return failed, tw.Flush()
}
