/*
Package batch decodes many scripts concurrently. Every script is loaded,
parsed, decoded, resolved and split into blocks independently, callee
signatures and analysis results are shared between workers through LRU
caches.
*/
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cs2kit/cs2/pkg/block"
	"github.com/cs2kit/cs2/pkg/config"
	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/flow"
	"github.com/cs2kit/cs2/pkg/script"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stage is a step of script analysis.
type Stage byte

// Analysis stages.
const (
	StageLoad Stage = iota
	StageRead
	StageDecode
	StageFlow
	StageBlock
	StageTimeout
)

// String implements the fmt.Stringer interface.
func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageRead:
		return "read"
	case StageDecode:
		return "decode"
	case StageFlow:
		return "flow"
	case StageBlock:
		return "block"
	case StageTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Stage(%d)", byte(s))
	}
}

// StageError is an analysis failure.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Result is the outcome for a single script. Either Graph and Script are
// set or Err is.
type Result struct {
	ID     int32
	Script *script.Script
	Graph  *block.Graph
	// Cached is set when an identical container was analyzed before.
	Cached bool
	Took   time.Duration
	Err    error
}

// Stage returns the stage the script failed at.
func (r *Result) Stage() (Stage, bool) {
	var se *StageError
	if !errors.As(r.Err, &se) {
		return 0, false
	}
	return se.Stage, true
}

// Pool decodes scripts with a limited number of workers.
type Pool struct {
	cfg    config.Batch
	loader Loader
	log    *zap.Logger
	dec    decoder.Decoder
	opts   flow.Options
	sigs   *signatures
	progs  *programs
	// slots is held by every running analysis, including the ones
	// abandoned on timeout.
	slots  chan struct{}
}

// Analyze decodes s with d and builds its block graph. d may be nil.
func Analyze(s *script.Script, d *decoder.Decoder, opts flow.Options) (*block.Graph, error) {
	insts, err := s.Decode(d)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Err: err}
	}
	p, err := flow.Resolve(insts, opts)
	if err != nil {
		return nil, &StageError{Stage: StageFlow, Err: err}
	}
	g, err := block.Build(p)
	if err != nil {
		return nil, &StageError{Stage: StageBlock, Err: err}
	}
	return g, nil
}

// New creates a Pool loading scripts with loader. A nil log disables
// logging.
func New(cfg config.Config, loader Loader, log *zap.Logger) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	dec, err := cfg.Decoder.NewDecoder()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Decoder.FlowOptions()
	if err != nil {
		return nil, err
	}
	sigs, err := newSignatures(loader, cfg.Batch.SignatureCacheSize, log)
	if err != nil {
		return nil, err
	}
	progs, err := newPrograms(cfg.Batch.ProgramCacheSize)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		cfg:    cfg.Batch,
		loader: loader,
		log:    log,
		dec:    *dec,
		opts:   opts,
		sigs:   sigs,
		progs:  progs,
		slots:  make(chan struct{}, cfg.Batch.Workers),
	}
	p.dec.Signatures = p.sigs
	return p, nil
}

// Run analyzes the given scripts, results are in the order of ids. Script
// failures are reported in results, the error is only returned when ctx
// is done before all scripts are processed.
func (p *Pool) Run(ctx context.Context, ids []int32) ([]Result, error) {
	var (
		start   = time.Now()
		res     = make([]Result, len(ids))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(p.cfg.Workers)
	for i, id := range ids {
		i, id := i, id
		if err := gctx.Err(); err != nil {
			res[i] = Result{ID: id, Err: fmt.Errorf("script %d: %w", id, err)}
			continue
		}
		g.Go(func() error {
			res[i] = p.process(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i := range res {
		if res[i].Err != nil {
			failed++
		}
	}
	p.log.Info("batch processed",
		zap.Int("scripts", len(ids)),
		zap.Int("failed", failed),
		zap.Duration("took", time.Since(start)))
	return res, ctx.Err()
}

func (p *Pool) process(ctx context.Context, id int32) Result {
	start := time.Now()
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	r := p.run(ctx, id)
	r.Took = time.Since(start)

	if r.Err != nil {
		stage, _ := r.Stage()
		addFailure(stage)
		p.log.Warn("failed to decode script", zap.Int32("id", id), zap.Error(r.Err))
		r.Err = fmt.Errorf("script %d: %w", id, r.Err)
		return r
	}
	scriptsDecoded.Inc()
	decodeTime.Observe(r.Took.Seconds())
	p.log.Debug("script decoded",
		zap.Int32("id", id),
		zap.Int("instructions", len(r.Graph.Program.Insts)),
		zap.Int("blocks", len(r.Graph.Blocks)),
		zap.Bool("cached", r.Cached),
		zap.Duration("took", r.Took))
	return r
}

// run analyzes the script unless ctx is done first. The analysis isn't
// interruptible, on timeout it's left to finish in the background still
// holding its slot, so at most Workers analyses run at any time.
func (p *Pool) run(ctx context.Context, id int32) Result {
	timeout := func() Result {
		return Result{ID: id, Err: &StageError{Stage: StageTimeout, Err: ctx.Err()}}
	}
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return timeout()
	}
	done := make(chan Result, 1)
	go func() {
		defer func() { <-p.slots }()
		done <- p.analyze(id)
	}()
	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		return timeout()
	}
}

func (p *Pool) analyze(id int32) Result {
	r := Result{ID: id}
	data, err := p.loader.Load(id)
	if err != nil {
		r.Err = &StageError{Stage: StageLoad, Err: err}
		return r
	}
	if prog, ok := p.progs.get(data); ok {
		r.Script, r.Graph, r.Cached = prog.script, prog.graph, true
		return r
	}
	s, err := script.Read(data)
	if err != nil {
		r.Err = &StageError{Stage: StageRead, Err: err}
		return r
	}
	g, err := Analyze(s, &p.dec, p.opts)
	if err != nil {
		r.Err = err
		return r
	}
	p.progs.add(data, program{script: s, graph: g})
	r.Script, r.Graph = s, g
	return r
}
