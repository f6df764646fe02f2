package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cs2kit/cs2/pkg/config"
	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/emit"
	"github.com/cs2kit/cs2/pkg/io"
	"github.com/cs2kit/cs2/pkg/opcode"
	"github.com/cs2kit/cs2/pkg/registry"
	"github.com/cs2kit/cs2/pkg/script"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func container(t *testing.T, intArgs int, f func(w *io.BinWriter)) []byte {
	buf := io.NewBufBinWriter()
	f(buf.BinWriter)
	require.NoError(t, buf.Err)
	code := buf.Bytes()
	insts, err := decoder.Decode(code, 0)
	require.NoError(t, err)
	b, err := (&script.Script{
		Code:             code,
		InstructionCount: len(insts),
		IntArgs:          intArgs,
		LocalInts:        intArgs,
	}).Bytes()
	require.NoError(t, err)
	return b
}

// caller passes 5 to script 2 and drops its result.
func caller(t *testing.T) []byte {
	return container(t, 0, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 5)
		emit.Int(w, opcode.GOSUB_WITH_PARAMS, 2)
		emit.Opcode(w, opcode.POP_INT_DISCARD)
		emit.Opcode(w, opcode.RETURN)
	})
}

// callee takes an int and returns an int.
func callee(t *testing.T) []byte {
	return container(t, 1, func(w *io.BinWriter) {
		emit.Int(w, opcode.PUSH_CONSTANT_INT, 7)
		emit.Opcode(w, opcode.RETURN)
	})
}

func testConfig(workers int) config.Config {
	cfg := config.Default()
	cfg.Decoder.Strict = true
	cfg.Batch.Workers = workers
	return cfg
}

func TestRun(t *testing.T) {
	loader := MapLoader{
		1: caller(t),
		2: callee(t),
		3: {1, 2, 3},
	}
	p, err := New(testConfig(2), loader, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := p.Run(context.Background(), []int32{1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, res, 4)
	for i, id := range []int32{1, 2, 3, 4} {
		require.Equal(t, id, res[i].ID)
	}

	require.NoError(t, res[0].Err)
	insts := res[0].Graph.Program.Insts
	require.Equal(t, decoder.Depth{Ints: 1, Known: true}, insts[1].After)
	require.Len(t, res[0].Graph.Blocks, 1)

	require.NoError(t, res[1].Err)
	require.Equal(t, 1, res[1].Script.IntArgs)

	require.ErrorIs(t, res[2].Err, script.ErrFormat)
	stage, ok := res[2].Stage()
	require.True(t, ok)
	require.Equal(t, StageRead, stage)
	require.Nil(t, res[2].Graph)

	require.ErrorIs(t, res[3].Err, os.ErrNotExist)
	stage, ok = res[3].Stage()
	require.True(t, ok)
	require.Equal(t, StageLoad, stage)
}

func TestRunStages(t *testing.T) {
	loader := MapLoader{
		// Declares one instruction more than it has.
		1: func() []byte {
			s, err := script.Read(callee(t))
			require.NoError(t, err)
			s.InstructionCount++
			b, err := s.Bytes()
			require.NoError(t, err)
			return b
		}(),
		// Falls off the end.
		2: container(t, 0, func(w *io.BinWriter) {
			emit.Int(w, opcode.PUSH_CONSTANT_INT, 1)
			emit.Int(w, opcode.POP_VAR, 1)
		}),
	}
	p, err := New(testConfig(1), loader, nil)
	require.NoError(t, err)
	res, err := p.Run(context.Background(), []int32{1, 2})
	require.NoError(t, err)

	stage, _ := res[0].Stage()
	require.Equal(t, StageDecode, stage)
	require.ErrorIs(t, res[0].Err, script.ErrInstructionCount)
	stage, _ = res[1].Stage()
	require.Equal(t, StageFlow, stage)
}

func TestProgramCache(t *testing.T) {
	b := callee(t)
	p, err := New(testConfig(1), MapLoader{1: b, 2: b}, nil)
	require.NoError(t, err)
	res, err := p.Run(context.Background(), []int32{1, 2})
	require.NoError(t, err)
	require.False(t, res[0].Cached)
	require.True(t, res[1].Cached)
	require.Same(t, res[0].Graph, res[1].Graph)
}

func TestSignatureCache(t *testing.T) {
	var loads atomic.Int32
	loader := LoaderFunc(func(id int32) ([]byte, error) {
		loads.Add(1)
		if id != 2 {
			return nil, os.ErrNotExist
		}
		return callee(t), nil
	})
	s, err := newSignatures(loader, 16, zaptest.NewLogger(t))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		sig, ok := s.Signature(2)
		require.True(t, ok)
		require.Equal(t, decoder.Signature{IntArgs: 1, Returns: []registry.Kind{registry.Int}}, sig)
		_, ok = s.Signature(9)
		require.False(t, ok)
	}
	require.Equal(t, int32(2), loads.Load())
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	loader := LoaderFunc(func(id int32) ([]byte, error) {
		<-release
		return nil, errors.New("released")
	})
	cfg := testConfig(1)
	cfg.Batch.Timeout = 10 * time.Millisecond
	p, err := New(cfg, loader, nil)
	require.NoError(t, err)

	res, err := p.Run(context.Background(), []int32{1})
	require.NoError(t, err)
	require.ErrorIs(t, res[0].Err, context.DeadlineExceeded)
	stage, _ := res[0].Stage()
	require.Equal(t, StageTimeout, stage)
}

func TestTimeoutHoldsWorker(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	defer close(release)
	loader := LoaderFunc(func(id int32) ([]byte, error) {
		loads.Add(1)
		<-release
		return nil, errors.New("released")
	})
	cfg := testConfig(1)
	cfg.Batch.Timeout = 10 * time.Millisecond
	p, err := New(cfg, loader, nil)
	require.NoError(t, err)

	res, err := p.Run(context.Background(), []int32{1, 2, 3})
	require.NoError(t, err)
	for _, r := range res {
		require.ErrorIs(t, r.Err, context.DeadlineExceeded)
		stage, _ := r.Stage()
		require.Equal(t, StageTimeout, stage)
	}
	// Only the first analysis got a worker, it's still blocked.
	require.Equal(t, int32(1), loads.Load())
}

func TestCanceled(t *testing.T) {
	p, err := New(testConfig(1), MapLoader{}, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := p.Run(ctx, []int32{1, 2})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res, 2)
	for _, r := range res {
		require.Error(t, r.Err)
	}
}

func TestNewInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.Workers = 0
	_, err := New(cfg, MapLoader{}, nil)
	require.Error(t, err)
}

func TestCacheSize(t *testing.T) {
	_, err := newSignatures(MapLoader{}, 0, zap.NewNop())
	require.Error(t, err)
	_, err = newPrograms(-1)
	require.Error(t, err)
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	b := callee(t)
	for _, name := range []string{"10.cs2", "2.cs2", "x.cs2", "3.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "4.cs2"), 0o755))

	ids, err := ListDir(dir, ".cs2")
	require.NoError(t, err)
	require.Equal(t, []int32{2, 10}, ids)

	l := DirLoader(dir, ".cs2")
	got, err := l.Load(10)
	require.NoError(t, err)
	require.Equal(t, b, got)
	_, err = l.Load(11)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ListDir(filepath.Join(dir, "missing"), ".cs2")
	require.Error(t, err)
}

func TestStageString(t *testing.T) {
	require.Equal(t, "timeout", StageTimeout.String())
	require.Equal(t, "Stage(42)", Stage(42).String())
	e := &StageError{Stage: StageFlow, Err: errors.New("boom")}
	require.Equal(t, "flow: boom", e.Error())
}
