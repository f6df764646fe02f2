package batch

import (
	"fmt"

	"github.com/cs2kit/cs2/pkg/block"
	"github.com/cs2kit/cs2/pkg/decoder"
	"github.com/cs2kit/cs2/pkg/script"
	lru "github.com/hashicorp/golang-lru"
	"github.com/twmb/murmur3"
	"go.uber.org/zap"
)

// signatures is a decoder.Signatures backed by the loader. Signatures of
// scripts that can't be loaded are cached as missing.
type signatures struct {
	loader Loader
	cache  *lru.Cache
	log    *zap.Logger
}

type sigEntry struct {
	sig decoder.Signature
	ok  bool
}

func newSignatures(loader Loader, size int, log *zap.Logger) (*signatures, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("signature cache: %w", err)
	}
	return &signatures{loader: loader, cache: c, log: log}, nil
}

// Signature implements the decoder.Signatures interface.
func (s *signatures) Signature(id int32) (decoder.Signature, bool) {
	if v, ok := s.cache.Get(id); ok {
		addCacheHit("signature")
		e := v.(sigEntry)
		return e.sig, e.ok
	}
	var e sigEntry
	b, err := s.loader.Load(id)
	if err == nil {
		var sc *script.Script
		sc, err = script.Read(b)
		if err == nil {
			e.sig, err = sc.Signature()
			e.ok = err == nil
		}
	}
	if err != nil {
		s.log.Debug("no signature for callee", zap.Int32("id", id), zap.Error(err))
	}
	s.cache.Add(id, e)
	return e.sig, e.ok
}

// programs caches analysis results by container contents.
type programs struct {
	cache *lru.Cache
}

type program struct {
	script *script.Script
	graph  *block.Graph
}

func newPrograms(size int) (*programs, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("program cache: %w", err)
	}
	return &programs{cache: c}, nil
}

func (p *programs) get(data []byte) (program, bool) {
	v, ok := p.cache.Get(murmur3.Sum64(data))
	if !ok {
		return program{}, false
	}
	addCacheHit("program")
	return v.(program), true
}

func (p *programs) add(data []byte, prog program) {
	p.cache.Add(murmur3.Sum64(data), prog)
}
