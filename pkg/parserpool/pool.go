// Package parserpool provides a pool of gnparser instances for concurrent
// parsing of plant scientific names.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnuuid"
)

// Pool provides a pool of gnparser instances configured for the botanical
// nomenclatural code.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser from the
	// pool, parses the name, and returns the parser to the pool. This method
	// is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a name, or an empty
	// string if the name cannot be parsed.
	Canonical(nameString string) string

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	ch := gnparser.NewPool(cfg, poolSize)

	return &PoolImpl{
		ch:       ch,
		poolSize: poolSize,
	}
}

// Parse parses a scientific name string.
func (p *PoolImpl) Parse(nameString string) parsed.Parsed {
	// blocks if all parsers are busy
	parser := <-p.ch
	result := parser.ParseName(nameString)
	p.ch <- parser

	return result
}

// Canonical returns the simple canonical form of nameString.
func (p *PoolImpl) Canonical(nameString string) string {
	res := p.Parse(nameString)
	if !res.Parsed || res.Canonical == nil {
		return ""
	}
	return res.Canonical.Simple
}

// Close shuts down the parser pool.
func (p *PoolImpl) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}

// NameID returns UUID v5 of a canonical form, the identifier gnames
// services use for name strings. It is empty for an empty canonical.
func NameID(canonical string) string {
	if canonical == "" {
		return ""
	}
	return gnuuid.New(canonical).String()
}
