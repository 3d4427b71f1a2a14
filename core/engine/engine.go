// core/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"miniblast/core/extend"
	"miniblast/core/seed"
)

// ErrInvalidSeedLength is returned by New when K < 1.
var ErrInvalidSeedLength = errors.New("seed length must be >= 1")

// Config holds search parameters.
type Config struct {
	K      int // seed length
	Cutoff int // minimum HSP length; anything below K behaves as K
}

// Engine searches database sequences against one query. The query and its
// seed index are immutable after New, so one Engine may serve many goroutines.
type Engine struct {
	cfg   Config
	query string
	index *seed.Index
}

// New indexes query for seed length c.K. The query is used as given; callers
// normalize case beforehand.
func New(query string, c Config) (*Engine, error) {
	if c.K < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSeedLength, c.K)
	}
	return &Engine{cfg: c, query: query, index: seed.Build(query, c.K)}, nil
}

func (e *Engine) Index() *seed.Index { return e.index }

// EffectiveCutoff is the smallest score an HSP can be retained with.
func (e *Engine) EffectiveCutoff() int {
	if e.cfg.Cutoff < e.cfg.K {
		return e.cfg.K
	}
	return e.cfg.Cutoff
}

// UpperASCII maps a-z to A-Z and leaves every other byte alone, including
// non-ASCII and invalid UTF-8 bytes, so lengths and byte offsets are preserved.
func UpperASCII(s string) string {
	i := 0
	for i < len(s) && (s[i] < 'a' || s[i] > 'z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Hit is the outcome of scanning one database sequence.
type Hit struct {
	Index    int    // 0-based position in the database
	ID       string // record identifier, if the input format has one
	Sequence string // the uppercased sequence that was scanned
	HSPs     *ResultSet
}

func (h Hit) Empty() bool { return h.HSPs.Len() == 0 }

// Scan searches one database sequence. It is uppercased first; the returned
// set holds every retained HSP in discovery order.
func (e *Engine) Scan(seq string) *ResultSet {
	return e.scan(UpperASCII(seq))
}

// ScanRecord scans seq and wraps the outcome as a Hit. The Hit is returned
// even when it holds no HSPs.
func (e *Engine) ScanRecord(index int, id, seq string) Hit {
	up := UpperASCII(seq)
	return Hit{Index: index, ID: id, Sequence: up, HSPs: e.scan(up)}
}

// Run scans db in order and returns the hits that retained at least one HSP.
func (e *Engine) Run(db []string) []Hit {
	var out []Hit
	for i, s := range db {
		if h := e.ScanRecord(i, "", s); !h.Empty() {
			out = append(out, h)
		}
	}
	return out
}

func (e *Engine) scan(s string) *ResultSet {
	rs := NewResultSet()
	k := e.cfg.K
	q := e.query
	for i := 0; i+k <= len(s); i++ {
		for _, q0 := range e.index.Lookup(s[i : i+k]) {
			ml := extend.Left(q, s, q0, i)
			mr := extend.Right(q, s, q0, i, k)
			if k+ml+mr < e.cfg.Cutoff {
				continue
			}
			qs, qe := q0-ml, q0+k+mr
			rs.Add(q[qs:qe], Location{
				Query:   Range{Start: qs, End: qe - 1},
				Subject: Range{Start: i - ml, End: i + k + mr - 1},
			})
		}
	}
	return rs
}
