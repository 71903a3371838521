// Copyright 2025 Kadir Pekel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bpe implements the BPE Engine and Piece Cache: encoding text to
// token ranks and decoding ranks back to text over an immutable encoding
// table.
package bpe

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/promptmeter/promptmeter/pkg/encoding"
)

// AllSpecial is the sentinel passed to Encode to mean "every special token
// known to the table", matching the allowed_special/disallowed_special "all"
// value from the data model.
var AllSpecial = []string{"all"}

// Engine encodes and decodes text against one Encoding Table. It owns a
// mutable Piece Cache and is not safe for concurrent use; callers wanting
// parallelism construct one Engine per worker over the same shared Table.
type Engine struct {
	table         *encoding.Table
	pattern       *regexp2.Regexp
	cache         *Cache
	specialByRank map[uint32]string
}

// NewEngine compiles table's pretokenization pattern and builds an Engine
// with a Piece Cache of the given capacity, or DefaultCacheSize if cacheSize
// is zero or negative. Use NewEngineWithoutCache to disable caching.
func NewEngine(table *encoding.Table, cacheSize int) (*Engine, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return newEngine(table, cacheSize)
}

// NewEngineWithoutCache builds an Engine whose Piece Cache is disabled,
// useful for verifying the cache-irrelevance property against a cached run.
func NewEngineWithoutCache(table *encoding.Table) (*Engine, error) {
	return newEngine(table, 0)
}

func newEngine(table *encoding.Table, cacheSize int) (*Engine, error) {
	pattern, err := regexp2.Compile(table.Pattern(), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("bpe: compiling pattern for %s: %w", table.Name(), err)
	}
	specialByRank := make(map[uint32]string, len(table.SpecialTokens()))
	for lit, rank := range table.SpecialTokens() {
		specialByRank[rank] = lit
	}
	return &Engine{
		table:         table,
		pattern:       pattern,
		cache:         NewCache(cacheSize),
		specialByRank: specialByRank,
	}, nil
}

// Table returns the encoding table this engine was built over.
func (e *Engine) Table() *encoding.Table { return e.table }

// Encode tokenizes text, honoring special-token literals. allowedSpecial and
// disallowedSpecial each name literals drawn from the table's special
// tokens, or AllSpecial/the literal "all" to mean every known special token.
// A disallowed literal found anywhere in text fails the whole call.
func (e *Engine) Encode(text string, allowedSpecial, disallowedSpecial []string) ([]uint32, error) {
	allowed := e.resolveSet(allowedSpecial)
	disallowed := e.resolveDisallowed(disallowedSpecial, allowed)

	for lit := range disallowed {
		if strings.Contains(text, lit) {
			return nil, &DisallowedSpecialError{Token: lit}
		}
	}
	return e.encode(text, allowed)
}

// EncodeOrdinary tokenizes text with no special-token awareness at all:
// every special-token literal is treated as ordinary text.
func (e *Engine) EncodeOrdinary(text string) ([]uint32, error) {
	return e.encode(text, nil)
}

// Count returns the number of tokens EncodeOrdinary(text) would produce.
func (e *Engine) Count(text string) (int, error) {
	ranks, err := e.EncodeOrdinary(text)
	if err != nil {
		return 0, err
	}
	return len(ranks), nil
}

func (e *Engine) resolveSet(names []string) map[string]struct{} {
	if len(names) == 1 && names[0] == "all" {
		all := make(map[string]struct{}, len(e.table.SpecialTokens()))
		for lit := range e.table.SpecialTokens() {
			all[lit] = struct{}{}
		}
		return all
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (e *Engine) resolveDisallowed(names []string, allowed map[string]struct{}) map[string]struct{} {
	if len(names) == 1 && names[0] == "all" {
		all := make(map[string]struct{}, len(e.table.SpecialTokens()))
		for lit := range e.table.SpecialTokens() {
			if _, ok := allowed[lit]; ok {
				continue
			}
			all[lit] = struct{}{}
		}
		return all
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// encode runs ordinary BPE over text, splitting at allowed special-token
// occurrences as it goes.
func (e *Engine) encode(text string, allowed map[string]struct{}) ([]uint32, error) {
	var out []uint32
	i := 0
	for i < len(text) {
		segEnd, literal := e.nextSpecial(text, i, allowed)
		if segEnd > i {
			pieces, err := e.pretokenize(text[i:segEnd])
			if err != nil {
				return nil, err
			}
			for _, p := range pieces {
				out = append(out, e.encodePiece(p)...)
			}
		}
		if literal == "" {
			break
		}
		rank, _ := e.table.SpecialToken(literal)
		out = append(out, rank)
		i = segEnd + len(literal)
	}
	return out, nil
}

// nextSpecial finds the earliest allowed special-token occurrence at or
// after from, preferring the longest literal on a tied start position. It
// returns (len(text), "") when none is found.
func (e *Engine) nextSpecial(text string, from int, allowed map[string]struct{}) (int, string) {
	if len(allowed) == 0 {
		return len(text), ""
	}
	best, bestLit := -1, ""
	for lit := range allowed {
		idx := strings.Index(text[from:], lit)
		if idx < 0 {
			continue
		}
		pos := from + idx
		if best == -1 || pos < best || (pos == best && len(lit) > len(bestLit)) {
			best, bestLit = pos, lit
		}
	}
	if best == -1 {
		return len(text), ""
	}
	return best, bestLit
}

// pretokenize applies the encoding's pattern globally, enumerating pieces in
// left-to-right match order.
func (e *Engine) pretokenize(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	var pieces []string
	m, err := e.pattern.FindStringMatch(text)
	if err != nil {
		return nil, fmt.Errorf("bpe: pretokenize: %w", err)
	}
	for m != nil {
		pieces = append(pieces, m.String())
		m, err = e.pattern.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("bpe: pretokenize: %w", err)
		}
	}
	return pieces, nil
}

// encodePiece resolves one pretokenized piece to its rank sequence: a direct
// vocabulary hit, a cache hit, or a freshly computed BPE merge.
func (e *Engine) encodePiece(piece string) []uint32 {
	if r, ok := e.table.RankOfString(piece); ok {
		return []uint32{r}
	}
	if ranks, ok := e.cache.Get(piece); ok {
		return ranks
	}
	ranks := mergeRanks(e.table, []byte(piece))
	e.cache.Put(piece, ranks)
	return ranks
}

// Decode resolves a rank sequence back to text. Ranks unknown to both the
// table's decoder and its special tokens are skipped, per the best-effort
// decode contract: decode never fails.
func (e *Engine) Decode(ranks []uint32) string {
	var buf []byte
	for _, r := range ranks {
		if b, ok := e.table.Decode(r, buf); ok {
			buf = b
			continue
		}
		if lit, ok := e.specialByRank[r]; ok {
			buf = append(buf, lit...)
			continue
		}
	}
	return string(buf)
}
