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

// Package encoding holds the immutable vocabulary data (pattern, rank tables,
// special tokens, decoder) that a BPE engine is built over. Each table is
// built once, on its first Load, and shared read-only across every engine
// that uses it.
//
// The cl100k_base and o200k_base tables built by CL100kBaseTable and
// O200kBaseTable (vocab_data.go) are a compact stand-in vocabulary, not the
// real vendor merge-rank tables: they share the same few hundred entries and
// differ only in pattern and special-token ranks. Reference-tokenizer parity
// does not hold against this stand-in. Swap in a real generated vocabulary
// dump (same NewTable inputs, sourced from the vendor's published merge
// ranks) to get bit-identical output.
package encoding

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf8"
)

// BinaryRank is one entry of the byte-keyed rank table: a token whose byte
// sequence does not decode to valid UTF-8, paired with its rank.
type BinaryRank struct {
	Bytes []byte
	Rank  uint32
}

// Table is the immutable, read-only vocabulary for one BPE encoding. It is
// safe to share across goroutines and across every Engine built over it.
type Table struct {
	name          string
	pattern       string
	specialTokens map[string]uint32
	stringRanks   map[string]uint32
	binaryRanks   []BinaryRank // sorted lexicographically by Bytes
	decoder       map[uint32]decoded

	// firstByteIndex[b] is the slice of binaryRanks whose first byte is b,
	// kept as a contiguous sub-slice of the sorted binaryRanks so lookups
	// can binary-search within it directly.
	firstByteIndex [256][]BinaryRank
}

// decoded is either a string (the common, UTF-8-valid case) or raw bytes.
type decoded struct {
	str     string
	raw     []byte
	isBytes bool
}

// NewTable builds an immutable Table, validating the invariants from the
// data model: every rank appears in exactly one of stringRanks/binaryRanks,
// and binaryRanks must already be free of duplicate byte sequences.
//
// stringRanks and binaryRanks are consumed directly; callers must not retain
// mutable references to the slices/maps passed in.
func NewTable(name, pattern string, specialTokens map[string]uint32, stringRanks map[string]uint32, binaryRanks []BinaryRank) (*Table, error) {
	sorted := make([]BinaryRank, len(binaryRanks))
	copy(sorted, binaryRanks)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Bytes, sorted[j].Bytes) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1].Bytes, sorted[i].Bytes) {
			return nil, fmt.Errorf("encoding %s: duplicate binary rank entry %q", name, sorted[i].Bytes)
		}
	}

	decoder := make(map[uint32]decoded, len(stringRanks)+len(sorted))
	for s, r := range stringRanks {
		if _, exists := decoder[r]; exists {
			return nil, fmt.Errorf("encoding %s: rank %d used more than once", name, r)
		}
		decoder[r] = decoded{str: s}
	}
	for _, br := range sorted {
		if _, exists := decoder[br.Rank]; exists {
			return nil, fmt.Errorf("encoding %s: rank %d used more than once", name, br.Rank)
		}
		b := make([]byte, len(br.Bytes))
		copy(b, br.Bytes)
		decoder[br.Rank] = decoded{raw: b, isBytes: true}
	}

	t := &Table{
		name:          name,
		pattern:       pattern,
		specialTokens: specialTokens,
		stringRanks:   stringRanks,
		binaryRanks:   sorted,
		decoder:       decoder,
	}
	t.buildFirstByteIndex()
	return t, nil
}

func (t *Table) buildFirstByteIndex() {
	if len(t.binaryRanks) == 0 {
		return
	}
	start := 0
	curByte := t.binaryRanks[0].Bytes[0]
	for i := 1; i <= len(t.binaryRanks); i++ {
		if i == len(t.binaryRanks) || t.binaryRanks[i].Bytes[0] != curByte {
			t.firstByteIndex[curByte] = t.binaryRanks[start:i]
			if i < len(t.binaryRanks) {
				curByte = t.binaryRanks[i].Bytes[0]
				start = i
			}
		}
	}
}

// Name returns the encoding's identifier, e.g. "cl100k_base".
func (t *Table) Name() string { return t.name }

// Pattern returns the pretokenization regex source.
func (t *Table) Pattern() string { return t.pattern }

// SpecialToken returns the rank for a special-token literal, if any.
func (t *Table) SpecialToken(literal string) (uint32, bool) {
	r, ok := t.specialTokens[literal]
	return r, ok
}

// SpecialTokens returns the full literal->rank map. Callers must not mutate it.
func (t *Table) SpecialTokens() map[string]uint32 { return t.specialTokens }

// RankOfString looks up a piece that is known to be valid UTF-8 directly in
// the string-keyed table.
func (t *Table) RankOfString(s string) (uint32, bool) {
	r, ok := t.stringRanks[s]
	return r, ok
}

// RankOfBytes resolves a byte slice to a rank, trying the UTF-8 string table
// first and falling back to a binary search of the byte-keyed table bucketed
// by first byte. Returns ok=false (NO_RANK) if the slice is not a known token.
func (t *Table) RankOfBytes(b []byte) (uint32, bool) {
	if utf8.Valid(b) {
		if r, ok := t.stringRanks[string(b)]; ok {
			return r, true
		}
	}
	if len(b) == 0 {
		return 0, false
	}
	bucket := t.firstByteIndex[b[0]]
	i := sort.Search(len(bucket), func(i int) bool {
		return bytes.Compare(bucket[i].Bytes, b) >= 0
	})
	if i < len(bucket) && bytes.Equal(bucket[i].Bytes, b) {
		return bucket[i].Rank, true
	}
	return 0, false
}

// Decode resolves a rank to its bytes and appends them to dst. It returns
// ok=false if the rank is unknown to this table (caller may still consult
// special tokens).
func (t *Table) Decode(rank uint32, dst []byte) ([]byte, bool) {
	d, ok := t.decoder[rank]
	if !ok {
		return dst, false
	}
	if d.isBytes {
		return append(dst, d.raw...), true
	}
	return append(dst, d.str...), true
}

// DecodeString resolves a rank directly to a string when it is known to be
// the UTF-8-valid variant, avoiding a byte-buffer round trip. ok is false for
// both unknown ranks and ranks that decode to raw (non-UTF-8) bytes.
func (t *Table) DecodeString(rank uint32) (string, bool) {
	d, ok := t.decoder[rank]
	if !ok || d.isBytes {
		return "", false
	}
	return d.str, true
}

// VocabSize returns the number of BPE ranks (excluding special tokens).
func (t *Table) VocabSize() int {
	return len(t.stringRanks) + len(t.binaryRanks)
}
