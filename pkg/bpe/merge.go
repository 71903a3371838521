package bpe

import "github.com/promptmeter/promptmeter/pkg/encoding"

// noRank marks a pair with no known merge, mirroring the reference
// tokenizer's sentinel value for "infinitely low priority".
const noRank = ^uint32(0)

// mergeRanks runs the byte-pair merge over piece and returns the rank of
// each final sub-token, left to right. It implements the starts/ranks
// parallel-array algorithm: starts holds the byte offsets of the current
// sub-tokens (with a trailing sentinel), ranks[i] holds the rank that would
// result from merging sub-tokens i and i+1. Each iteration merges the pair
// with the minimum rank, leftmost on ties, until no pair is mergeable.
func mergeRanks(tbl *encoding.Table, piece []byte) []uint32 {
	if len(piece) == 0 {
		return nil
	}
	if len(piece) == 1 {
		if r, ok := tbl.RankOfBytes(piece); ok {
			return []uint32{r}
		}
		return []uint32{noRank}
	}

	starts := make([]int, len(piece)+1)
	for i := range starts {
		starts[i] = i
	}
	ranks := make([]uint32, len(starts)-1)
	for i := range ranks {
		ranks[i] = pairRank(tbl, piece, starts, i)
	}

	for {
		minIdx, minRank := -1, noRank
		for i, r := range ranks {
			if r < minRank {
				minRank, minIdx = r, i
			}
		}
		if minIdx == -1 {
			break
		}
		starts = append(starts[:minIdx+1], starts[minIdx+2:]...)
		ranks = append(ranks[:minIdx], ranks[minIdx+1:]...)
		if minIdx > 0 {
			ranks[minIdx-1] = pairRank(tbl, piece, starts, minIdx-1)
		}
		if minIdx < len(ranks) {
			ranks[minIdx] = pairRank(tbl, piece, starts, minIdx)
		}
	}

	out := make([]uint32, len(starts)-1)
	for i := range out {
		r, ok := tbl.RankOfBytes(piece[starts[i]:starts[i+1]])
		if !ok {
			r = noRank
		}
		out[i] = r
	}
	return out
}

// pairRank returns the rank of merging sub-tokens i and i+1 under the
// current starts layout, or noRank if there is no such pair or its bytes
// are not a known token.
func pairRank(tbl *encoding.Table, piece []byte, starts []int, i int) uint32 {
	if i+2 >= len(starts) {
		return noRank
	}
	r, ok := tbl.RankOfBytes(piece[starts[i]:starts[i+2]])
	if !ok {
		return noRank
	}
	return r
}
