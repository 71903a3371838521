package encoding

// buildBaseVocab assigns every byte value 0-255 its own rank (ASCII bytes as
// single-character strings in stringRanks, the rest — which are not valid
// standalone UTF-8 — in binaryRanks), then layers baseVocabWords on top
// starting at rank 256. It returns the resulting tables plus the next free
// rank for encoding-specific additions (e.g. special tokens).
func buildBaseVocab() (map[string]uint32, []BinaryRank, uint32) {
	stringRanks := make(map[string]uint32, 256+len(baseVocabWords))
	binaryRanks := make([]BinaryRank, 0, 128)

	for b := 0; b < 256; b++ {
		if b < 0x80 {
			stringRanks[string(rune(b))] = uint32(b)
		} else {
			binaryRanks = append(binaryRanks, BinaryRank{Bytes: []byte{byte(b)}, Rank: uint32(b)})
		}
	}

	next := uint32(256)
	for _, w := range baseVocabWords {
		if _, exists := stringRanks[w]; exists {
			continue // already a byte-level token (e.g. single ASCII letters)
		}
		stringRanks[w] = next
		next++
	}
	return stringRanks, binaryRanks, next
}
