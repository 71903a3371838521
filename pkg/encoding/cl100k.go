package encoding

import "sync"

const cl100kPattern = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

var (
	cl100kOnce  sync.Once
	cl100kTable *Table
	cl100kErr   error
)

// CL100kBaseTable returns the cl100k_base encoding table, building it once
// from the generated base vocabulary on first use.
func CL100kBaseTable() (*Table, error) {
	cl100kOnce.Do(func() {
		stringRanks, binaryRanks, next := buildBaseVocab()
		special := map[string]uint32{
			EndOfText:   next,
			FimPrefix:   next + 1,
			FimMiddle:   next + 2,
			FimSuffix:   next + 3,
			EndOfPrompt: next + 4,
		}
		cl100kTable, cl100kErr = NewTable(CL100kBase, cl100kPattern, special, stringRanks, binaryRanks)
	})
	return cl100kTable, cl100kErr
}
