package encoding

import "sync"

var o200kPattern = joinAlt([]string{
	`[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?`,
	`[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?`,
	`\p{N}{1,3}`,
	` ?[^\s\p{L}\p{N}]+[\r\n/]*`,
	`\s*[\r\n]+`,
	`\s+(?!\S)`,
	`\s+`,
})

func joinAlt(alts []string) string {
	out := alts[0]
	for _, a := range alts[1:] {
		out += "|" + a
	}
	return out
}

var (
	o200kOnce  sync.Once
	o200kTable *Table
	o200kErr   error
)

// O200kBaseTable returns the o200k_base encoding table, building it once from
// the generated base vocabulary on first use.
func O200kBaseTable() (*Table, error) {
	o200kOnce.Do(func() {
		stringRanks, binaryRanks, next := buildBaseVocab()
		special := map[string]uint32{
			EndOfText:   next,
			EndOfPrompt: next + 1,
		}
		o200kTable, o200kErr = NewTable(O200kBase, o200kPattern, special, stringRanks, binaryRanks)
	})
	return o200kTable, o200kErr
}
