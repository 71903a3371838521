package encoding

// Reserved special-token literals shared by the OpenAI-style encodings, each
// carrying a fixed rank outside the BPE vocabulary proper.
const (
	EndOfText   = "<|endoftext|>"
	FimPrefix   = "<|fim_prefix|>"
	FimMiddle   = "<|fim_middle|>"
	FimSuffix   = "<|fim_suffix|>"
	EndOfPrompt = "<|endofprompt|>"
)

// Encoding name identifiers, as referenced by Model Config records.
const (
	CL100kBase = "cl100k_base"
	O200kBase  = "o200k_base"
)
