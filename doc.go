// Package promptmeter provides a BPE tokenizer and prompt-token accountant
// for estimating LLM request costs before they are sent.
//
// promptmeter runs the same byte-pair merge algorithm the vendor tokenizers
// use against named encodings (cl100k_base, o200k_base), and combines that
// with per-model overhead coefficients to estimate the total input-token
// cost of a structured chat prompt: messages, tool calls, tool results, and
// tool definitions with JSON-schema inputs.
//
// The encoding tables shipped with this module (pkg/encoding) are a compact
// stand-in vocabulary, not the full vendor merge-rank tables — see that
// package's doc comment. Token counts from this module will not match a
// vendor tokenizer bit-for-bit until pkg/encoding is pointed at a real
// generated vocabulary dump.
//
// # Quick Start
//
// Install the CLI:
//
//	go install github.com/promptmeter/promptmeter/cmd/promptmeter@latest
//
// Count tokens in a string:
//
//	promptmeter count --encoding cl100k_base "hello, world"
//
// Estimate the cost of a full prompt against a named model:
//
//	promptmeter account --model openai/gpt-5 prompt.json
//
// # Using as a Go Library
//
// Import the packages directly:
//
//	import (
//	    "github.com/promptmeter/promptmeter/pkg/bpe"
//	    "github.com/promptmeter/promptmeter/pkg/encoding"
//	    "github.com/promptmeter/promptmeter/pkg/accountant"
//	    "github.com/promptmeter/promptmeter/pkg/model"
//	)
//
// # Key Components
//
//   - Encoding Table: immutable vocabulary and pretokenization pattern (see pkg/encoding's caveat on vocabulary authenticity)
//   - BPE Engine: encode/decode against a table, with a bounded piece cache
//   - Model Config Store: per-model overhead coefficients, persisted as JSON
//   - Schema Walker: recursive token cost of a JSON-schema tool input
//   - Prompt Accountant: combines the above into a full prompt token estimate
//   - Calibration Probe: offline procedure for measuring a new model's coefficients
//
// # License
//
// Apache-2.0 - see LICENSE for details.
package promptmeter
