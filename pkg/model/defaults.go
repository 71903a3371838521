package model

import "github.com/promptmeter/promptmeter/pkg/encoding"

// Defaults returns a small built-in set of Model Configs for the vendors
// this repository ships encodings for, seeded with fixed built-in
// coefficients. Callers needing measured values should load a Store
// populated by the Calibration Probe instead.
func Defaults() map[string]Config {
	return map[string]Config{
		"openai/gpt-5": {
			Name:          "openai/gpt-5",
			Encoding:      encoding.O200kBase,
			ContextWindow: 400_000,
			MaxTokens:     128_000,
			Tokens: TokenCoefficients{
				BaseOverhead:      3,
				PerMessage:        3,
				ToolsExist:        12,
				PerTool:           11,
				PerDesc:           2,
				PerFirstProp:      3,
				PerAdditionalProp: 3,
				PerPropDesc:       2,
				PerEnum:           2,
				PerNestedObject:   2,
				PerArrayOfObjects: 2,
				ContentMultiplier: 1.0,
			},
		},
		"anthropic/claude-sonnet-4.5": {
			Name:          "anthropic/claude-sonnet-4.5",
			Encoding:      encoding.CL100kBase,
			ContextWindow: 200_000,
			MaxTokens:     64_000,
			Tokens: TokenCoefficients{
				BaseOverhead:      8,
				PerMessage:        4,
				ToolsExist:        14,
				PerTool:           13,
				PerDesc:           3,
				PerFirstProp:      4,
				PerAdditionalProp: 3,
				PerPropDesc:       3,
				PerEnum:           3,
				PerNestedObject:   3,
				PerArrayOfObjects: 3,
				ContentMultiplier: 1.0,
			},
		},
	}
}
