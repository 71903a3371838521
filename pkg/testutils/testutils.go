// Package testutils provides shared testing fixtures for the promptmeter
// packages: a loaded Encoding Table, a BPE Engine built over it, and a
// minimal Model Config, so package tests don't each hand-roll the same
// setup.
package testutils

import (
	"github.com/promptmeter/promptmeter/pkg/accountant"
	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/encoding"
	"github.com/promptmeter/promptmeter/pkg/model"
)

// TestTable returns the cl100k_base Encoding Table.
func TestTable() *encoding.Table {
	tbl, err := encoding.Load(encoding.CL100kBase)
	if err != nil {
		panic(err)
	}
	return tbl
}

// TestEngine returns a BPE Engine built on TestTable with a small cache.
func TestEngine() *bpe.Engine {
	eng, err := bpe.NewEngine(TestTable(), 64)
	if err != nil {
		panic(err)
	}
	return eng
}

// TestModelConfig returns a minimal valid Model Config for testing, with
// small round-number coefficients that keep expected totals easy to reason
// about.
func TestModelConfig() model.Config {
	return model.Config{
		Name:          "test/model",
		Encoding:      encoding.CL100kBase,
		ContextWindow: 8192,
		MaxTokens:     1024,
		Tokens: model.TokenCoefficients{
			BaseOverhead:      3,
			PerMessage:        3,
			ToolsExist:        8,
			PerTool:           4,
			PerDesc:           1,
			PerFirstProp:      2,
			PerAdditionalProp: 1,
			PerPropDesc:       1,
			PerEnum:           1,
			PerNestedObject:   2,
			PerArrayOfObjects: 2,
			ContentMultiplier: 1.0,
		},
	}
}

// TestUserMessage returns a single user message with plain text content.
func TestUserMessage(text string) accountant.Message {
	return accountant.Message{
		Role:    accountant.RoleUser,
		Content: text,
	}
}
