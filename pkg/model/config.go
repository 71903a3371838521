// Package model holds the per-model overhead coefficients the Prompt
// Accountant applies on top of raw BPE token counts.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// TokenCoefficients are the integer overhead constants (and one real-valued
// multiplier) a model's server-side framing contributes on top of the text
// the BPE engine actually tokenizes.
type TokenCoefficients struct {
	BaseOverhead      int     `json:"baseOverhead"`
	PerMessage        int     `json:"perMessage"`
	ToolsExist        int     `json:"toolsExist"`
	PerTool           int     `json:"perTool"`
	PerDesc           int     `json:"perDesc"`
	PerFirstProp      int     `json:"perFirstProp"`
	PerAdditionalProp int     `json:"perAdditionalProp"`
	PerPropDesc       int     `json:"perPropDesc"`
	PerEnum           int     `json:"perEnum"`
	PerNestedObject   int     `json:"perNestedObject"`
	PerArrayOfObjects int     `json:"perArrayOfObjects"`
	ContentMultiplier float64 `json:"contentMultiplier"`
}

// Config is one immutable Model Config record: which Encoding Table to
// tokenize with, the overhead coefficients to apply, and display metadata.
type Config struct {
	Name          string             `json:"name"`
	Encoding      string             `json:"encoding"`
	ContextWindow int                `json:"contextWindow"`
	MaxTokens     int                `json:"maxTokens"`
	Pricing       map[string]float64 `json:"pricing,omitempty"`
	Tokens        TokenCoefficients  `json:"tokens"`
}

// Multiplier returns the content multiplier to apply to raw tokenized
// content length, defaulting to 1.0 when the config omits it (zero value).
func (c Config) Multiplier() float64 {
	if c.Tokens.ContentMultiplier == 0 {
		return 1.0
	}
	return c.Tokens.ContentMultiplier
}

// Validate checks the invariants the data model places on a Model Config:
// a named encoding plus everything ValidateCoefficients checks.
func (c Config) Validate() error {
	if c.Encoding == "" {
		return fmt.Errorf("model %q: encoding name is required", c.Name)
	}
	if err := ValidateCoefficients(c.Tokens); err != nil {
		return fmt.Errorf("model %q: %w", c.Name, err)
	}
	return nil
}

// ValidateCoefficients checks the token-coefficient invariants in isolation:
// every coefficient nonnegative, and a multiplier of at least 0.5 when set.
// Used both by Config.Validate and by the Calibration Probe, which must
// reject a bad measurement before it ever reaches a named Config.
func ValidateCoefficients(t TokenCoefficients) error {
	coeffs := map[string]int{
		"baseOverhead":      t.BaseOverhead,
		"perMessage":        t.PerMessage,
		"toolsExist":        t.ToolsExist,
		"perTool":           t.PerTool,
		"perDesc":           t.PerDesc,
		"perFirstProp":      t.PerFirstProp,
		"perAdditionalProp": t.PerAdditionalProp,
		"perPropDesc":       t.PerPropDesc,
		"perEnum":           t.PerEnum,
		"perNestedObject":   t.PerNestedObject,
		"perArrayOfObjects": t.PerArrayOfObjects,
	}
	for name, v := range coeffs {
		if v < 0 {
			return fmt.Errorf("coefficient %s is negative (%d)", name, v)
		}
	}
	if t.ContentMultiplier != 0 && t.ContentMultiplier < 0.5 {
		return fmt.Errorf("contentMultiplier %v is below the 0.5 floor", t.ContentMultiplier)
	}
	return nil
}

// TokensHash hashes the token-coefficient subrecord so a Store can detect
// when a previously measured model's coefficients have changed underfoot.
func (c Config) TokensHash() (string, error) {
	data, err := json.Marshal(c.Tokens)
	if err != nil {
		return "", fmt.Errorf("model: hashing coefficients for %q: %w", c.Name, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
