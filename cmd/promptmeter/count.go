package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/encoding"
)

// CountCmd tokenizes text against a named encoding and reports the token
// count, optionally honoring special-token literals the way the BPE Engine
// does.
type CountCmd struct {
	Encoding          string   `help:"Encoding table name." default:"cl100k_base"`
	Text              string   `arg:"" optional:"" help:"Text to tokenize. Reads stdin if omitted."`
	File              string   `help:"Read text from this file instead of the argument/stdin." type:"path"`
	AllowedSpecial    []string `name:"allowed-special" help:"Special-token literals to treat as tokens, or 'all'."`
	DisallowedSpecial []string `name:"disallowed-special" help:"Special-token literals that should error if present, or 'all'." default:"all"`
	ShowTokens        bool     `name:"show-tokens" help:"Print the individual token ranks."`
}

func (c *CountCmd) Run() error {
	text, err := c.resolveText()
	if err != nil {
		return err
	}

	table, err := encoding.Load(c.Encoding)
	if err != nil {
		return fmt.Errorf("loading encoding %q: %w", c.Encoding, err)
	}
	eng, err := bpe.NewEngineWithoutCache(table)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	ranks, err := eng.Encode(text, c.AllowedSpecial, c.DisallowedSpecial)
	if err != nil {
		return err
	}

	fmt.Println(len(ranks))
	if c.ShowTokens {
		strs := make([]string, len(ranks))
		for i, r := range ranks {
			strs[i] = fmt.Sprint(r)
		}
		fmt.Println(strings.Join(strs, " "))
	}
	return nil
}

func (c *CountCmd) resolveText() (string, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", c.File, err)
		}
		return string(data), nil
	}
	if c.Text != "" {
		return c.Text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
