package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/promptmeter/promptmeter/pkg/accountant"
	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/encoding"
	"github.com/promptmeter/promptmeter/pkg/model"
)

// AccountCmd runs the Prompt Accountant against a prompt document for a
// named model, either from the built-in Defaults or a persisted Store.
type AccountCmd struct {
	Model string `required:"" help:"Model identifier, e.g. openai/gpt-5."`
	Store string `help:"Path to a persisted Model Config store. Falls back to built-in defaults." type:"path"`
	File  string `arg:"" help:"Path to a prompt JSON document (messages + tools)." type:"path"`
}

func (c *AccountCmd) Run() error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}
	messages, tools, err := decodePromptFile(data)
	if err != nil {
		return err
	}

	table, err := encoding.Load(cfg.Encoding)
	if err != nil {
		return fmt.Errorf("loading encoding %q for %s: %w", cfg.Encoding, cfg.Name, err)
	}
	eng, err := bpe.NewEngineWithoutCache(table)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	result, err := accountant.Count(eng, cfg, messages, tools)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func (c *AccountCmd) resolveConfig() (model.Config, error) {
	if c.Store != "" {
		store, err := model.LoadStore(c.Store)
		if err != nil {
			return model.Config{}, err
		}
		return store.Get(c.Model)
	}
	cfg, ok := model.Defaults()[c.Model]
	if !ok {
		return model.Config{}, fmt.Errorf("model %q not found in built-in defaults; pass --store", c.Model)
	}
	return cfg, nil
}
