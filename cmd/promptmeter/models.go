package main

import (
	"encoding/json"
	"fmt"

	"github.com/promptmeter/promptmeter/pkg/model"
)

// ModelsCmd groups subcommands for inspecting the Model Config store.
type ModelsCmd struct {
	List ModelsListCmd `cmd:"" help:"List known model identifiers."`
	Show ModelsShowCmd `cmd:"" help:"Show a model's full config."`
}

// ModelsListCmd lists model identifiers from a store, or the built-in
// defaults when no store is given.
type ModelsListCmd struct {
	Store string `help:"Path to a persisted Model Config store. Falls back to built-in defaults." type:"path"`
}

func (c *ModelsListCmd) Run() error {
	if c.Store == "" {
		for name := range model.Defaults() {
			fmt.Println(name)
		}
		return nil
	}
	store, err := model.LoadStore(c.Store)
	if err != nil {
		return err
	}
	for _, name := range store.Models() {
		fmt.Println(name)
	}
	return nil
}

// ModelsShowCmd prints one model's full config as JSON.
type ModelsShowCmd struct {
	Store string `help:"Path to a persisted Model Config store. Falls back to built-in defaults." type:"path"`
	Model string `arg:"" help:"Model identifier."`
}

func (c *ModelsShowCmd) Run() error {
	var cfg model.Config
	if c.Store == "" {
		var ok bool
		cfg, ok = model.Defaults()[c.Model]
		if !ok {
			return fmt.Errorf("model %q not found in built-in defaults; pass --store", c.Model)
		}
	} else {
		store, err := model.LoadStore(c.Store)
		if err != nil {
			return err
		}
		cfg, err = store.Get(c.Model)
		if err != nil {
			return err
		}
	}
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
