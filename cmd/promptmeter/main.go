// Copyright 2025 Kadir Pekel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command promptmeter is the CLI for promptmeter.
//
// Usage:
//
//	promptmeter count --encoding cl100k_base "hello, world"
//	promptmeter account --model openai/gpt-5 prompt.json
//	promptmeter models list --store models.json
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/promptmeter/promptmeter"
)

// CLI defines the command-line interface.
type CLI struct {
	Version VersionCmd `cmd:"" help:"Show version information."`
	Count   CountCmd   `cmd:"" help:"Count tokens in text."`
	Account AccountCmd `cmd:"" help:"Estimate the token cost of a structured prompt."`
	Models  ModelsCmd  `cmd:"" help:"Inspect the Model Config store."`

	LogLevel  string `help:"Log level (debug, info, warn, error)."`
	LogFile   string `help:"Log file path (empty = stderr)."`
	LogFormat string `help:"Log format (simple, verbose, or custom)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(promptmeter.GetVersion().String())
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("promptmeter"),
		kong.Description("promptmeter - BPE tokenizer and prompt-token accountant"),
		kong.UsageOnError(),
	)

	cleanup, err := initLoggerFromCLI(cli.LogLevel, cli.LogFile, cli.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	err = ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
