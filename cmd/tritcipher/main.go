/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deltak/tritcipher/internal/config"
)

var cli struct {
	Debug   bool     `help:"Whether to enable debug logging."`
	Configs []string `name:"config" short:"c" help:"Configuration files, applied in order." type:"path"`

	Encode struct {
		Key    string   `short:"k" help:"Cipher key. Empty or 0 selects the static scheme."`
		Scheme string   `short:"s" help:"Scheme: static, permutation or additive. Defaults to keyed_scheme when a key is given."`
		Text   []string `arg:"" optional:"" name:"text" help:"Plaintext. Read from standard input when absent."`
	} `cmd:"" help:"Encrypt plaintext."`

	Decode struct {
		Strict bool     `help:"Fail on glyphs that do not form a letter."`
		Text   []string `arg:"" optional:"" name:"text" help:"Ciphertext. Read from standard input when absent."`
	} `cmd:"" help:"Decrypt static ciphertext."`

	Prompt struct {
	} `cmd:"" help:"Ask for plaintext and a key interactively."`

	Table struct {
		Key string `short:"k" help:"Permutation key. The static table is printed when absent."`
	} `cmd:"" help:"Print the letter to glyph run table."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func setupLogging(cfg *config.Config, debug bool) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.RFC3339,
	}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, err := cfg.Level(); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	if len(os.Args) == 1 {
		cfg, err := config.Process(nil)
		if err != nil {
			writeError(err)
		}
		setupLogging(cfg, false)

		if stdinIsTerminal() {
			err = promptCommand(cfg, os.Stdin, os.Stdout)
		} else {
			err = encodeCommand(cfg, encodeArgs{}, os.Stdin, os.Stdout)
		}
		if err != nil {
			writeError(err)
		}
		return
	}

	ctx := kong.Parse(&cli,
		kong.Name("tritcipher"),
		kong.Description("a ternary glyph substitution cipher"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if ctx.Command() == "config" {
		if _, err := os.Stdout.Write(config.DEFAULT); err != nil {
			writeError(err)
		}
		return
	}

	cfg, err := config.Process(cli.Configs)
	if err != nil {
		writeError(err)
	}
	setupLogging(cfg, cli.Debug)

	switch ctx.Command() {
	case "encode", "encode <text>":
		err = encodeCommand(cfg, encodeArgs{
			key:    cli.Encode.Key,
			scheme: cli.Encode.Scheme,
			text:   strings.Join(cli.Encode.Text, " "),
			inline: len(cli.Encode.Text) > 0,
		}, os.Stdin, os.Stdout)
	case "decode", "decode <text>":
		err = decodeCommand(cfg, decodeArgs{
			strict: cli.Decode.Strict,
			text:   strings.Join(cli.Decode.Text, " "),
			inline: len(cli.Decode.Text) > 0,
		}, os.Stdin, os.Stdout)
	case "prompt":
		err = promptCommand(cfg, os.Stdin, os.Stdout)
	case "table":
		err = tableCommand(cfg, cli.Table.Key, os.Stdout)
	}
	if err != nil {
		writeError(err)
	}
}
