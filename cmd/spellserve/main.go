// Copyright 2026 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellcheck server and CLI application.

SpellServe loads a Hunspell-style dictionary (.dic plus optional .aff affix
table) or a plain word list into an in-memory multi-index store, derives a
trie for bounded edit-distance search, and answers two questions per token:
is it a valid word form, and if not, what are the ranked corrections.

# Usage

Start the msgpack IPC server over a Hunspell dictionary:

	spellserve -dic en_US.dic -aff en_US.aff

Use a plain word list and run in interactive CLI mode:

	spellserve -words words.txt -c

Enable debug logging and a custom config file:

	spellserve -dic en_US.dic -aff en_US.aff -d -config ./spellserve.toml

# Configuration

Runtime configuration is a TOML file covering suggestion ranking, affix
parsing and server limits:

	[suggest]
	max_edits = 2
	max_suggestions = 16
	case_cost = 0.25
	affix_penalty = 0.5

	[affix]
	strict = false

	[server]
	max_limit = 64
	max_word_len = 64

The config file is created with defaults if it doesn't exist.

# IPC Protocol

Server mode speaks msgpack over stdin/stdout. Check and suggest requests are
processed synchronously with microsecond timing in responses; see the server
package for message shapes.

# CLI Mode

CLI mode reads words from stdin and prints correctness and suggestions in a
human-readable form. It is intended for debugging dictionaries and tuning
the ranking knobs before wiring up an editor client.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lexhart/spellserve/internal/cli"
	"github.com/lexhart/spellserve/internal/logger"
	"github.com/lexhart/spellserve/pkg/config"
	"github.com/lexhart/spellserve/pkg/server"
	"github.com/lexhart/spellserve/pkg/spell"
	"github.com/lexhart/spellserve/pkg/suggest"
)

func main() {
	dicPath := flag.String("dic", "", "path to a Hunspell .dic dictionary")
	affPath := flag.String("aff", "", "path to the matching .aff affix table")
	wordsPath := flag.String("words", "", "path to a plain word-list file")
	configPath := flag.String("config", "", "path to a TOML config file")
	cliMode := flag.Bool("c", false, "run in interactive CLI mode")
	debug := flag.Bool("d", false, "enable debug logging")
	limit := flag.Int("limit", 0, "suggestion limit for CLI mode (0 = config default)")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	logg := logger.Default("spellserve")

	cfg, cfgPath := config.LoadConfigWithPriority(*configPath)
	if cfgPath != "" {
		logg.Debugf("using config %s", cfgPath)
	}

	opts := spell.Options{
		Suggest: suggest.Options{
			MaxEdits:       cfg.Suggest.MaxEdits,
			MaxSuggestions: cfg.Suggest.MaxSuggestions,
			CaseCost:       cfg.Suggest.CaseCost,
			AffixPenalty:   cfg.Suggest.AffixPenalty,
		},
		StrictAffix: cfg.Affix.Strict,
	}

	var checker *spell.Checker
	var err error
	switch {
	case *wordsPath != "":
		checker, err = spell.LoadWordList(*wordsPath, opts)
	case *dicPath != "":
		checker, err = spell.Load(*dicPath, *affPath, opts)
	default:
		logg.Error("no dictionary given: use -dic (with optional -aff) or -words")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logg.Fatalf("loading dictionary: %v", err)
	}

	stats := checker.Statistics()
	logg.Debugf("dictionary loaded: %d entries, %d unique words", stats.Size, stats.UniqueWords)

	if *cliMode {
		suggestLimit := *limit
		if suggestLimit <= 0 {
			suggestLimit = cfg.Suggest.MaxSuggestions
		}
		handler := cli.NewInputHandler(checker, suggestLimit)
		if err := handler.Start(); err != nil {
			logg.Fatalf("CLI loop: %v", err)
		}
		return
	}

	srv := server.NewServer(checker, os.Stdin, os.Stdout, cfg.Server)
	if err := srv.Start(); err != nil {
		logg.Fatalf("server: %v", err)
	}
}
