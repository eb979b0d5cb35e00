// Copyright 2026 The textit-go Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements a small CLI over the TextIT client library.

The CLI exists for manual testing and debugging of the library; the
library itself lives under pkg/ and carries all the protocol logic.

# Usage

Run one operation per invocation:

	textit correct очепатка
	textit hint "я иду д"
	textit numeral 1234 рубль
	textit speller "Пример тектса"
	textit word дом
	textit cognate делать
	textit synonym ёмкость
	textit translit "Ghbvth ntrcnf"

Use -d for debug logging of payloads and responses, and -config to
point at a TOML config file overriding endpoint and transport options:

	[api]
	url = "https://textit.ego-ai.tech/api/1.0/data"
	timeout_ms = 30000
	requests_per_second = 2.0

	[log]
	level = "debug"

The config file is created with defaults if it doesn't exist.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/prostmich/textit-go/internal/logger"
	"github.com/prostmich/textit-go/pkg/config"
	"github.com/prostmich/textit-go/pkg/morph"
	"github.com/prostmich/textit-go/pkg/textit"
)

const (
	Version = "0.1.0"
	AppName = "textit"
	gh      = "https://github.com/prostmich/textit-go"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config and the client together; the operation
// logic itself lives in pkg/textit.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to TOML config file")
	suggest := flag.Bool("suggest", false, "Fetch correction candidates for speller findings")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.InitConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Debugf("Using config file: (%s)", *configPath)
	} else {
		cfg = config.DefaultConfig()
	}
	logger.SetLevelFromString(cfg.Log.Level)
	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <operation> <args...>\n", AppName)
		fmt.Fprintln(os.Stderr, "Operations: correct, hint, numeral, speller, word, setform, cognate, synonym, translit")
		os.Exit(1)
	}

	client := textit.NewClient(cfg)
	ctx := context.Background()

	if err := run(ctx, client, args, *suggest); err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}

// run dispatches one operation and prints its result.
func run(ctx context.Context, client *textit.Client, args []string, suggest bool) error {
	op, rest := args[0], args[1:]

	switch op {
	case "correct":
		words, err := client.Correct(ctx, rest[0])
		if err != nil {
			return err
		}
		printWords(words)
	case "hint":
		words, err := client.Hint(ctx, rest[0])
		if err != nil {
			return err
		}
		printWords(words)
	case "numeral":
		if len(rest) < 2 {
			return fmt.Errorf("numeral needs <number> <word>")
		}
		number, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("bad number %q: %v", rest[0], err)
		}
		expansion, err := client.Numeral(ctx, number, rest[1], textit.NumeralOptions{})
		if err != nil {
			return err
		}
		if expansion == nil {
			fmt.Println("no result")
			return nil
		}
		fmt.Println(expansion.FullText())
	case "speller":
		report, err := client.Speller(ctx, rest[0], suggest)
		if err != nil {
			return err
		}
		if report == nil {
			fmt.Println("no findings")
			return nil
		}
		fmt.Printf("%s at %d\n", report.Word, report.Position)
		printWords(report.Corrections)
	case "word":
		analysis, err := client.WordInfo(ctx, rest[0])
		if err != nil {
			return err
		}
		printWord(analysis)
	case "setform":
		// Bare setform from the CLI only pins the case for now.
		form := textit.FormSpec{}
		if len(rest) > 1 {
			c, err := morph.ParseCase(rest[1])
			if err != nil {
				return err
			}
			form.Case = c
		}
		analysis, err := client.SetFormInfo(ctx, rest[0], form)
		if err != nil {
			return err
		}
		printWord(analysis)
	case "cognate":
		words, err := client.Cognate(ctx, rest[0])
		if err != nil {
			return err
		}
		printWords(words)
	case "synonym":
		words, err := client.Synonym(ctx, rest[0])
		if err != nil {
			return err
		}
		printWords(words)
	case "translit":
		text, err := client.Transliterate(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func printWords(words []*morph.WordAnalysis) {
	for _, w := range words {
		printWord(w)
	}
}

func printWord(w *morph.WordAnalysis) {
	if w == nil {
		fmt.Println("no result")
		return
	}
	line := w.Word
	if w.Part != "" {
		line += "  [" + string(w.Part) + "]"
	}
	if w.Lemma != "" && w.Lemma != w.Word {
		line += "  lemma=" + w.Lemma
	}
	fmt.Println(line)
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ textit ] Russian text tools over the TextIT API")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
