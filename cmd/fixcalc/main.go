// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fixcalc evaluates fixed-point operations.
//
// Usage:
//
//	fixcalc [flags] op args...
//
// With no op, fixcalc reads one "op args..." expression per line from the
// standard input. Blank lines and lines starting with # are skipped.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/db47h/fixed/internal/calc"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configFile = flag.String("config", "", "YAML configuration `file`")
		format     = flag.String("format", "", "number format: q16.16, uq16.16 or uq8.8")
		policy     = flag.String("policy", "", "overflow policy: saturate or check")
		locale     = flag.String("locale", "", "format output for the language `tag`")
		prec       = flag.Int("prec", -1, "number of decimals, -1 for the exact value")
		verbose    = flag.Bool("v", false, "log every evaluation")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [op args...]\n\nops: add sub mul div sum neg abs lerp sqrt ssqrt exp\n     sin cos tan asin acos atan atan2 pow log2 ln log10 bits\n\nflags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := calc.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = calc.LoadConfig(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	// flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "policy":
			cfg.Policy = *policy
		case "locale":
			cfg.Locale = *locale
		case "prec":
			cfg.Prec = *prec
		}
	})
	if *verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer log.Sync()

	c, err := calc.New(cfg)
	if err != nil {
		log.Error("invalid configuration", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logctx.NewContext(ctx, log)

	if flag.NArg() > 0 {
		s, err := c.Eval(ctx, flag.Arg(0), flag.Args()[1:]...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(s)
		return 0
	}

	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	res, err := c.EvalAll(ctx, lines)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	status := 0
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, r := range res {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Line, r.Err)
			status = 1
			continue
		}
		fmt.Fprintln(w, r.Value)
	}
	return status
}
