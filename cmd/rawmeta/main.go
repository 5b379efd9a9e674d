// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

// Command rawmeta prints the metadata record of one or more RAW files.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tmeltzer/rawmeta"
)

func main() {
	var (
		maxTime    = flag.Duration("max-time", 5*time.Second, "parse deadline per file")
		maxDirs    = flag.Int("max-dirs", 0, "maximum directories per file (0 = default)")
		scanWindow = flag.Int("scan-window", 0, "structural scan window in bytes (0 = default)")
		verbose    = flag.Bool("v", false, "log parser warnings")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	opts := rawmeta.Options{
		MaxParseTime:   *maxTime,
		MaxDirectories: *maxDirs,
		ScanWindow:     *scanWindow,
	}
	if *verbose {
		opts.Warnf = sugar.Warnf
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := printFile(path, opts, sugar); err != nil {
			sugar.Errorw("extract failed", "file", path, "err", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func printFile(path string, opts rawmeta.Options, sugar *zap.SugaredLogger) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	rec, err := rawmeta.Parse(buf, opts)
	if err != nil {
		return err
	}
	sugar.Debugw("parsed", "file", path, "tags", rec.Len(), "elapsed", time.Since(start))

	fmt.Printf("==== %s\n", path)
	for _, key := range rec.Keys() {
		v, _ := rec.Get(key)
		fmt.Printf("%-40s %v\n", key, v)
	}
	return nil
}
