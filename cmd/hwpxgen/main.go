package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hyunjae-lee/go-hwpx/pkg/hwpx"
)

func main() {
	var (
		output  = flag.String("o", "", "output path (default: input with .hwpx extension)")
		seed    = flag.Int64("seed", 0, "seed for deterministic element IDs (0 = random)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hwpxgen [flags] <input.md>")
		fmt.Fprintln(os.Stderr, "\nConverts a markdown file to a HWPX document.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	out := *output
	if out == "" {
		out = replaceExt(input)
	}

	if err := convert(input, out, *seed, log); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}
	log.Info().Str("output", out).Msg("done")
}

func convert(input, output string, seed int64, log zerolog.Logger) error {
	md, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var doc *hwpx.Document
	if seed != 0 {
		doc = hwpx.NewWithSeed(seed)
	} else {
		doc = hwpx.New()
	}
	doc.SetLogger(log)

	if err := doc.AppendMarkdown(string(md)); err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}
	return doc.Save(output)
}

func replaceExt(input string) string {
	if strings.HasSuffix(strings.ToLower(input), ".md") {
		return input[:len(input)-3] + ".hwpx"
	}
	return input + ".hwpx"
}
