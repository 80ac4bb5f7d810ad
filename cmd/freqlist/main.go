// Freqlist reads an Armenian text and writes the list of its unique words
// with the number of their occurrences, most frequent first:
//
//	freqlist -i book.txt -o book.freq
//
// Each output line is "<word> <count>". Words are folded to lowercase and
// truncated to -m characters.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ledgerwatch/log/v3"

	"github.com/aglyzov/go-freqlist/alphabet"
	"github.com/aglyzov/go-freqlist/freq"
)

func main() {
	var (
		inputPath  = flag.String("i", "", "input text file")
		outputPath = flag.String("o", "", "output frequency list file")
		maxLength  = flag.Int("m", freq.DefaultMaxWordLength, "maximum word length, longer words are truncated")
		verbose    = flag.Bool("v", false, "log debug details")
	)
	flag.Parse()

	lvl := log.LvlInfo
	if *verbose {
		lvl = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))

	if err := run(*inputPath, *outputPath, *maxLength); err != nil {
		log.Error("Frequency list failed", "err", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, maxLength int) error {
	switch {
	case inputPath == "":
		return errors.New("missing input file (-i)")
	case outputPath == "":
		return errors.New("missing output file (-o)")
	case maxLength < 1:
		return fmt.Errorf("invalid maximum word length %d", maxLength)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input: %w", err)
	}
	defer f.Close()

	var (
		start = time.Now()
		b     = freq.NewBuilder(freq.Options{
			Alphabet:      alphabet.Armenian,
			MaxWordLength: maxLength,
		})
	)

	words, err := b.Consume(f)
	if err != nil {
		return err
	}

	entries := b.Collect()

	stats := b.Trie().Stats()
	log.Debug("Trie built", "nodes", stats.Nodes, "branches", stats.Branches,
		"leaves", stats.Leaves, "depth", stats.MaxDepth)

	if err = freq.WriteFile(outputPath, entries); err != nil {
		return err
	}

	log.Info("Frequency list written", "input", inputPath, "output", outputPath,
		"words", words, "distinct", len(entries), "elapsed", time.Since(start))

	return nil
}
