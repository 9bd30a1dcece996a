package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"passion-match/internal/analysis"
)

// analyze lee un transcript (archivo o stdin) e imprime el TraitAnalysis como JSON.
//
//	analyze -niche "mechanical keyboards" -file interview.txt
//	cat interview.txt | analyze -niche "mechanical keyboards"
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("analyze: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	niche := fs.String("niche", "", "passion niche the interview was about (required)")
	file := fs.String("file", "", "transcript file; reads stdin when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*niche) == "" {
		return errors.New("-niche is required")
	}

	var src io.Reader = stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("open transcript: %w", err)
		}
		defer f.Close()
		src = f
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	result := analysis.AnalyzeTranscript(string(raw), *niche)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
