package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/wbrown/wordfreq"
	"github.com/yargevad/filepathx"
)

const defaultInput = "book.txt"

// GlobTexts
// Given a directory path, recursively finds all `.txt` files, returning the
// matched paths in a stable order.
func GlobTexts(dirPath string) ([]string, error) {
	textPaths, err := filepathx.Glob(dirPath + "/**/*.txt")
	if err != nil {
		return nil, err
	}
	if len(textPaths) == 0 {
		return nil, fmt.Errorf("`%s` does not contain any .txt files",
			dirPath)
	}
	sort.Strings(textPaths)
	return textPaths, nil
}

// processInput counts every word in the input source, which is either a
// single file or a directory of `.txt` files, and returns the finished
// report.
func processInput(inputPath string) (*wordfreq.Report, error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading `%s`: %w", inputPath, err)
	}
	paths := []string{inputPath}
	if stat.IsDir() {
		if paths, err = GlobTexts(inputPath); err != nil {
			return nil, err
		}
	}
	counter := wordfreq.NewWordCounter()
	startTime := time.Now()
	var inputBytes uint64
	for _, path := range paths {
		data, closer, readErr := wordfreq.ReadFile(path)
		if readErr != nil {
			return nil, readErr
		}
		counter.CountBuffer(data)
		inputBytes += uint64(len(*data))
		if closeErr := closer(); closeErr != nil {
			log.Printf("releasing `%s`: %v", path, closeErr)
		}
	}
	return &wordfreq.Report{
		Source:  inputPath,
		Entries: counter.Rank(),
		Stats:   counter.Stats(inputBytes, time.Since(startTime)),
	}, nil
}

func main() {
	topSize := flag.Int("top", wordfreq.CONSOLE_TOP_SZ,
		"number of entries in the console summary")
	outputFile := flag.String("output", "",
		"path for the results report, derived from the input name if empty")
	noReport := flag.Bool("no_report", false,
		"skip writing the results report file")
	flag.Parse()

	inputPath := defaultInput
	if flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}

	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input `%s`: %v\n", inputPath, err)
		fmt.Fprintf(os.Stderr, "Usage: wordfreq [flags] [filename]\n")
		os.Exit(1)
	}
	fmt.Printf("Processing file: %s\n", inputPath)
	report, err := processInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	report.WriteConsole(os.Stdout, *topSize)

	if *noReport {
		return
	}
	reportPath := *outputFile
	if reportPath == "" {
		reportPath = wordfreq.ReportPath(inputPath)
	}
	if err := report.WriteFile(reportPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Printf("\nResults written to: %s\n", reportPath)
	}
}
