package wordfreq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const CONSOLE_TOP_SZ = 10
const REPORT_TOP_SZ = 100
const REPORT_SUFFIX = "_results.txt"

// Report couples a ranked entry sequence with its run statistics for
// rendering. Entries must already be in rank order.
type Report struct {
	Source  string
	Entries FreqEntries
	Stats   RunStats
}

func groupedCount(n uint64) string {
	return humanize.Comma(int64(n))
}

// percentage returns count's share of the total, guarding the zero-token
// case so an empty run renders 0.00 rather than dividing by zero.
func (report *Report) percentage(count uint64) float64 {
	if report.Stats.TotalWords == 0 {
		return 0.0
	}
	return float64(count) * 100.0 / float64(report.Stats.TotalWords)
}

func (report *Report) sizeMB() float64 {
	return float64(report.Stats.InputBytes) / 1024.0 / 1024.0
}

func (report *Report) elapsedMs() float64 {
	return float64(report.Stats.Duration.Microseconds()) / 1000.0
}

// WriteConsole renders the top entries and the statistics block.
func (report *Report) WriteConsole(writer io.Writer, limit int) {
	fmt.Fprintf(writer, "\n=== Top %d Most Frequent Words ===\n", limit)
	for idx, entry := range report.Entries.Top(limit) {
		fmt.Fprintf(writer, "%2d. %-15s %9s\n", idx+1, entry.Word,
			groupedCount(entry.Count))
	}
	fmt.Fprintf(writer, "\n=== Statistics ===\n")
	fmt.Fprintf(writer, "File size:       %.2f MB\n", report.sizeMB())
	fmt.Fprintf(writer, "Total words:     %s\n",
		groupedCount(report.Stats.TotalWords))
	fmt.Fprintf(writer, "Unique words:    %s\n",
		groupedCount(uint64(report.Stats.UniqueWords)))
	fmt.Fprintf(writer, "Execution time:  %.2f ms\n", report.elapsedMs())
	fmt.Fprintf(writer, "Go version:      %s\n", runtime.Version())
}

// WriteTable renders the full fixed-width report onto a writer.
func (report *Report) WriteTable(writer io.Writer) {
	fmt.Fprintf(writer, "Word Frequency Analysis\n")
	fmt.Fprintf(writer, "Input file: %s\n", report.Source)
	fmt.Fprintf(writer, "Generated: %s\n",
		time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "Execution time: %.2f ms\n\n", report.elapsedMs())
	fmt.Fprintf(writer, "Total words: %s\n",
		groupedCount(report.Stats.TotalWords))
	fmt.Fprintf(writer, "Unique words: %s\n\n",
		groupedCount(uint64(report.Stats.UniqueWords)))
	fmt.Fprintf(writer, "Top %d Most Frequent Words:\n", REPORT_TOP_SZ)
	fmt.Fprintf(writer, "Rank  Word            Count     Percentage\n")
	fmt.Fprintf(writer, "----  --------------- --------- ----------\n")
	for idx, entry := range report.Entries.Top(REPORT_TOP_SZ) {
		fmt.Fprintf(writer, "%4d  %-15s %9s %10.2f%%\n", idx+1,
			entry.Word, groupedCount(entry.Count),
			report.percentage(entry.Count))
	}
}

// WriteFile persists the full report to path. A failure here is reported to
// the caller but is not fatal to the run.
func (report *Report) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report `%s`: %w", path, err)
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	report.WriteTable(writer)
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing report `%s`: %w", path, err)
	}
	return nil
}

// ReportPath derives the companion report name from the input source name:
// the final extension is replaced by the report suffix, or the suffix is
// appended when the name has no extension.
func ReportPath(inputPath string) string {
	if idx := strings.LastIndexByte(inputPath, '.'); idx != -1 {
		return inputPath[:idx] + REPORT_SUFFIX
	}
	return inputPath + REPORT_SUFFIX
}
