package wordfreq

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ReportPathTest struct {
	Input    string
	Expected string
}

var ReportPathTests = []ReportPathTest{
	{"book.txt", "book_results.txt"},
	{"corpus", "corpus_results.txt"},
	{"archive.tar.gz", "archive.tar_results.txt"},
	{"data/book.txt", "data/book_results.txt"},
}

func TestReportPath(t *testing.T) {
	for _, test := range ReportPathTests {
		assert.Equal(t, test.Expected, ReportPath(test.Input))
	}
}

func TestGroupedCount(t *testing.T) {
	assert.Equal(t, "1,234,567", groupedCount(1234567))
	assert.Equal(t, "12,345", groupedCount(12345))
	assert.Equal(t, "42", groupedCount(42))
	assert.Equal(t, "0", groupedCount(0))
}

func makeReport(text string, elapsed time.Duration) *Report {
	counter := NewWordCounter()
	counter.CountString(&text)
	return &Report{
		Source:  "test.txt",
		Entries: counter.Rank(),
		Stats:   counter.Stats(uint64(len(text)), elapsed),
	}
}

func TestWriteConsole(t *testing.T) {
	report := makeReport("hello, world! hello...", 1500*time.Microsecond)
	var buf bytes.Buffer
	report.WriteConsole(&buf, CONSOLE_TOP_SZ)
	out := buf.String()
	assert.Contains(t, out, "=== Top 10 Most Frequent Words ===")
	assert.Contains(t, out, " 1. hello                   2\n")
	assert.Contains(t, out, " 2. world                   1\n")
	assert.Contains(t, out, "=== Statistics ===")
	assert.Contains(t, out, "Total words:     3")
	assert.Contains(t, out, "Unique words:    2")
	assert.Contains(t, out, "Execution time:  1.50 ms")
}

func TestWriteTable(t *testing.T) {
	report := makeReport("aa aa aa bb", 0)
	var buf bytes.Buffer
	report.WriteTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "Input file: test.txt")
	assert.Contains(t, out, "Total words: 4")
	assert.Contains(t, out, "Rank  Word            Count     Percentage")
	assert.Contains(t, out, "   1  aa                      3      75.00%")
	assert.Contains(t, out, "   2  bb                      1      25.00%")
}

func TestWriteTableEmpty(t *testing.T) {
	report := makeReport("1234 !!! ---", 0)
	var buf bytes.Buffer
	report.WriteTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "Total words: 0")
	assert.Contains(t, out, "Unique words: 0")
	assert.NotContains(t, out, "%!")
}

func TestWriteTableLimit(t *testing.T) {
	text := ""
	// 150 distinct words, each occurring once.
	for c1 := 'a'; c1 <= 'o'; c1++ {
		for c2 := 'a'; c2 <= 'j'; c2++ {
			text += string(c1) + string(c2) + " "
		}
	}
	report := makeReport(text, 0)
	require.Equal(t, 150, len(report.Entries))
	var buf bytes.Buffer
	report.WriteTable(&buf)
	assert.Contains(t, buf.String(), "\n 100  ")
	assert.NotContains(t, buf.String(), "\n 101  ")
}

func TestWriteFile(t *testing.T) {
	report := makeReport("hello world", 0)
	path := filepath.Join(t.TempDir(), "out_results.txt")
	require.NoError(t, report.WriteFile(path))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Word Frequency Analysis")
	assert.Contains(t, string(written), "hello")
}

func TestWriteFileFailure(t *testing.T) {
	report := makeReport("hello world", 0)
	err := report.WriteFile(
		filepath.Join(t.TempDir(), "missing", "out_results.txt"))
	assert.Error(t, err)
}

func TestSizeMB(t *testing.T) {
	report := &Report{Stats: RunStats{InputBytes: 3 * 1024 * 1024}}
	assert.InDelta(t, 3.0, report.sizeMB(), 0.001)
}
