package wordfreq

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const INTERN_LRU_SZ = 65536
const WORDBUF_SZ = 256
const COUNTS_INIT_SZ = 16384

// WordCounter holds the frequency table and the token interning cache for a
// single counting run. The zero value is not usable; construct with
// NewWordCounter.
type WordCounter struct {
	Counts    map[string]uint64
	Total     uint64
	Cache     *lru.ARCCache
	LruHits   int
	LruMisses int
}

func NewWordCounter() *WordCounter {
	cache, _ := lru.NewARC(INTERN_LRU_SZ)
	return &WordCounter{
		Counts: make(map[string]uint64, COUNTS_INIT_SZ),
		Cache:  cache,
	}
}

// isWordByte reports whether b is an ASCII letter. Everything else,
// including bytes >= 0x80 from multi-byte UTF-8 sequences, is a separator.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// internWord materializes a word buffer as a string, serving repeats from
// the ARC cache so each distinct word is allocated once per run.
func (wc *WordCounter) internWord(buf []byte) string {
	if cached, ok := wc.Cache.Get(string(buf)); ok {
		wc.LruHits += 1
		return cached.(string)
	}
	wc.LruMisses += 1
	word := string(buf)
	wc.Cache.Add(word, word)
	return word
}

// WordScanner
// Returns an iterator function over the words in data. Each invocation
// returns one lowercased word, or nil once the input is exhausted. The
// iterator is single-pass and cannot be restarted.
func (wc *WordCounter) WordScanner(data []byte) func() *string {
	pos := 0
	wordBuf := make([]byte, 0, WORDBUF_SZ)
	return func() *string {
		wordBuf = wordBuf[:0]
		for pos < len(data) {
			b := data[pos]
			pos += 1
			if isWordByte(b) {
				wordBuf = append(wordBuf, lowerByte(b))
			} else if len(wordBuf) > 0 {
				word := wc.internWord(wordBuf)
				return &word
			}
		}
		if len(wordBuf) > 0 {
			word := wc.internWord(wordBuf)
			return &word
		}
		return nil
	}
}

// Count consumes a word iterator to completion, incrementing the frequency
// table and the running total once per word.
func (wc *WordCounter) Count(nextWord func() *string) {
	for {
		word := nextWord()
		if word == nil {
			break
		}
		wc.Counts[*word] += 1
		wc.Total += 1
	}
}

// CountBuffer tokenizes and counts an entire byte buffer.
func (wc *WordCounter) CountBuffer(buffer *[]byte) {
	wc.Count(wc.WordScanner(*buffer))
}

// CountString tokenizes and counts a string.
func (wc *WordCounter) CountString(text *string) {
	buf := []byte(*text)
	wc.CountBuffer(&buf)
}

// RunStats are the derived, read-only summaries of a finished counting run.
type RunStats struct {
	InputBytes  uint64
	TotalWords  uint64
	UniqueWords int
	Duration    time.Duration
}

func (wc *WordCounter) Stats(inputBytes uint64,
	elapsed time.Duration) RunStats {
	return RunStats{
		InputBytes:  inputBytes,
		TotalWords:  wc.Total,
		UniqueWords: len(wc.Counts),
		Duration:    elapsed,
	}
}
