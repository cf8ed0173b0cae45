package wordfreq

import "sort"

type FreqEntry struct {
	Word  string
	Count uint64
}

type FreqEntries []FreqEntry

func (fe FreqEntries) Len() int {
	return len(fe)
}

func (fe FreqEntries) Swap(i, j int) {
	fe[i], fe[j] = fe[j], fe[i]
}

func (fe FreqEntries) Less(i, j int) bool {
	if fe[i].Count != fe[j].Count {
		return fe[i].Count > fe[j].Count
	}
	return fe[i].Word < fe[j].Word
}

// Top returns the leading n entries, or all of them if fewer exist.
func (fe FreqEntries) Top(n int) FreqEntries {
	if n > len(fe) {
		n = len(fe)
	}
	return fe[:n]
}

// Rank produces the total order over the frequency table: count descending,
// ties broken by ascending word. The secondary key makes the order
// deterministic, so any Top(n) prefix is reproducible across runs.
func (wc *WordCounter) Rank() FreqEntries {
	entries := make(FreqEntries, 0, len(wc.Counts))
	for word, count := range wc.Counts {
		entries = append(entries, FreqEntry{Word: word, Count: count})
	}
	sort.Sort(entries)
	return entries
}
