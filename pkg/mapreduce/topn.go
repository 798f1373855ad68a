package mapreduce

import (
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/wordshift/models"
)

type kv struct {
	Key   string
	Value int
}

// sortedCounts orders a table by count descending, then word ascending.
func sortedCounts(wordCounts models.FrequencyTable, n int) []kv {
	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	if n >= 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N keywords from a frequency table as formatted strings.
// Each string is formatted as "word:count" (e.g., "inflation:42").
// A negative n returns every keyword.
func TopKeywords(wordCounts models.FrequencyTable, n int) []string {
	ss := sortedCounts(wordCounts, n)

	keywords := make([]string, len(ss))
	for i, item := range ss {
		keywords[i] = fmt.Sprintf("%s:%d", item.Key, item.Value)
	}

	return keywords
}

// WriteTopKeywords writes the top N keywords in a numbered list format.
func WriteTopKeywords(w io.Writer, wordCounts models.FrequencyTable, n int) error {
	for i, item := range sortedCounts(wordCounts, n) {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, item.Key, item.Value); err != nil {
			return err
		}
	}
	return nil
}
