package mapreduce

import (
	"github.com/dtnitsch/wordshift/models"
	"github.com/dtnitsch/wordshift/pkg/analytics"
)

// Map generates a word frequency table for a single document's content.
func Map(content string, a *analytics.Analytics) models.FrequencyTable {
	return a.WordFrequency(content)
}

// Reduce aggregates a slice of frequency tables into a single table.
// Nil tables are skipped; the inputs are not modified.
func Reduce(intermediate []models.FrequencyTable) models.FrequencyTable {
	finalResults := make(models.FrequencyTable)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
