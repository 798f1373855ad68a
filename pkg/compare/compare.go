// Package compare computes per-word relative change between two frequency tables
// and orders the resulting records.
package compare

import (
	"sort"

	"github.com/dtnitsch/wordshift/models"
)

// Rate returns the relative change from compare to current.
// A word missing from the compare side has an infinite rate unless it is
// missing from both sides, in which case the rate is zero.
func Rate(current, compare int) models.Rate {
	if compare == 0 {
		if current > 0 {
			return models.InfiniteRate()
		}
		return models.FiniteRate(0)
	}
	return models.FiniteRate(float64(current-compare) / float64(compare))
}

// Compare builds one record for every word present in either table.
// The returned records are in no particular order.
func Compare(current, compare models.FrequencyTable) []models.ChangeRecord {
	records := make([]models.ChangeRecord, 0, len(current)+len(compare))

	for word, cur := range current {
		cmp := compare[word]
		records = append(records, models.ChangeRecord{
			Word:       word,
			Current:    cur,
			Compare:    cmp,
			ChangeRate: Rate(cur, cmp),
		})
	}

	for word, cmp := range compare {
		if _, seen := current[word]; seen {
			continue
		}
		records = append(records, models.ChangeRecord{
			Word:       word,
			Compare:    cmp,
			ChangeRate: Rate(0, cmp),
		})
	}

	return records
}

// RankByMagnitude sorts records by the absolute size of their change, largest
// first. Infinite rates come before every finite one; equal magnitudes are
// ordered by word.
func RankByMagnitude(records []models.ChangeRecord) {
	sort.Slice(records, func(i, j int) bool {
		mi, mj := records[i].ChangeRate.Magnitude(), records[j].ChangeRate.Magnitude()
		if mi != mj {
			return mi > mj
		}
		return records[i].Word < records[j].Word
	})
}

// RankAlphabetical sorts records by word in descending order.
func RankAlphabetical(records []models.ChangeRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Word > records[j].Word
	})
}

// Top returns at most n leading records. n <= 0 keeps all of them.
func Top(records []models.ChangeRecord, n int) []models.ChangeRecord {
	if n <= 0 || len(records) <= n {
		return records
	}
	return records[:n]
}
