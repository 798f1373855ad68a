package compare

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/wordshift/models"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		current int
		compare int
		want    models.Rate
	}{
		{name: "increase", current: 3, compare: 2, want: models.FiniteRate(0.5)},
		{name: "doubling", current: 2, compare: 1, want: models.FiniteRate(1.0)},
		{name: "decrease", current: 1, compare: 4, want: models.FiniteRate(-0.75)},
		{name: "disappeared", current: 0, compare: 3, want: models.FiniteRate(-1.0)},
		{name: "unchanged", current: 7, compare: 7, want: models.FiniteRate(0)},
		{name: "new word", current: 5, compare: 0, want: models.InfiniteRate()},
		{name: "absent on both sides", current: 0, compare: 0, want: models.FiniteRate(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(tt.current, tt.compare)
			if got != tt.want {
				t.Errorf("Rate(%d, %d) = %+v, want %+v", tt.current, tt.compare, got, tt.want)
			}
		})
	}
}

func byWord(records []models.ChangeRecord) map[string]models.ChangeRecord {
	out := make(map[string]models.ChangeRecord, len(records))
	for _, r := range records {
		out[r.Word] = r
	}
	return out
}

func TestCompare_RepeatedWords(t *testing.T) {
	current := models.FrequencyTable{"rate": 3, "cuts": 2}
	previous := models.FrequencyTable{"rate": 2, "cuts": 1}

	records := byWord(Compare(current, previous))
	if got := records["rate"].ChangeRate; got != models.FiniteRate(0.5) {
		t.Errorf("rate change = %+v, want 0.5", got)
	}
	if got := records["cuts"].ChangeRate; got != models.FiniteRate(1.0) {
		t.Errorf("cuts change = %+v, want 1.0", got)
	}
}

func TestCompare_NewWord(t *testing.T) {
	current := models.FrequencyTable{"growth": 5, "rate": 1}
	previous := models.FrequencyTable{"rate": 1}

	records := byWord(Compare(current, previous))
	want := models.ChangeRecord{Word: "growth", Current: 5, Compare: 0, ChangeRate: models.InfiniteRate()}
	if got := records["growth"]; got != want {
		t.Errorf("growth = %+v, want %+v", got, want)
	}
}

func TestCompare_OneRecordPerWord(t *testing.T) {
	current := models.FrequencyTable{"inflation": 4, "labor": 2, "tariffs": 3}
	previous := models.FrequencyTable{"inflation": 2, "housing": 1, "labor": 2}

	records := Compare(current, previous)
	seen := make(map[string]int)
	for _, r := range records {
		seen[r.Word]++
		if r.Current != current[r.Word] || r.Compare != previous[r.Word] {
			t.Errorf("record %+v does not match input counts", r)
		}
	}

	want := map[string]int{"inflation": 1, "labor": 1, "tariffs": 1, "housing": 1}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("words seen = %v, want %v", seen, want)
	}

	housing := byWord(records)["housing"]
	if housing.Current != 0 || housing.ChangeRate != models.FiniteRate(-1) {
		t.Errorf("housing = %+v, want current 0 and rate -1", housing)
	}
}

func TestCompare_Empty(t *testing.T) {
	if got := Compare(nil, nil); len(got) != 0 {
		t.Errorf("Compare(nil, nil) = %v, want empty", got)
	}
}

func TestRankByMagnitude(t *testing.T) {
	records := []models.ChangeRecord{
		{Word: "alpha", ChangeRate: models.FiniteRate(0.1)},
		{Word: "bravo", ChangeRate: models.FiniteRate(0.9)},
		{Word: "charlie", ChangeRate: models.FiniteRate(-0.5)},
	}
	RankByMagnitude(records)

	got := []float64{records[0].ChangeRate.Value, records[1].ChangeRate.Value, records[2].ChangeRate.Value}
	want := []float64{0.9, -0.5, 0.1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ranked rates = %v, want %v", got, want)
	}
}

func TestRankByMagnitude_InfiniteFirstAndTies(t *testing.T) {
	records := []models.ChangeRecord{
		{Word: "zeta", ChangeRate: models.FiniteRate(-1)},
		{Word: "growth", ChangeRate: models.InfiniteRate()},
		{Word: "beta", ChangeRate: models.FiniteRate(1)},
		{Word: "appear", ChangeRate: models.InfiniteRate()},
		{Word: "flat", ChangeRate: models.FiniteRate(0)},
	}
	RankByMagnitude(records)

	var got []string
	for _, r := range records {
		got = append(got, r.Word)
	}
	want := []string{"appear", "growth", "beta", "zeta", "flat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRankAlphabetical(t *testing.T) {
	records := []models.ChangeRecord{{Word: "labor"}, {Word: "tariffs"}, {Word: "inflation"}}
	RankAlphabetical(records)

	got := []string{records[0].Word, records[1].Word, records[2].Word}
	want := []string{"tariffs", "labor", "inflation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestTop(t *testing.T) {
	records := []models.ChangeRecord{{Word: "a"}, {Word: "b"}, {Word: "c"}}

	tests := []struct {
		n    int
		want int
	}{
		{n: 2, want: 2},
		{n: 3, want: 3},
		{n: 10, want: 3},
		{n: 0, want: 3},
		{n: -1, want: 3},
	}
	for _, tt := range tests {
		if got := len(Top(records, tt.n)); got != tt.want {
			t.Errorf("len(Top(%d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
