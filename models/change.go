package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// FrequencyTable maps a token to its occurrence count within one document.
type FrequencyTable map[string]int

// Total returns the number of tokens counted in the table.
func (f FrequencyTable) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// infinityToken is how an unbounded increase is written in output documents.
const infinityToken = "inf"

// Rate is the relative change of a word between two documents.
// A word absent from the compare document but present in the current one has
// no finite rate; that case is carried as Infinite rather than as a float
// infinity so every encoder can represent it.
type Rate struct {
	Infinite bool
	Value    float64
}

// FiniteRate returns a rate holding v.
func FiniteRate(v float64) Rate {
	return Rate{Value: v}
}

// InfiniteRate returns the rate used for words that are new in the current document.
func InfiniteRate() Rate {
	return Rate{Infinite: true}
}

// Magnitude is the absolute size of the change, used for ranking.
func (r Rate) Magnitude() float64 {
	if r.Infinite {
		return math.Inf(1)
	}
	return math.Abs(r.Value)
}

func (r Rate) String() string {
	if r.Infinite {
		return infinityToken
	}
	return fmt.Sprintf("%g", r.Value)
}

// MarshalJSON writes finite rates as numbers and the infinite rate as "inf".
func (r Rate) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return json.Marshal(infinityToken)
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts the forms written by MarshalJSON.
func (r *Rate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != infinityToken {
			return fmt.Errorf("invalid change rate %q", s)
		}
		*r = InfiniteRate()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid change rate: %w", err)
	}
	*r = FiniteRate(v)
	return nil
}

// MarshalYAML mirrors the JSON representation.
func (r Rate) MarshalYAML() (interface{}, error) {
	if r.Infinite {
		return infinityToken, nil
	}
	return r.Value, nil
}

// ChangeRecord is the comparison result for a single word.
type ChangeRecord struct {
	Word       string `json:"word" yaml:"word"`
	Current    int    `json:"current" yaml:"current"`
	Compare    int    `json:"compare" yaml:"compare"`
	ChangeRate Rate   `json:"change_rate" yaml:"change_rate"`
}
