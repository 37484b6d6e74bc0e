package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SentimentTally maps a sentiment label to the number of records carrying it
type SentimentTally map[string]int

// Total returns the sum of all counts
func (t SentimentTally) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Percentage is a share of the total in [0, 100], or "not applicable" when
// the total it was computed against is zero.
type Percentage struct {
	value      float64
	applicable bool
}

// PercentOf returns count/total*100, or NotApplicable when total is zero.
func PercentOf(count, total int) Percentage {
	if total <= 0 {
		return NotApplicable()
	}
	return Percentage{value: float64(count) / float64(total) * 100, applicable: true}
}

// NotApplicable returns the sentinel used when there are no records.
func NotApplicable() Percentage {
	return Percentage{}
}

// Value returns the percentage and whether it is applicable.
func (p Percentage) Value() (float64, bool) {
	return p.value, p.applicable
}

// Applicable reports whether the percentage has a value
func (p Percentage) Applicable() bool {
	return p.applicable
}

func (p Percentage) String() string {
	if !p.applicable {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", p.value)
}

// MarshalJSON renders the percentage rounded to one decimal, or null when not applicable.
func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.applicable {
		return []byte("null"), nil
	}
	return json.Marshal(roundTenth(p.value))
}

// UnmarshalJSON accepts a number or null.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = NotApplicable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("percentage must be a number or null: %w", err)
	}
	*p = Percentage{value: v, applicable: true}
	return nil
}

// MarshalYAML mirrors MarshalJSON for the CLI yaml output.
func (p Percentage) MarshalYAML() (interface{}, error) {
	if !p.applicable {
		return nil, nil
	}
	return roundTenth(p.value), nil
}

// roundTenth rounds like the %.1f display so both renderings agree.
func roundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(fmt.Sprintf("%.1f", v), 64)
	if err != nil {
		return v
	}
	return r
}

// CategoryStat is a count together with its share of the total
type CategoryStat struct {
	Count      int        `json:"count" yaml:"count"`
	Percentage Percentage `json:"percentage" yaml:"percentage"`
}

// Display formats the stat the way the dashboard metrics show it, e.g. "3 (60.0%)".
func (c CategoryStat) Display() string {
	if !c.Percentage.Applicable() {
		return fmt.Sprintf("%d (n/a)", c.Count)
	}
	v, _ := c.Percentage.Value()
	return fmt.Sprintf("%d (%.1f%%)", c.Count, v)
}

// SummaryReport is the headline metrics block of the dashboard
type SummaryReport struct {
	Total    int          `json:"total" yaml:"total"`
	Positive CategoryStat `json:"positive" yaml:"positive"`
	Negative CategoryStat `json:"negative" yaml:"negative"`
}

// ChartPoint is one slice of the sentiment distribution chart
type ChartPoint struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// AnalysisResult bundles everything derived from one feedback table
type AnalysisResult struct {
	Tally  SentimentTally `json:"tally" yaml:"tally"`
	Report SummaryReport  `json:"report" yaml:"report"`
	Series []ChartPoint   `json:"series" yaml:"series"`
}
