package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SuppressedMarker is the raw score text used by the data set when a value is withheld.
const SuppressedMarker = "s"

// Score is a raw SAT score as published: an integer or the marker "s".
type Score struct {
	raw string
}

// NewScore wraps raw score text. It never fails; interpretation happens in Value.
func NewScore(raw string) Score { return Score{raw: raw} }

// Value returns the numeric score. ok is false for the suppressed marker and for any
// text that is not an integer.
func (s Score) Value() (v int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s.raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Suppressed reports whether the score carries the "s" marker.
func (s Score) Suppressed() bool {
	return strings.TrimSpace(s.raw) == SuppressedMarker
}

// String returns the raw text.
func (s Score) String() string { return s.raw }

// MarshalJSON encodes the raw text as a JSON string.
func (s Score) MarshalJSON() ([]byte, error) { return json.Marshal(s.raw) }

// UnmarshalJSON accepts a JSON string or a JSON number.
func (s *Score) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.raw = str
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	s.raw = num.String()
	return nil
}

// MarshalYAML encodes the raw text.
func (s Score) MarshalYAML() (any, error) { return s.raw, nil }

// UnmarshalYAML decodes any scalar as raw text.
func (s *Score) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	s.raw = str
	return nil
}

// AverageScores holds the average SAT scores of one school.
type AverageScores struct {
	ID         SchoolID `json:"dbn" yaml:"dbn"`
	TestTakers Score    `json:"num_of_sat_test_takers,omitzero" yaml:"num_of_sat_test_takers,omitempty"`
	Reading    Score    `json:"sat_critical_reading_avg_score" yaml:"sat_critical_reading_avg_score"`
	Math       Score    `json:"sat_math_avg_score" yaml:"sat_math_avg_score"`
	Writing    Score    `json:"sat_writing_avg_score" yaml:"sat_writing_avg_score"`
}
