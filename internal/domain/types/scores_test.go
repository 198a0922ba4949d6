package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"nycschools/internal/domain/types"
)

func TestScore_Value(t *testing.T) {
	cases := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "124", want: 124, wantOK: true},
		{raw: " 400 ", want: 400, wantOK: true},
		{raw: "s"},
		{raw: "abc"},
		{raw: ""},
		{raw: "12.5"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := types.NewScore(tc.raw).Value()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScore_Suppressed(t *testing.T) {
	assert.True(t, types.NewScore("s").Suppressed())
	assert.False(t, types.NewScore("abc").Suppressed())
	assert.False(t, types.NewScore("233").Suppressed())
}

func TestAverageScores_DecodesSocrataRecord(t *testing.T) {
	payload := `{
		"dbn": "01M292",
		"school_name": "HENRY STREET SCHOOL",
		"num_of_sat_test_takers": "29",
		"sat_critical_reading_avg_score": "355",
		"sat_math_avg_score": 404,
		"sat_writing_avg_score": "s"
	}`
	var got types.AverageScores
	require.NoError(t, json.Unmarshal([]byte(payload), &got))

	assert.Equal(t, types.SchoolID("01M292"), got.ID)
	v, ok := got.Math.Value()
	require.True(t, ok)
	assert.Equal(t, 404, v)
	assert.True(t, got.Writing.Suppressed())
	assert.Equal(t, "355", got.Reading.String())
}

func TestAverageScores_DecodesYAML(t *testing.T) {
	doc := "dbn: w3\nsat_math_avg_score: s\nsat_critical_reading_avg_score: 12\nsat_writing_avg_score: \"34\"\n"
	var got types.AverageScores
	require.NoError(t, yaml.Unmarshal([]byte(doc), &got))

	assert.True(t, got.Math.Suppressed())
	v, ok := got.Reading.Value()
	require.True(t, ok)
	assert.Equal(t, 12, v)
}
