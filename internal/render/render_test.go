package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"nycschools/internal/domain"
	"nycschools/internal/render"
)

func items() []domain.SchoolItem {
	return []domain.SchoolItem{
		{ID: "w3", Name: "A School 3"},
		{ID: "97f", Name: "S School 2", Selected: true},
		{ID: "342", Name: "Z School 1"},
	}
}

func withScores() domain.UIState {
	return domain.NewSchoolWithScores(items(), "S School 2", domain.AverageScores{
		ID:      "97f",
		Math:    domain.NewScore("124"),
		Reading: domain.NewScore("23"),
		Writing: domain.NewScore(domain.SuppressedMarker),
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"text":   render.FormatText,
		" JSON ": render.FormatJSON,
		"yaml":   render.FormatYAML,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := render.ParseFormat("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestText_AllStates(t *testing.T) {
	var buf bytes.Buffer
	sink := render.NewText(&buf)

	require.NoError(t, sink.Render(domain.NewLoading()))
	assert.Contains(t, buf.String(), "Loading schools")

	buf.Reset()
	require.NoError(t, sink.Render(domain.NewSchoolList(items(), domain.MessageNoSchoolSelected)))
	out := buf.String()
	assert.Contains(t, out, "* 97f")
	assert.Contains(t, out, "  w3")
	assert.Less(t, strings.Index(out, "A School 3"), strings.Index(out, "Z School 1"))
	assert.Contains(t, out, domain.MessageNoSchoolSelected.Text())

	buf.Reset()
	require.NoError(t, sink.Render(withScores()))
	out = buf.String()
	assert.Contains(t, out, "Average SAT scores: S School 2")
	assert.Regexp(t, `Math\s+124`, out)
	assert.Regexp(t, `Reading\s+23`, out)
	assert.Regexp(t, `Writing\s+suppressed`, out)

	buf.Reset()
	require.NoError(t, sink.Render(domain.NewError(domain.MessageNetworkError)))
	assert.Contains(t, buf.String(), "error: Network error")
}

func TestJSON_Envelope(t *testing.T) {
	var buf bytes.Buffer
	sink := render.NewJSON(&buf)
	require.NoError(t, sink.Render(withScores()))
	require.NoError(t, sink.Render(domain.NewError(domain.MessageServiceError)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first struct {
		Kind  string `json:"kind"`
		State struct {
			SchoolName string `json:"school_name"`
			Scores     struct {
				Math struct {
					Label string `json:"label"`
					Score string `json:"score"`
				} `json:"math"`
			} `json:"scores"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "school_with_scores", first.Kind)
	assert.Equal(t, "S School 2", first.State.SchoolName)
	assert.Equal(t, "sat_math", first.State.Scores.Math.Label)
	assert.Equal(t, "124", first.State.Scores.Math.Score)

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "error", second["kind"])
	assert.Equal(t, domain.MessageServiceError.Text(), second["text"])
}

func TestYAML_Documents(t *testing.T) {
	var buf bytes.Buffer
	sink := render.NewYAML(&buf)
	require.NoError(t, sink.Render(domain.NewSchoolList(items(), domain.MessageLoadingScores)))
	require.NoError(t, sink.Close())

	var doc struct {
		Kind  string `yaml:"kind"`
		State struct {
			Message string              `yaml:"message"`
			Schools []domain.SchoolItem `yaml:"schools"`
		} `yaml:"state"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "school_list", doc.Kind)
	assert.Equal(t, "loading_scores", doc.State.Message)
	require.Len(t, doc.State.Schools, 3)
	assert.True(t, doc.State.Schools[1].Selected)
}
