package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"nycschools/internal/domain"
)

// document is the envelope written by the JSON and YAML sinks.
type document struct {
	Kind  domain.StateKind `json:"kind" yaml:"kind"`
	Text  string           `json:"text,omitempty" yaml:"text,omitempty"`
	State domain.UIState   `json:"state" yaml:"state"`
}

func envelope(state domain.UIState) (document, error) {
	doc := document{Kind: state.Kind(), State: state}
	switch s := state.(type) {
	case domain.Loading:
		doc.Text = s.Message.Text()
	case domain.SchoolList:
		doc.Text = s.Message.Text()
	case domain.SchoolWithScores:
	case domain.Error:
		doc.Text = s.Message.Text()
	default:
		return document{}, unknownState(state)
	}
	return doc, nil
}

// JSON writes one JSON object per state, newline delimited.
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSON returns a JSON sink writing to w.
func NewJSON(w io.Writer) *JSON { return &JSON{enc: json.NewEncoder(w)} }

// Render implements domain.StateSink.
func (j *JSON) Render(state domain.UIState) error {
	doc, err := envelope(state)
	if err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes one YAML document per state.
type YAML struct {
	mu  sync.Mutex
	enc *yaml.Encoder
}

// NewYAML returns a YAML sink writing to w.
func NewYAML(w io.Writer) *YAML {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAML{enc: enc}
}

// Render implements domain.StateSink.
func (y *YAML) Render(state domain.UIState) error {
	doc, err := envelope(state)
	if err != nil {
		return err
	}
	y.mu.Lock()
	defer y.mu.Unlock()
	if err := y.enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// Close flushes buffered output.
func (y *YAML) Close() error {
	y.mu.Lock()
	defer y.mu.Unlock()
	return y.enc.Close()
}

var (
	_ domain.StateSink = (*Text)(nil)
	_ domain.StateSink = (*JSON)(nil)
	_ domain.StateSink = (*YAML)(nil)
)
