package render

import (
	"fmt"
	"io"
	"strings"

	"nycschools/internal/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// New returns the sink for format writing to w.
func New(format Format, w io.Writer) (domain.StateSink, error) {
	switch format {
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// unknownState reports a UIState this package does not know how to draw.
func unknownState(state domain.UIState) error {
	return fmt.Errorf("render: unknown ui state %T", state)
}
