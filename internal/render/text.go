package render

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"

	"nycschools/internal/domain"
)

// Text draws states as plain text for a terminal.
type Text struct {
	w io.Writer
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Render implements domain.StateSink.
func (t *Text) Render(state domain.UIState) error {
	bw := bufio.NewWriter(t.w)
	switch s := state.(type) {
	case domain.Loading:
		fmt.Fprintln(bw, s.Message.Text())
	case domain.SchoolList:
		writeSchools(bw, s.Label, s.Schools)
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, s.Message.Text())
	case domain.SchoolWithScores:
		writeSchools(bw, s.Label, s.Schools)
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "%s: %s\n", s.ScoresLabel.Text(), s.SchoolName)
		tw := tabwriter.NewWriter(bw, 0, 4, 2, ' ', 0)
		for _, item := range []domain.ScoreItem{s.Scores.Reading, s.Scores.Writing, s.Scores.Math} {
			fmt.Fprintf(tw, "  %s\t%s\n", item.Label.Text(), scoreText(item.Score))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	case domain.Error:
		fmt.Fprintf(bw, "error: %s\n", s.Message.Text())
	default:
		return unknownState(state)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func writeSchools(w io.Writer, label domain.Message, schools []domain.SchoolItem) {
	fmt.Fprintln(w, label.Text())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range schools {
		mark := " "
		if it.Selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", mark, it.ID, it.Name)
	}
	_ = tw.Flush()
}

func scoreText(s domain.Score) string {
	if v, ok := s.Value(); ok {
		return fmt.Sprint(v)
	}
	if s.Suppressed() {
		return "suppressed"
	}
	if s.String() == "" {
		return "n/a"
	}
	return s.String()
}
