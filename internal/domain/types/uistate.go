package types

// StateKind names a UIState variant.
type StateKind string

const (
	KindLoading          StateKind = "loading"
	KindSchoolList       StateKind = "school_list"
	KindSchoolWithScores StateKind = "school_with_scores"
	KindError            StateKind = "error"
)

// UIState is the single value describing what the UI should render. The
// variants are Loading, SchoolList, SchoolWithScores and Error; the interface is
// closed to other packages.
type UIState interface {
	Kind() StateKind
	isUIState()
}

// SchoolItem is a school as presented in the list.
type SchoolItem struct {
	ID       SchoolID `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Selected bool     `json:"selected" yaml:"selected"`
}

// ScoreItem is a labelled score.
type ScoreItem struct {
	Label Message `json:"label" yaml:"label"`
	Score Score   `json:"score" yaml:"score"`
}

// AverageScoresView groups the three SAT scores of a school.
type AverageScoresView struct {
	Reading ScoreItem `json:"reading" yaml:"reading"`
	Writing ScoreItem `json:"writing" yaml:"writing"`
	Math    ScoreItem `json:"math" yaml:"math"`
}

// NewAverageScoresView labels the scores of s.
func NewAverageScoresView(s AverageScores) AverageScoresView {
	return AverageScoresView{
		Reading: ScoreItem{Label: MessageSATReading, Score: s.Reading},
		Writing: ScoreItem{Label: MessageSATWriting, Score: s.Writing},
		Math:    ScoreItem{Label: MessageSATMath, Score: s.Math},
	}
}

// Loading: the list of schools is still being fetched.
type Loading struct {
	Message Message `json:"message" yaml:"message"`
}

// SchoolList: the schools are shown with a message below the list.
type SchoolList struct {
	Label   Message      `json:"label" yaml:"label"`
	Schools []SchoolItem `json:"schools" yaml:"schools"`
	Message Message      `json:"message" yaml:"message"`
}

// SchoolWithScores: the schools are shown with the scores of SchoolName below.
type SchoolWithScores struct {
	Label       Message           `json:"label" yaml:"label"`
	Schools     []SchoolItem      `json:"schools" yaml:"schools"`
	ScoresLabel Message           `json:"scores_label" yaml:"scores_label"`
	SchoolName  string            `json:"school_name" yaml:"school_name"`
	Scores      AverageScoresView `json:"scores" yaml:"scores"`
}

// Error: only an error message is shown.
type Error struct {
	Message Message `json:"message" yaml:"message"`
}

func (Loading) Kind() StateKind          { return KindLoading }
func (SchoolList) Kind() StateKind       { return KindSchoolList }
func (SchoolWithScores) Kind() StateKind { return KindSchoolWithScores }
func (Error) Kind() StateKind            { return KindError }

func (Loading) isUIState()          {}
func (SchoolList) isUIState()       {}
func (SchoolWithScores) isUIState() {}
func (Error) isUIState()            {}

// NewLoading returns the initial state.
func NewLoading() Loading { return Loading{Message: MessageLoadingSchools} }

// NewSchoolList returns a list state with the given message.
func NewSchoolList(schools []SchoolItem, msg Message) SchoolList {
	return SchoolList{Label: MessageSchools, Schools: schools, Message: msg}
}

// NewSchoolWithScores returns a list state with the scores of one school.
func NewSchoolWithScores(schools []SchoolItem, name string, scores AverageScores) SchoolWithScores {
	return SchoolWithScores{
		Label:       MessageSchools,
		Schools:     schools,
		ScoresLabel: MessageAverageScores,
		SchoolName:  name,
		Scores:      NewAverageScoresView(scores),
	}
}

// NewError returns a full-screen error state.
func NewError(msg Message) Error { return Error{Message: msg} }

// SchoolItems returns the schools contained in state, or nil for states without a list.
func SchoolItems(state UIState) []SchoolItem {
	switch s := state.(type) {
	case SchoolList:
		return s.Schools
	case SchoolWithScores:
		return s.Schools
	default:
		return nil
	}
}

// SelectedItem returns the first item marked as selected.
func SelectedItem(items []SchoolItem) (SchoolItem, bool) {
	for _, it := range items {
		if it.Selected {
			return it, true
		}
	}
	return SchoolItem{}, false
}
