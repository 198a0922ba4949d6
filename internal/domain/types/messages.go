package types

// Message is a stable key for text shown by the UI.
type Message string

const (
	MessageLoadingSchools   Message = "loading_schools"
	MessageSchools          Message = "schools"
	MessageNoSchoolSelected Message = "no_school_selected"
	MessageLoadingScores    Message = "loading_scores"
	MessageAverageScores    Message = "average_scores"
	MessageSATReading       Message = "sat_reading"
	MessageSATWriting       Message = "sat_writing"
	MessageSATMath          Message = "sat_math"
	MessageNetworkError     Message = "network_error"
	MessageServiceError     Message = "service_error"
)

var messageText = map[Message]string{
	MessageLoadingSchools:   "Loading schools…",
	MessageSchools:          "Schools",
	MessageNoSchoolSelected: "Select a school to see its average SAT scores.",
	MessageLoadingScores:    "Loading scores…",
	MessageAverageScores:    "Average SAT scores",
	MessageSATReading:       "Reading",
	MessageSATWriting:       "Writing",
	MessageSATMath:          "Math",
	MessageNetworkError:     "Network error. Check your connection and try again.",
	MessageServiceError:     "The school service returned an unexpected response.",
}

// Text returns the English text for m, or the key itself when unknown.
func (m Message) Text() string {
	if s, ok := messageText[m]; ok {
		return s
	}
	return string(m)
}

// String returns the message key.
func (m Message) String() string { return string(m) }

// ErrorMessage maps a domain error onto the message shown to the user.
//
// Only KindService maps to MessageServiceError. Every other kind, including any
// kind added later and a nil error, is presented as a network error.
func ErrorMessage(err *SchoolError) Message {
	if err != nil && err.Kind == KindService {
		return MessageServiceError
	}
	return MessageNetworkError
}
