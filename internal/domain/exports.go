package domain

import (
	interfaces "nycschools/internal/domain/interfaces"
	types "nycschools/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SchoolID          = types.SchoolID
	School            = types.School
	Score             = types.Score
	AverageScores     = types.AverageScores
	Selection         = types.Selection
	SchoolError       = types.SchoolError
	ErrorKind         = types.ErrorKind
	Message           = types.Message
	StateKind         = types.StateKind
	UIState           = types.UIState
	SchoolItem        = types.SchoolItem
	ScoreItem         = types.ScoreItem
	AverageScoresView = types.AverageScoresView
	Loading           = types.Loading
	SchoolList        = types.SchoolList
	SchoolWithScores  = types.SchoolWithScores
	Error             = types.Error
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SchoolService  = interfaces.SchoolService
	SchoolDomain   = interfaces.SchoolDomain
	SelectionStore = interfaces.SelectionStore
	StateSink      = interfaces.StateSink
)

// Error kinds.
const (
	KindNetwork = types.KindNetwork
	KindService = types.KindService
)

// UI state kinds.
const (
	KindLoading          = types.KindLoading
	KindSchoolList       = types.KindSchoolList
	KindSchoolWithScores = types.KindSchoolWithScores
	KindError            = types.KindError
)

// Message keys.
const (
	MessageLoadingSchools   = types.MessageLoadingSchools
	MessageSchools          = types.MessageSchools
	MessageNoSchoolSelected = types.MessageNoSchoolSelected
	MessageLoadingScores    = types.MessageLoadingScores
	MessageAverageScores    = types.MessageAverageScores
	MessageSATReading       = types.MessageSATReading
	MessageSATWriting       = types.MessageSATWriting
	MessageSATMath          = types.MessageSATMath
	MessageNetworkError     = types.MessageNetworkError
	MessageServiceError     = types.MessageServiceError
)

// SuppressedMarker is the score value the remote uses for withheld results.
const SuppressedMarker = types.SuppressedMarker

// Constructors and helpers re-exported from the types subpackage.
var (
	NewScore      = types.NewScore
	NetworkError  = types.NetworkError
	ServiceError  = types.ServiceError
	ClassifyError = types.ClassifyError
	ErrorMessage  = types.ErrorMessage

	NewLoading           = types.NewLoading
	NewSchoolList        = types.NewSchoolList
	NewSchoolWithScores  = types.NewSchoolWithScores
	NewError             = types.NewError
	NewAverageScoresView = types.NewAverageScoresView
	SchoolItems          = types.SchoolItems
	SelectedItem         = types.SelectedItem
)
