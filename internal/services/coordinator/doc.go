// Package coordinator derives the single current UI state of the school
// browser from asynchronous, possibly failing domain calls.
//
// The Coordinator owns the in-memory school list cache, reads and writes the
// persisted selection and publishes every state change on a statefeed.Feed.
// State flow:
//
//	Loading -> SchoolList <-> SchoolWithScores
//	Loading -> Error            (first list fetch failed)
//
// Once a list has been shown, later failures degrade to a SchoolList carrying
// an error message instead of replacing the screen.
//
// # Ordering
//
// Every operation takes a generation number from a monotonically increasing
// counter and cancels the operation it supersedes. A result is published only
// while its generation is still the latest, so a slow, superseded score fetch
// can never overwrite the state of a newer selection. The list fetch is shared
// by all operations waiting on it and is not cancelled with them.
package coordinator
