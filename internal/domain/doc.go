// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// The types subpackage holds schools, SAT scores, the SchoolError taxonomy and
// the UIState union; the interfaces subpackage holds the remote service, domain,
// selection store and state sink contracts. Both are re-exported here.
package domain
