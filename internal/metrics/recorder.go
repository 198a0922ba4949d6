// Package metrics records operational counters for the school browser.
//
// Recorder is the narrow interface the coordinator, domain service and remote
// client depend on. NoopRecorder is the default; PrometheusRecorder backs it
// with client_golang collectors.
package metrics

import "time"

// ResultLabel is the outcome label of an operation.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder receives metric observations.
type Recorder interface {
	ObserveRemoteRequest(resource string, d time.Duration, result ResultLabel)
	IncDomainError(operation, kind string)
	IncCacheLookup(hit bool)
	IncStatePublished(kind string)
	IncStaleResult(operation string)
}

// NoopRecorder discards every observation.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRemoteRequest(string, time.Duration, ResultLabel) {}
func (NoopRecorder) IncDomainError(string, string)                         {}
func (NoopRecorder) IncCacheLookup(bool)                                   {}
func (NoopRecorder) IncStatePublished(string)                              {}
func (NoopRecorder) IncStaleResult(string)                                 {}

// ResultOf maps an error onto a result label.
func ResultOf(err error) ResultLabel {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}
