// Package logfields holds the canonical slog attribute names used across the app.
package logfields

import (
	"log/slog"
	"time"
)

const (
	KeyOperation  = "operation"
	KeyOpID       = "op_id"
	KeySchoolID   = "school_id"
	KeySchoolName = "school_name"
	KeyState      = "state"
	KeyCount      = "count"
	KeyGeneration = "generation"
	KeyDurationMS = "duration_ms"
	KeyErrorKind  = "error_kind"
	KeyURL        = "url"
	KeyStatus     = "status"
	KeyStore      = "store"
	KeyError      = "error"
)

func Operation(name string) slog.Attr  { return slog.String(KeyOperation, name) }
func OpID(id string) slog.Attr         { return slog.String(KeyOpID, id) }
func SchoolID(id string) slog.Attr     { return slog.String(KeySchoolID, id) }
func SchoolName(n string) slog.Attr    { return slog.String(KeySchoolName, n) }
func State(kind string) slog.Attr      { return slog.String(KeyState, kind) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Generation(g uint64) slog.Attr    { return slog.Uint64(KeyGeneration, g) }
func ErrorKind(kind string) slog.Attr  { return slog.String(KeyErrorKind, kind) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func Status(code int) slog.Attr        { return slog.Int(KeyStatus, code) }
func Store(name string) slog.Attr      { return slog.String(KeyStore, name) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
