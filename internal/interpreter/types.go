package interpreter

import (
	"time"

	"recurring-task-engine/internal/recurrence"
)

// Kind classifies an interpretation.
type Kind string

const (
	KindNone       Kind = "none"
	KindDate       Kind = "date"
	KindRecurrence Kind = "recurrence"
)

// Result is the outcome of Interpret. For a recurrence, Date is the anchor
// the rule first applies to.
type Result struct {
	Date       *time.Time
	Recurrence *recurrence.Rule
	Label      string
}

// Matched reports whether anything was recognized.
func (r Result) Matched() bool {
	return r.Date != nil || r.Recurrence != nil
}

// Kind returns what r carries.
func (r Result) Kind() Kind {
	switch {
	case r.Recurrence != nil:
		return KindRecurrence
	case r.Date != nil:
		return KindDate
	default:
		return KindNone
	}
}

func (r Result) clone() Result {
	out := Result{Label: r.Label}
	if r.Date != nil {
		d := *r.Date
		out.Date = &d
	}
	if r.Recurrence != nil {
		rule := *r.Recurrence
		out.Recurrence = &rule
	}
	return out
}

// Config tunes the memo cache. A non-positive CacheSize disables it.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}
