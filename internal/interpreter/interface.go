package interpreter

import "time"

// Interpreter turns free-form scheduling text into a date or a recurrence.
type Interpreter interface {
	// Interpret resolves text relative to ref. Unparseable text yields an empty
	// Result, never an error. Calendar days are taken in ref's location.
	Interpret(text string, ref time.Time) Result
}

// DateParser resolves plain date phrases that are not recurrences.
// Implementations must be forward-biased and return an error on no match.
type DateParser interface {
	Parse(phrase string, base time.Time) (time.Time, error)
}
