package gcalendar

import (
	"errors"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
)

var (
	ErrMissingRRULE = errors.New("recurrence rule is required")
	ErrNoToken      = errors.New("installed-app credentials need a token file; run recurctl gcal-auth or use a service account")
)

// Config locates the credentials. TokenPath is only read for installed-app
// (OAuth desktop) credentials and defaults to token.json.
type Config struct {
	CredentialsPath string
	TokenPath       string
}

// CreateRecurringEventRequest describes a repeating all-day event.
type CreateRecurringEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // first occurrence
	RRULE       string    // without the "RRULE:" prefix
	Timezone    string
}

type Event struct {
	ID         string
	Summary    string
	HtmlLink   string
	Date       time.Time
	Recurrence []string
}
