package recurrence

import (
	"errors"
	"fmt"
)

// MaxInterval bounds the interval of any rule.
const MaxInterval = 999

// ErrInvalidRule is the base error for every rejected rule construction.
var ErrInvalidRule = errors.New("invalid recurrence rule")

var (
	ErrInvalidInterval      = fmt.Errorf("%w: interval must be between 1 and %d", ErrInvalidRule, MaxInterval)
	ErrUnknownFrequency     = fmt.Errorf("%w: unknown frequency", ErrInvalidRule)
	ErrDaysOfWeekNotWeekly  = fmt.Errorf("%w: days_of_week requires weekly frequency", ErrInvalidRule)
	ErrDayOfMonthNotMonthly = fmt.Errorf("%w: day_of_month requires monthly frequency", ErrInvalidRule)
	ErrDayOfMonthRange      = fmt.Errorf("%w: day_of_month must be between 1 and 31", ErrInvalidRule)
	ErrWeekdayRange         = fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidRule)
	ErrInvalidEndDate       = fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidRule)
)
