package usecase

import (
	"time"

	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task/repository"
)

// localNow returns the current time in the configured location.
func (uc *implUseCase) localNow() time.Time {
	return uc.now().In(uc.loc)
}

func (uc *implUseCase) today() time.Time {
	n := uc.localNow()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, uc.loc)
}

// asDate keeps the calendar date of t and places it at midnight in the configured location.
func (uc *implUseCase) asDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.loc)
}

// nextIndex returns one past the highest index in the family. The completed
// instance's own index counts too, in case the family listing is stale.
func nextIndex(instances []repository.SeriesInstance, completedIndex int) int {
	highest := completedIndex
	for _, inst := range instances {
		if inst.RecurrenceIndex > highest {
			highest = inst.RecurrenceIndex
		}
	}
	return highest + 1
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneRule(r *recurrence.Rule) *recurrence.Rule {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
