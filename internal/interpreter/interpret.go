package interpreter

import (
	"time"

	"recurring-task-engine/pkg/datemath"
)

const dueLabelLayout = "Mon, Jan 2 2006"

func (i *implInterpreter) Interpret(text string, ref time.Time) Result {
	norm := normalize(text)
	if norm == "" {
		interpretationsTotal.WithLabelValues(string(KindNone)).Inc()
		return Result{}
	}

	today := datemath.StartOfDay(ref)
	key := norm + "|" + today.Format(time.DateOnly) + "|" + ref.Location().String()
	if i.cache != nil {
		if res, ok := i.cache.Get(key); ok {
			cacheHitsTotal.Inc()
			interpretationsTotal.WithLabelValues(string(res.Kind())).Inc()
			return res.clone()
		}
	}

	res := i.interpret(norm, ref, today)
	if i.cache != nil {
		i.cache.Add(key, res)
	}
	interpretationsTotal.WithLabelValues(string(res.Kind())).Inc()
	return res.clone()
}

func (i *implInterpreter) interpret(text string, ref, today time.Time) Result {
	if rule, anchor, ok := matchRecurrence(text, today); ok {
		return Result{Date: &anchor, Recurrence: &rule, Label: rule.Label()}
	}

	if m := reUntil.FindStringSubmatch(text); m != nil {
		if rule, anchor, ok := matchRecurrence(m[1], today); ok {
			if i.parser == nil {
				return Result{}
			}
			end, err := i.parser.Parse(m[2], ref)
			if err != nil || datemath.CompareDate(end, anchor) < 0 {
				return Result{}
			}
			rule = rule.WithEndDate(end)
			return Result{Date: &anchor, Recurrence: &rule, Label: rule.Label()}
		}
	}

	if i.parser == nil {
		return Result{}
	}
	d, err := i.parser.Parse(text, ref)
	if err != nil {
		return Result{}
	}
	return Result{Date: &d, Label: "Due " + d.Format(dueLabelLayout)}
}
