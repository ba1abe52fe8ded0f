package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"recurring-task-engine/internal/interpreter"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/pkg/datemath"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "recurctl",
		Short:        "Interpret schedules and preview recurrence rules",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("tz", "UTC", "IANA timezone dates are resolved in")
	root.PersistentFlags().StringP("output", "o", outputJSON, "output format: json, yaml or text")

	root.AddCommand(newInterpretCmd(), newNextCmd(), newGCalAuthCmd())
	return root
}

// --- interpret ---

func newInterpretCmd() *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "interpret [text]",
		Short: "Show how schedule text such as \"every monday\" is understood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := parserFromFlags(cmd)
			if err != nil {
				return err
			}
			ref, err := referenceDate(today, parser.Location())
			if err != nil {
				return err
			}

			res := interpreter.New(parser, interpreter.Config{}).Interpret(args[0], ref)
			view := interpretView{
				Kind:  string(res.Kind()),
				Date:  formatDate(res.Date),
				Label: res.Label,
			}
			if res.Recurrence != nil {
				spec := res.Recurrence.Spec()
				view.Recurrence = &spec
			}
			return render(cmd, view)
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "reference date YYYY-MM-DD (default: today)")
	return cmd
}

type interpretView struct {
	Kind       string           `json:"kind"       yaml:"kind"`
	Date       *string          `json:"date"       yaml:"date"`
	Recurrence *recurrence.Spec `json:"recurrence" yaml:"recurrence"`
	Label      string           `json:"label"      yaml:"label"`
}

func (v interpretView) text(st styles) string {
	if v.Kind == "none" {
		return st.muted.Render("no schedule recognized")
	}
	out := st.title.Render(v.Label)
	if v.Date != nil {
		out += "\n" + st.key.Render("first: ") + *v.Date
	}
	return out
}

// --- next ---

func newNextCmd() *cobra.Command {
	var (
		ruleJSON string
		from     string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "List the next occurrences of a rule",
		Example: `  recurctl next --rule '{"frequency":"weekly","days_of_week":[1,3]}' --from 2024-05-01 --count 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := parserFromFlags(cmd)
			if err != nil {
				return err
			}
			loc := parser.Location()

			var spec recurrence.Spec
			if err := json.Unmarshal([]byte(ruleJSON), &spec); err != nil {
				return fmt.Errorf("invalid --rule: %w", err)
			}
			rule, err := spec.Rule(loc)
			if err != nil {
				return err
			}
			start, err := referenceDate(from, loc)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			dates := recurrence.Occurrences(rule, datemath.StartOfDay(start), count)
			out := nextView{Label: rule.Label(), RRULE: rule.RRULE(), Dates: make([]string, len(dates))}
			for i, d := range dates {
				out.Dates[i] = d.Format(time.DateOnly)
			}
			out.SeriesEnded = len(dates) < count
			return render(cmd, out)
		},
	}
	cmd.Flags().StringVar(&ruleJSON, "rule", "", "rule as JSON, e.g. {\"frequency\":\"daily\",\"interval\":2}")
	cmd.Flags().StringVar(&from, "from", "", "date the series starts from YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&count, "count", 5, "number of occurrences")
	_ = cmd.MarkFlagRequired("rule")
	return cmd
}

type nextView struct {
	Label       string   `json:"label"        yaml:"label"`
	RRULE       string   `json:"rrule"        yaml:"rrule"`
	Dates       []string `json:"dates"        yaml:"dates"`
	SeriesEnded bool     `json:"series_ended" yaml:"series_ended"`
}

func (v nextView) text(st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render(v.Label))
	b.WriteString("\n" + st.muted.Render(v.RRULE))
	for i, d := range v.Dates {
		fmt.Fprintf(&b, "\n%s %s", st.key.Render(fmt.Sprintf("%3d.", i+1)), d)
	}
	if v.SeriesEnded {
		b.WriteString("\n" + st.muted.Render("series ends here"))
	}
	return b.String()
}

// --- helpers ---

func parserFromFlags(cmd *cobra.Command) (*datemath.Parser, error) {
	tz, _ := cmd.Flags().GetString("tz")
	return datemath.NewParser(tz)
}

// referenceDate parses YYYY-MM-DD in loc, or returns now when s is empty.
func referenceDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

