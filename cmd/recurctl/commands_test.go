package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInterpretCommand(t *testing.T) {
	out, err := run(t, "interpret", "every monday", "--today", "2024-05-01")
	require.NoError(t, err)

	var v struct {
		Kind       string         `json:"kind"`
		Date       string         `json:"date"`
		Recurrence map[string]any `json:"recurrence"`
		Label      string         `json:"label"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "recurrence", v.Kind)
	assert.Equal(t, "2024-05-06", v.Date)
	assert.Equal(t, "weekly", v.Recurrence["frequency"])
	assert.Equal(t, "Repeats every Monday", v.Label)
}

func TestInterpretCommandNoMatch(t *testing.T) {
	out, err := run(t, "interpret", "whenever", "--today", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "none"`)
	assert.Contains(t, out, `"date": null`)
}

func TestInterpretCommandErrors(t *testing.T) {
	_, err := run(t, "interpret", "daily", "--today", "05/01/2024")
	assert.Error(t, err)

	_, err = run(t, "interpret", "daily", "--tz", "Mars/Olympus")
	assert.Error(t, err)

	_, err = run(t, "interpret")
	assert.Error(t, err)
}

func TestNextCommand(t *testing.T) {
	out, err := run(t, "next",
		"--rule", `{"frequency":"weekly","days_of_week":[1,3],"end_date":"2024-05-13"}`,
		"--from", "2024-05-01", "--count", "5")
	require.NoError(t, err)

	var v nextView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []string{"2024-05-06", "2024-05-08", "2024-05-13"}, v.Dates)
	assert.True(t, v.SeriesEnded)
	assert.Contains(t, v.RRULE, "BYDAY=MO,WE")
}

func TestNextCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing rule", []string{"next", "--from", "2024-05-01"}},
		{"bad json", []string{"next", "--rule", "{", "--from", "2024-05-01"}},
		{"invalid rule", []string{"next", "--rule", `{"frequency":"daily","day_of_month":3}`}},
		{"bad count", []string{"next", "--rule", `{"frequency":"daily"}`, "--count", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestOutputFormats(t *testing.T) {
	out, err := run(t, "next", "--rule", `{"frequency":"monthly","day_of_month":31}`, "--from", "2024-01-31", "--count", "2", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-02-29")
	assert.Contains(t, out, "rrule: FREQ=MONTHLY")

	out, err = run(t, "interpret", "every other day", "--today", "2024-05-01", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Repeats every 2 days")
	assert.Contains(t, out, "2024-05-01")

	_, err = run(t, "interpret", "daily", "-o", "xml")
	assert.Error(t, err)
}
