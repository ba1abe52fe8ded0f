package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"recurring-task-engine/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	// Midnight local is still the previous day in UTC; the date must not shift.
	d := response.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, loc))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("expected RFC 3339 UTC, got %s", b)
	}

	loc := time.FixedZone("UTC+7", 7*3600)
	b, _ = json.Marshal(response.DateTime(time.Date(2024, 5, 1, 1, 0, 0, 0, loc)))
	if string(b) != `"2024-04-30T18:00:00Z"` {
		t.Errorf("expected conversion to UTC, got %s", b)
	}
	if !strings.HasSuffix(string(b), `Z"`) {
		t.Errorf("expected UTC suffix, got %s", b)
	}
}

func TestNewDateTimePtr(t *testing.T) {
	if response.NewDateTimePtr(nil) != nil {
		t.Errorf("expected nil for nil input")
	}
	tm := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if got := response.NewDateTimePtr(&tm); got == nil || !time.Time(*got).Equal(tm) {
		t.Errorf("unexpected datetime pointer: %v", got)
	}
}

func TestNewDatePtr(t *testing.T) {
	if response.NewDatePtr(nil) != nil {
		t.Errorf("expected nil for nil input")
	}
	tm := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := response.NewDatePtr(&tm); got == nil || !time.Time(*got).Equal(tm) {
		t.Errorf("unexpected date pointer: %v", got)
	}
}
