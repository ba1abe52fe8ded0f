package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recurring-task-engine/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func rewrittenClient(ts *httptest.Server) *http.Client {
	c := ts.Client()
	c.Transport = &rewriteTransport{
		Transport: c.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported credentials", func(t *testing.T) {
		if _, err := gcalendar.NewFromJSON(ctx, []byte(`{"broken":true}`), ""); err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tok := writeFile(t, "token.json", `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
		if _, err := gcalendar.NewFromJSON(ctx, []byte(installedCreds), tok); err != nil {
			t.Fatalf("expected success: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "token.json")
		_, err := gcalendar.NewFromJSON(ctx, []byte(installedCreds), missing)
		if !errors.Is(err, gcalendar.ErrNoToken) {
			t.Fatalf("expected ErrNoToken, got %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		tok := writeFile(t, "token.json", `{"broken": true`)
		if _, err := gcalendar.NewFromJSON(ctx, []byte(installedCreds), tok); err == nil {
			t.Fatalf("expected parse failure")
		}
	})

	t.Run("from file", func(t *testing.T) {
		creds := writeFile(t, "creds.json", `{"broken":true}`)
		if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds}); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: filepath.Join(t.TempDir(), "nope.json")}); err == nil {
			t.Errorf("expected read error")
		}
	})
}

func TestCreateRecurringEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("all-day weekly event", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/team/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var body struct {
				Recurrence []string `json:"recurrence"`
				Start      struct {
					Date string `json:"date"`
				} `json:"start"`
				End struct {
					Date string `json:"date"`
				} `json:"end"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if len(body.Recurrence) != 1 || body.Recurrence[0] != "RRULE:FREQ=WEEKLY;BYDAY=MO" ||
				body.Start.Date != "2024-05-06" || body.End.Date != "2024-05-07" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri","recurrence":["RRULE:FREQ=WEEKLY;BYDAY=MO"]}`))
		}))
		defer ts.Close()

		client, err := gcalendar.NewFromHTTP(ctx, rewrittenClient(ts))
		if err != nil {
			t.Fatalf("unexpected error creating client: %v", err)
		}
		event, err := client.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{
			CalendarID: "team",
			Summary:    "Standup",
			Date:       time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			RRULE:      "FREQ=WEEKLY;BYDAY=MO",
			Timezone:   "UTC",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
	})

	t.Run("defaults to primary calendar", func(t *testing.T) {
		var path string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write([]byte(`{"id":"e"}`))
		}))
		defer ts.Close()

		client, _ := gcalendar.NewFromHTTP(ctx, rewrittenClient(ts))
		if _, err := client.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{RRULE: "FREQ=DAILY"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/calendar/v3/calendars/primary/events" {
			t.Errorf("unexpected path %s", path)
		}
	})

	t.Run("requires rule", func(t *testing.T) {
		client, _ := gcalendar.NewFromHTTP(ctx, http.DefaultClient)
		_, err := client.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{})
		if !errors.Is(err, gcalendar.ErrMissingRRULE) {
			t.Fatalf("expected ErrMissingRRULE, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client, _ := gcalendar.NewFromHTTP(ctx, rewrittenClient(ts))
		if _, err := client.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{RRULE: "FREQ=DAILY"}); err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
