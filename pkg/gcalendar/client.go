package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client pushes task series to Google Calendar.
type Client struct {
	service *calendar.Service
}

// New reads cfg.CredentialsPath and builds a client from it.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return NewFromJSON(ctx, data, cfg.TokenPath)
}

// NewFromJSON accepts service-account or installed-app credentials.
func NewFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewFromHTTP uses httpClient as is. Used with pre-authorized clients and in tests.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoToken, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tokenPath, err)
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// CreateRecurringEvent inserts an all-day event repeating by req.RRULE.
func (c *Client) CreateRecurringEvent(ctx context.Context, req CreateRecurringEventRequest) (*Event, error) {
	if req.RRULE == "" {
		return nil, ErrMissingRRULE
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	// All-day: Date instead of DateTime, end exclusive.
	created, err := c.service.Events.Insert(calendarID, &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: req.Date.Format(dateLayout), TimeZone: req.Timezone},
		End:         &calendar.EventDateTime{Date: req.Date.AddDate(0, 0, 1).Format(dateLayout), TimeZone: req.Timezone},
		Recurrence:  []string{"RRULE:" + req.RRULE},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert event into %s: %w", calendarID, err)
	}

	return &Event{
		ID:         created.Id,
		Summary:    created.Summary,
		HtmlLink:   created.HtmlLink,
		Date:       req.Date,
		Recurrence: created.Recurrence,
	}, nil
}
