package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"atrova/pkg/gcalendar"
)

// rewriteTransport sends every Calendar API request to a local test server.
type rewriteTransport struct {
	base http.RoundTripper
	host string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.base.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{base: hc.Transport, host: strings.TrimPrefix(ts.URL, "http://")}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewClientFromHTTP() error = %v", err)
	}
	return client
}

const installedCreds = `{"installed": {
	"client_id": "atrova-test.apps.googleusercontent.com",
	"auth_uri": "https://accounts.google.com/o/oauth2/auth",
	"token_uri": "https://oauth2.googleapis.com/token",
	"client_secret": "secret",
	"redirect_uris": ["http://localhost"]
}}`

func TestNewClientFromCredentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   string
		token   string
		wantErr bool
	}{
		{"not a credentials file", `{"broken":true}`, "", true},
		{"desktop app with token", installedCreds, `{"access_token": "a", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`, false},
		{"desktop app with corrupt token", installedCreds, `{"access_token": `, true},
		{"desktop app without token", installedCreds, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			if tt.token != "" {
				if err := os.WriteFile(gcalendar.DefaultTokenPath, []byte(tt.token), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(tt.creds))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClientFromCredentialsJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClientFromCredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
		t.Error("expected error for invalid credentials file")
	}
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCreateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-123", "status": "confirmed"}`))
	})

	start := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Buy milk",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-123" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", event.StartTime, start)
	}
}

func TestCreateEventAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/event-123":
			w.WriteHeader(http.StatusNoContent)
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error": {"code": 410, "message": "Resource has been deleted"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"code": 500, "message": "backend"}}`))
		}
	})

	tests := []struct {
		name       string
		calendarID string
		eventID    string
		wantErr    bool
	}{
		{"default calendar", "", "event-123", false},
		{"already deleted", "primary", "gone", false},
		{"server error", "primary", "broken", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.DeleteEvent(context.Background(), tt.calendarID, tt.eventID)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeleteEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateEventLinksTask(t *testing.T) {
	var got struct {
		Start struct {
			TimeZone string `json:"timeZone"`
		} `json:"start"`
		ExtendedProperties struct {
			Private map[string]string `json:"private"`
		} `json:"extendedProperties"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/work/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id": "ev-1", "htmlLink": "https://calendar.google.com/ev-1", "extendedProperties": {"private": {"atrova_task_id": "task-9"}}}`))
	})

	start := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "work",
		TaskID:     "task-9",
		Summary:    "Dentist",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   "Local",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if event.TaskID != "task-9" || event.ID != "ev-1" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.ExtendedProperties.Private[gcalendar.TaskIDProperty] != "task-9" {
		t.Errorf("task id not sent: %+v", got.ExtendedProperties)
	}
	if got.Start.TimeZone != "" {
		t.Errorf("Local timezone should be omitted, got %q", got.Start.TimeZone)
	}
}
