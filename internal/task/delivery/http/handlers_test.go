package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"recurring-task-engine/internal/middleware"
	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
	taskHTTP "recurring-task-engine/internal/task/delivery/http"
	"recurring-task-engine/pkg/log"
	"recurring-task-engine/pkg/response"
)

type mockUseCase struct {
	lastScope  model.Scope
	lastCreate task.CreateInput
	lastCount  int

	interpretOut task.InterpretOutput
	createOut    model.Task
	detailOut    model.Task
	completeOut  task.CompleteOutput
	seriesOut    task.SeriesOutput
	occOut       task.OccurrencesOutput
	calendarOut  task.CalendarOutput
	err          error
}

func (m *mockUseCase) Interpret(ctx context.Context, sc model.Scope, in task.InterpretInput) (task.InterpretOutput, error) {
	m.lastScope = sc
	return m.interpretOut, m.err
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (model.Task, error) {
	m.lastScope = sc
	m.lastCreate = in
	return m.createOut, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return m.detailOut, m.err
}

func (m *mockUseCase) Complete(ctx context.Context, sc model.Scope, in task.CompleteInput) (task.CompleteOutput, error) {
	return m.completeOut, m.err
}

func (m *mockUseCase) Series(ctx context.Context, sc model.Scope, id string) (task.SeriesOutput, error) {
	return m.seriesOut, m.err
}

func (m *mockUseCase) Occurrences(ctx context.Context, sc model.Scope, in task.OccurrencesInput) (task.OccurrencesOutput, error) {
	m.lastCount = in.Count
	return m.occOut, m.err
}

func (m *mockUseCase) ExportCalendar(ctx context.Context, sc model.Scope, id string) (task.CalendarOutput, error) {
	return m.calendarOut, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func newServer(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(middleware.HeaderUserID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, map[string]any) {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v (body %s)", err, w.Body.String())
	}
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

func TestInterpret(t *testing.T) {
	d := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	rule, _ := recurrence.NewWeekly(1, time.Monday)
	uc := &mockUseCase{interpretOut: task.InterpretOutput{Date: &d, Recurrence: &rule, Label: rule.Label(), Matched: true}}
	r := newServer(uc)

	w := call(r, http.MethodPost, "/api/v1/tasks/interpret", `{"text":"every monday"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	_, data := decode(t, w)
	if data["date"] != "2024-05-06" || data["matched"] != true {
		t.Errorf("unexpected data: %v", data)
	}
	rec, _ := data["recurrence"].(map[string]any)
	if rec["frequency"] != "weekly" {
		t.Errorf("unexpected recurrence: %v", data["recurrence"])
	}
	if uc.lastScope.UserID != "alice" {
		t.Errorf("scope not passed, got %+v", uc.lastScope)
	}

	t.Run("unmatched renders nulls", func(t *testing.T) {
		uc.interpretOut = task.InterpretOutput{}
		w := call(r, http.MethodPost, "/api/v1/tasks/interpret", `{"text":"gibberish"}`)
		_, data := decode(t, w)
		if data["date"] != nil || data["recurrence"] != nil || data["matched"] != false {
			t.Errorf("unexpected data: %v", data)
		}
	})

	t.Run("bad reference date", func(t *testing.T) {
		w := call(r, http.MethodPost, "/api/v1/tasks/interpret", `{"text":"daily","reference_date":"05/01/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreate(t *testing.T) {
	due := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{createOut: model.Task{ID: "t1", Title: "Standup", DueDate: &due, Status: model.StatusTodo}}
	r := newServer(uc)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"missing title", `{"schedule":"every monday"}`, http.StatusBadRequest},
		{"bad frequency", `{"title":"x","recurrence":{"frequency":"hourly"}}`, http.StatusBadRequest},
		{"bad weekday", `{"title":"x","recurrence":{"frequency":"weekly","days_of_week":[7]}}`, http.StatusBadRequest},
		{"days on monthly rule", `{"title":"x","recurrence":{"frequency":"monthly","days_of_week":[1]}}`, http.StatusBadRequest},
		{"bad due date", `{"title":"x","due_date":"tomorrow"}`, http.StatusBadRequest},
		{"interval too large", `{"title":"x","recurrence":{"frequency":"daily","interval":1000}}`, http.StatusBadRequest},
		{"importance too high", `{"title":"x","importance":9}`, http.StatusBadRequest},
		{"schedule", `{"title":"Standup","schedule":"every monday"}`, http.StatusCreated},
		{"structured", `{"title":"Standup","recurrence":{"frequency":"weekly","interval":2,"days_of_week":[1,3],"end_date":"2024-06-30"}}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, http.MethodPost, "/api/v1/tasks", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}

	rec := uc.lastCreate.Recurrence
	if rec == nil || rec.Interval() != 2 || rec.Frequency() != recurrence.FrequencyWeekly {
		t.Fatalf("structured recurrence not converted: %+v", rec)
	}
	if end, ok := rec.EndDate(); !ok || end.Format(time.DateOnly) != "2024-06-30" {
		t.Errorf("end date not converted: %v", end)
	}
}

func TestCreate_DomainErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{task.ErrScheduleUnmatched, http.StatusBadRequest},
		{task.ErrScheduleConflict, http.StatusBadRequest},
		{recurrence.ErrInvalidInterval, http.StatusBadRequest},
		{fmt.Errorf("failed to create task: %w", context.DeadlineExceeded), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := newServer(&mockUseCase{err: tt.err})
			w := call(r, http.MethodPost, "/api/v1/tasks", `{"title":"x"}`)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantCode == http.StatusInternalServerError {
				resp, _ := decode(t, w)
				if strings.Contains(resp.Message, "deadline") {
					t.Errorf("internal error leaked: %s", resp.Message)
				}
			}
		})
	}
}

func TestComplete(t *testing.T) {
	due := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	completed := model.Task{ID: "t1", Status: model.StatusDone}

	t.Run("advanced", func(t *testing.T) {
		next := model.Task{ID: "t2", ParentTaskID: "t1", RecurrenceIndex: 1, DueDate: &due}
		r := newServer(&mockUseCase{completeOut: task.CompleteOutput{Completed: completed, NextTask: &next}})

		w := call(r, http.MethodPost, "/api/v1/tasks/t1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		_, data := decode(t, w)
		nt, _ := data["next_task"].(map[string]any)
		if nt["id"] != "t2" || nt["due_date"] != "2024-05-02" || nt["recurrence_index"] != float64(1) {
			t.Errorf("unexpected next task: %v", data["next_task"])
		}
	})

	t.Run("degraded is surfaced", func(t *testing.T) {
		next := model.Task{ID: "t2"}
		r := newServer(&mockUseCase{completeOut: task.CompleteOutput{Completed: completed, NextTask: &next, Degraded: true, DegradedReason: "no assignees"}})

		_, data := decode(t, call(r, http.MethodPost, "/api/v1/tasks/t1/complete", ""))
		if data["degraded"] != true || data["degraded_reason"] != "no assignees" {
			t.Errorf("degraded not surfaced: %v", data)
		}
	})

	t.Run("advance failure keeps completed task", func(t *testing.T) {
		r := newServer(&mockUseCase{
			completeOut: task.CompleteOutput{Completed: completed},
			err:         fmt.Errorf("%w: boom", task.ErrAdvanceFailed),
		})

		w := call(r, http.MethodPost, "/api/v1/tasks/t1/complete", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp, data := decode(t, w)
		if resp.Message != task.ErrAdvanceFailed.Error() {
			t.Errorf("unexpected message %q", resp.Message)
		}
		c, _ := data["completed"].(map[string]any)
		if c["id"] != "t1" || data["next_task"] != nil {
			t.Errorf("unexpected data: %v", data)
		}
	})

	t.Run("not found and already completed", func(t *testing.T) {
		for err, code := range map[error]int{task.ErrTaskNotFound: http.StatusNotFound, task.ErrAlreadyCompleted: http.StatusConflict} {
			r := newServer(&mockUseCase{err: err})
			if w := call(r, http.MethodPost, "/api/v1/tasks/t1/complete", ""); w.Code != code {
				t.Errorf("%v: expected %d, got %d", err, code, w.Code)
			}
		}
	})
}

func TestOccurrences(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{occOut: task.OccurrencesOutput{From: from, Dates: []time.Time{from.AddDate(0, 0, 1)}, Label: "Repeats every day"}}
	r := newServer(uc)

	w := call(r, http.MethodGet, "/api/v1/tasks/t1/occurrences?count=3", "")
	if w.Code != http.StatusOK || uc.lastCount != 3 {
		t.Fatalf("expected 200 and count 3, got %d / %d", w.Code, uc.lastCount)
	}
	_, data := decode(t, w)
	dates, _ := data["dates"].([]any)
	if len(dates) != 1 || dates[0] != "2024-05-02" {
		t.Errorf("unexpected dates: %v", data["dates"])
	}

	if w := call(r, http.MethodGet, "/api/v1/tasks/t1/occurrences?count=500", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for count over the limit, got %d", w.Code)
	}

	r = newServer(&mockUseCase{err: task.ErrNotRecurring})
	if w := call(r, http.MethodGet, "/api/v1/tasks/t1/occurrences", ""); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestSeriesAndDetail(t *testing.T) {
	uc := &mockUseCase{
		detailOut: model.Task{ID: "t1", Title: "Water plants"},
		seriesOut: task.SeriesOutput{RootID: "t1", Instances: []model.Task{{ID: "t1"}, {ID: "t2", ParentTaskID: "t1", RecurrenceIndex: 1}}},
	}
	r := newServer(uc)

	_, data := decode(t, call(r, http.MethodGet, "/api/v1/tasks/t1", ""))
	tk, _ := data["task"].(map[string]any)
	if tk["title"] != "Water plants" {
		t.Errorf("unexpected detail: %v", data)
	}

	_, data = decode(t, call(r, http.MethodGet, "/api/v1/tasks/t2/series", ""))
	instances, _ := data["instances"].([]any)
	if data["root_id"] != "t1" || len(instances) != 2 {
		t.Errorf("unexpected series: %v", data)
	}
}

func TestCalendar(t *testing.T) {
	uc := &mockUseCase{calendarOut: task.CalendarOutput{Filename: "task-t1.ics", Content: []byte("BEGIN:VCALENDAR\r\n")}}
	r := newServer(uc)

	w := call(r, http.MethodGet, "/api/v1/tasks/t1/calendar.ics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "task-t1.ics") {
		t.Errorf("missing filename")
	}
}

func TestDelete(t *testing.T) {
	if w := call(newServer(&mockUseCase{}), http.MethodDelete, "/api/v1/tasks/t1", ""); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := call(newServer(&mockUseCase{err: task.ErrTaskNotFound}), http.MethodDelete, "/api/v1/tasks/t1", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRequiresUser(t *testing.T) {
	r := newServer(&mockUseCase{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
