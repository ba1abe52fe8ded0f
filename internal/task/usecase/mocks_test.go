package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/task/repository"
	"recurring-task-engine/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory repository with failure switches.
type mockRepo struct {
	mu        sync.Mutex
	seq       int
	tasks     map[string]model.Task
	series    map[string]map[int]string // root -> index -> id
	assignees map[string][]string

	failGet          error
	failMarkComplete error
	failCreate       error
	failCopy         error
	// conflicts makes that many CreateTaskInstance calls lose a race: a
	// competing instance takes the requested index first.
	conflicts int

	markCompleteCalls int
	createInstanceOpt []repository.CreateTaskOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		tasks:     map[string]model.Task{},
		series:    map[string]map[int]string{},
		assignees: map[string][]string{},
	}
}

func (m *mockRepo) nextID() string {
	m.seq++
	return fmt.Sprintf("task-%d", m.seq)
}

func (m *mockRepo) put(t model.Task) {
	root := t.SeriesRootID()
	if m.series[root] == nil {
		m.series[root] = map[int]string{}
	}
	m.series[root][t.RecurrenceIndex] = t.ID
	m.assignees[t.ID] = append([]string(nil), t.AssigneeIDs...)
	t.AssigneeIDs = nil
	m.tasks[t.ID] = t
}

func fromOptions(id string, opt repository.CreateTaskOptions) model.Task {
	status := opt.Status
	if status == "" {
		status = model.StatusTodo
	}
	return model.Task{
		ID:              id,
		Title:           opt.Title,
		Description:     opt.Description,
		Effort:          opt.Effort,
		Importance:      opt.Importance,
		Tags:            opt.Tags,
		ProjectID:       opt.ProjectID,
		AssigneeIDs:     opt.AssigneeIDs,
		Status:          status,
		Progress:        opt.Progress,
		DueDate:         opt.DueDate,
		IsRecurring:     opt.IsRecurring,
		Recurrence:      opt.Recurrence,
		ParentTaskID:    opt.ParentTaskID,
		RecurrenceIndex: opt.RecurrenceIndex,
	}
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate != nil {
		return model.Task{}, m.failCreate
	}
	t := fromOptions(m.nextID(), opt)
	m.put(t)
	return t, nil
}

func (m *mockRepo) CreateTaskInstance(ctx context.Context, opt repository.CreateTaskOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createInstanceOpt = append(m.createInstanceOpt, opt)
	if m.failCreate != nil {
		return "", m.failCreate
	}
	if m.conflicts > 0 {
		m.conflicts--
		m.put(model.Task{ID: m.nextID(), Title: "competing", ParentTaskID: opt.ParentTaskID, RecurrenceIndex: opt.RecurrenceIndex})
		return "", repository.ErrIndexConflict
	}
	if _, taken := m.series[opt.ParentTaskID][opt.RecurrenceIndex]; taken {
		return "", repository.ErrIndexConflict
	}
	opt.AssigneeIDs = nil
	t := fromOptions(m.nextID(), opt)
	m.put(t)
	return t.ID, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return model.Task{}, m.failGet
	}
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	t.AssigneeIDs = append([]string(nil), m.assignees[id]...)
	return t, nil
}

func (m *mockRepo) GetInstancesBySeriesRoot(ctx context.Context, rootID string) ([]repository.SeriesInstance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []repository.SeriesInstance
	for idx, id := range m.series[rootID] {
		inst := repository.SeriesInstance{ID: id, RecurrenceIndex: idx}
		if id != rootID {
			inst.ParentTaskID = rootID
		}
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecurrenceIndex < out[j].RecurrenceIndex })
	return out, nil
}

func (m *mockRepo) CopyAssignees(ctx context.Context, srcTaskID, dstTaskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCopy != nil {
		return m.failCopy
	}
	m.assignees[dstTaskID] = append([]string(nil), m.assignees[srcTaskID]...)
	return nil
}

func (m *mockRepo) MarkComplete(ctx context.Context, taskID string, completedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markCompleteCalls++
	if m.failMarkComplete != nil {
		return m.failMarkComplete
	}
	t, ok := m.tasks[taskID]
	if !ok {
		return repository.ErrNotFound
	}
	if t.IsCompleted() {
		return repository.ErrAlreadyCompleted
	}
	t.Status = model.StatusDone
	t.Progress = 100
	t.CompletedAt = &completedAt
	m.tasks[taskID] = t
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(m.series[t.SeriesRootID()], t.RecurrenceIndex)
	delete(m.tasks, id)
	delete(m.assignees, id)
	return nil
}

type mockCalendar struct {
	calls []gcalendar.CreateRecurringEventRequest
	err   error
}

func (m *mockCalendar) CreateRecurringEvent(ctx context.Context, req gcalendar.CreateRecurringEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.example/evt-1"}, nil
}

var errDB = errors.New("db error")
