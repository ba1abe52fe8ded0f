package http

import (
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/pkg/response"
)

// --- Request DTOs ---

type recurrenceReq struct {
	Frequency  string `json:"frequency"    binding:"required,frequency"`
	Interval   int    `json:"interval"     binding:"omitempty,min=1,max=999"`
	DaysOfWeek []int  `json:"days_of_week" binding:"omitempty,dive,weekday"`
	DayOfMonth int    `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	EndDate    string `json:"end_date"     binding:"omitempty,isodate"`
}

func (r recurrenceReq) toRule(loc *time.Location) (recurrence.Rule, error) {
	return recurrence.Spec{
		Frequency:  recurrence.Frequency(r.Frequency),
		Interval:   r.Interval,
		DaysOfWeek: r.DaysOfWeek,
		DayOfMonth: r.DayOfMonth,
		EndDate:    r.EndDate,
	}.Rule(loc)
}

// ---

type interpretReq struct {
	Text          string `json:"text"           binding:"required,max=500"`
	ReferenceDate string `json:"reference_date" binding:"omitempty,isodate"`
}

func (r interpretReq) toInput() task.InterpretInput {
	return task.InterpretInput{
		Text:          r.Text,
		ReferenceDate: parseDate(r.ReferenceDate),
	}
}

// ---

type createReq struct {
	Title       string         `json:"title"        binding:"required,min=1,max=255"`
	Description string         `json:"description"  binding:"max=5000"`
	Effort      int            `json:"effort"       binding:"min=0"`
	Importance  int            `json:"importance"   binding:"min=0,max=5"`
	Tags        []string       `json:"tags"         binding:"omitempty,max=20,dive,min=1,max=50"`
	ProjectID   string         `json:"project_id"`
	AssigneeIDs []string       `json:"assignee_ids" binding:"omitempty,dive,min=1"`
	DueDate     string         `json:"due_date"     binding:"omitempty,isodate"`
	Recurrence  *recurrenceReq `json:"recurrence"`
	Schedule    string         `json:"schedule"     binding:"max=500"`
}

func (r createReq) toInput() (task.CreateInput, error) {
	in := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Effort:      r.Effort,
		Importance:  r.Importance,
		Tags:        r.Tags,
		ProjectID:   r.ProjectID,
		AssigneeIDs: r.AssigneeIDs,
		DueDate:     parseDate(r.DueDate),
		Schedule:    r.Schedule,
	}
	if r.Recurrence != nil {
		// The usecase re-anchors the end date in its own location.
		rule, err := r.Recurrence.toRule(time.UTC)
		if err != nil {
			return task.CreateInput{}, err
		}
		in.Recurrence = &rule
	}
	return in, nil
}

// ---

type occurrencesReq struct {
	Count int `form:"count" binding:"omitempty,min=1,max=50"`
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &d
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Effort          int                `json:"effort"`
	Importance      int                `json:"importance"`
	Tags            []string           `json:"tags,omitempty"`
	ProjectID       string             `json:"project_id,omitempty"`
	AssigneeIDs     []string           `json:"assignee_ids,omitempty"`
	Status          string             `json:"status"`
	Progress        int                `json:"progress"`
	DueDate         *response.Date     `json:"due_date,omitempty"`
	CompletedAt     *response.DateTime `json:"completed_at,omitempty"`
	IsRecurring     bool               `json:"is_recurring"`
	Recurrence      *recurrence.Rule   `json:"recurrence,omitempty"`
	RecurrenceLabel string             `json:"recurrence_label,omitempty"`
	ParentTaskID    string             `json:"parent_task_id,omitempty"`
	RecurrenceIndex int                `json:"recurrence_index"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Effort:          t.Effort,
		Importance:      t.Importance,
		Tags:            t.Tags,
		ProjectID:       t.ProjectID,
		AssigneeIDs:     t.AssigneeIDs,
		Status:          string(t.Status),
		Progress:        t.Progress,
		DueDate:         response.NewDatePtr(t.DueDate),
		CompletedAt:     response.NewDateTimePtr(t.CompletedAt),
		IsRecurring:     t.IsRecurring,
		Recurrence:      t.Recurrence,
		ParentTaskID:    t.ParentTaskID,
		RecurrenceIndex: t.RecurrenceIndex,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
	if t.Recurrence != nil {
		resp.RecurrenceLabel = t.Recurrence.Label()
	}
	return resp
}

type interpretResp struct {
	Date       *response.Date   `json:"date"`
	Recurrence *recurrence.Rule `json:"recurrence"`
	Label      string           `json:"label"`
	Matched    bool             `json:"matched"`
}

func (h *handler) newInterpretResp(out task.InterpretOutput) interpretResp {
	return interpretResp{
		Date:       response.NewDatePtr(out.Date),
		Recurrence: out.Recurrence,
		Label:      out.Label,
		Matched:    out.Matched,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type completeResp struct {
	Completed      taskResp  `json:"completed"`
	NextTask       *taskResp `json:"next_task"`
	SeriesEnded    bool      `json:"series_ended"`
	Degraded       bool      `json:"degraded,omitempty"`
	DegradedReason string    `json:"degraded_reason,omitempty"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	resp := completeResp{
		Completed:      newTaskResp(out.Completed),
		SeriesEnded:    out.SeriesEnded,
		Degraded:       out.Degraded,
		DegradedReason: out.DegradedReason,
	}
	if out.NextTask != nil {
		next := newTaskResp(*out.NextTask)
		resp.NextTask = &next
	}
	return resp
}

type seriesResp struct {
	RootID    string     `json:"root_id"`
	Instances []taskResp `json:"instances"`
}

func (h *handler) newSeriesResp(out task.SeriesOutput) seriesResp {
	instances := make([]taskResp, len(out.Instances))
	for i, t := range out.Instances {
		instances[i] = newTaskResp(t)
	}
	return seriesResp{RootID: out.RootID, Instances: instances}
}

type occurrencesResp struct {
	From        response.Date   `json:"from"`
	Dates       []response.Date `json:"dates"`
	Label       string          `json:"label"`
	SeriesEnded bool            `json:"series_ended"`
}

func (h *handler) newOccurrencesResp(out task.OccurrencesOutput) occurrencesResp {
	dates := make([]response.Date, len(out.Dates))
	for i, d := range out.Dates {
		dates[i] = response.Date(d)
	}
	return occurrencesResp{
		From:        response.Date(out.From),
		Dates:       dates,
		Label:       out.Label,
		SeriesEnded: out.SeriesEnded,
	}
}
