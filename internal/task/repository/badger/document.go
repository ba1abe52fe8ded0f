package badger

import (
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
)

const dateLayout = "2006-01-02"

// taskDocument is the stored form of a task. Assignees live under their own keys.
type taskDocument struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Effort          int              `json:"effort,omitempty"`
	Importance      int              `json:"importance,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	ProjectID       string           `json:"project_id,omitempty"`
	Status          model.TaskStatus `json:"status"`
	Progress        int              `json:"progress"`
	DueDate         string           `json:"due_date,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	IsRecurring     bool             `json:"is_recurring"`
	Recurrence      *recurrence.Spec `json:"recurrence,omitempty"`
	ParentTaskID    string           `json:"parent_task_id,omitempty"`
	RecurrenceIndex int              `json:"recurrence_index"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (r *implRepository) toDocument(t model.Task) taskDocument {
	doc := taskDocument{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Effort:          t.Effort,
		Importance:      t.Importance,
		Tags:            t.Tags,
		ProjectID:       t.ProjectID,
		Status:          t.Status,
		Progress:        t.Progress,
		CompletedAt:     t.CompletedAt,
		IsRecurring:     t.IsRecurring,
		ParentTaskID:    t.ParentTaskID,
		RecurrenceIndex: t.RecurrenceIndex,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.DueDate != nil {
		doc.DueDate = t.DueDate.Format(dateLayout)
	}
	if t.Recurrence != nil && !t.Recurrence.IsZero() {
		spec := t.Recurrence.Spec()
		doc.Recurrence = &spec
	}
	return doc
}

func (r *implRepository) toTask(doc taskDocument) (model.Task, error) {
	t := model.Task{
		ID:              doc.ID,
		Title:           doc.Title,
		Description:     doc.Description,
		Effort:          doc.Effort,
		Importance:      doc.Importance,
		Tags:            doc.Tags,
		ProjectID:       doc.ProjectID,
		Status:          doc.Status,
		Progress:        doc.Progress,
		CompletedAt:     doc.CompletedAt,
		IsRecurring:     doc.IsRecurring,
		ParentTaskID:    doc.ParentTaskID,
		RecurrenceIndex: doc.RecurrenceIndex,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
	if doc.DueDate != "" {
		due, err := time.ParseInLocation(dateLayout, doc.DueDate, r.loc)
		if err != nil {
			return model.Task{}, err
		}
		t.DueDate = &due
	}
	if doc.Recurrence != nil {
		rule, err := doc.Recurrence.Rule(r.loc)
		if err != nil {
			return model.Task{}, err
		}
		t.Recurrence = &rule
	}
	return t, nil
}
