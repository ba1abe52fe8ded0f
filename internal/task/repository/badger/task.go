package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := r.buildTask(opt)

	err := r.db.WithTxn(ctx, func(txn *badgerdb.Txn) error {
		if err := r.putTask(txn, t); err != nil {
			return err
		}
		if err := txn.Set(seriesKey(t.SeriesRootID(), t.RecurrenceIndex), []byte(t.ID)); err != nil {
			return err
		}
		for _, userID := range t.AssigneeIDs {
			if err := txn.Set(assigneeKey(t.ID, userID), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.CreateTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) CreateTaskInstance(ctx context.Context, opt repository.CreateTaskOptions) (string, error) {
	if opt.ParentTaskID == "" {
		return "", fmt.Errorf("series instance requires a parent task id")
	}
	opt.AssigneeIDs = nil
	t := r.buildTask(opt)
	key := seriesKey(opt.ParentTaskID, opt.RecurrenceIndex)

	err := r.db.WithTxn(ctx, func(txn *badgerdb.Txn) error {
		// The read puts the key in the conflict set of this transaction.
		if _, err := txn.Get(key); err == nil {
			return repository.ErrIndexConflict
		} else if !errors.Is(err, badgerdb.ErrKeyNotFound) {
			return err
		}
		if err := r.putTask(txn, t); err != nil {
			return err
		}
		return txn.Set(key, []byte(t.ID))
	})
	if errors.Is(err, badgerdb.ErrConflict) {
		err = repository.ErrIndexConflict
	}
	if err != nil {
		if !errors.Is(err, repository.ErrIndexConflict) {
			r.l.Errorf(ctx, "task.repository.badger.CreateTaskInstance: %v", err)
		}
		return "", err
	}
	return t.ID, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := r.db.WithReadTxn(ctx, func(txn *badgerdb.Txn) error {
		doc, err := getDocument(txn, id)
		if err != nil {
			return err
		}
		if t, err = r.toTask(doc); err != nil {
			return err
		}
		t.AssigneeIDs, err = listAssignees(txn, id)
		return err
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.GetTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) GetInstancesBySeriesRoot(ctx context.Context, rootID string) ([]repository.SeriesInstance, error) {
	var instances []repository.SeriesInstance
	err := r.db.WithReadTxn(ctx, func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = seriesPrefix(rootID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			index, err := parseSeriesIndex(item.Key())
			if err != nil {
				return err
			}
			id, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			inst := repository.SeriesInstance{ID: string(id), RecurrenceIndex: index}
			if inst.ID != rootID {
				inst.ParentTaskID = rootID
			}
			instances = append(instances, inst)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.GetInstancesBySeriesRoot: %v", err)
		return nil, err
	}
	return instances, nil
}

func (r *implRepository) CopyAssignees(ctx context.Context, srcTaskID, dstTaskID string) error {
	err := r.db.WithTxn(ctx, func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(taskKey(dstTaskID)); err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		users, err := listAssignees(txn, srcTaskID)
		if err != nil {
			return err
		}
		for _, userID := range users {
			if err := txn.Set(assigneeKey(dstTaskID, userID), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.CopyAssignees: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) MarkComplete(ctx context.Context, taskID string, completedAt time.Time) error {
	err := r.db.WithTxn(ctx, func(txn *badgerdb.Txn) error {
		doc, err := getDocument(txn, taskID)
		if err != nil {
			return err
		}
		t, err := r.toTask(doc)
		if err != nil {
			return err
		}
		if t.IsCompleted() {
			return repository.ErrAlreadyCompleted
		}
		t.Status = model.StatusDone
		t.Progress = 100
		t.CompletedAt = &completedAt
		t.UpdatedAt = r.now()
		return r.putTask(txn, t)
	})
	if errors.Is(err, repository.ErrAlreadyCompleted) {
		r.l.Warnf(ctx, "task.repository.badger.MarkComplete: task=%s: %v", taskID, err)
		return err
	}
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.MarkComplete: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	err := r.db.WithTxn(ctx, func(txn *badgerdb.Txn) error {
		doc, err := getDocument(txn, id)
		if err != nil {
			return err
		}
		root := doc.ParentTaskID
		if root == "" {
			root = doc.ID
		}
		users, err := listAssignees(txn, id)
		if err != nil {
			return err
		}
		for _, userID := range users {
			if err := txn.Delete(assigneeKey(id, userID)); err != nil {
				return err
			}
		}
		if err := txn.Delete(seriesKey(root, doc.RecurrenceIndex)); err != nil {
			return err
		}
		return txn.Delete(taskKey(id))
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.badger.DeleteTask: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) buildTask(opt repository.CreateTaskOptions) model.Task {
	now := r.now()
	status := opt.Status
	if status == "" {
		status = model.StatusTodo
	}
	return model.Task{
		ID:              uuid.NewString(),
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
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *implRepository) putTask(txn *badgerdb.Txn, t model.Task) error {
	b, err := json.Marshal(r.toDocument(t))
	if err != nil {
		return err
	}
	return txn.Set(taskKey(t.ID), b)
}

func getDocument(txn *badgerdb.Txn, id string) (taskDocument, error) {
	item, err := txn.Get(taskKey(id))
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return taskDocument{}, repository.ErrNotFound
	}
	if err != nil {
		return taskDocument{}, err
	}
	var doc taskDocument
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	})
	return doc, err
}

func listAssignees(txn *badgerdb.Txn, taskID string) ([]string, error) {
	prefix := assigneePrefix(taskID)
	opts := badgerdb.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var users []string
	for it.Rewind(); it.Valid(); it.Next() {
		users = append(users, string(it.Item().Key()[len(prefix):]))
	}
	return users, nil
}
