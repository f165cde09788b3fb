package todo

import (
	"errors"
	"strings"

	"smarttodo/internal/model"
)

var (
	ErrNotFound      = errors.New("todo not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrMissingField  = errors.New("title and description are required")
)

// Patch represents a partial update.
// nil pointer => "no change"
// set pointer, including to a zero value => overwrite
// empty string for the optional scalar fields (DueDate/Assignee/Category) => clear
type Patch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Completed   *bool            `json:"completed,omitempty"`
	Priority    *string          `json:"priority,omitempty"`
	Status      *string          `json:"status,omitempty"`
	DueDate     *string          `json:"dueDate,omitempty"`
	Assignee    *string          `json:"assignee,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Subtasks    *[]model.Subtask `json:"subtasks,omitempty"`

	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	ActualHours    *float64 `json:"actualHours,omitempty"`
}

type ListFilter struct {
	// Completed: nil = don't care.
	Completed *bool

	// Status/Priority/Assignee: "" = don't care, otherwise exact match.
	// All supplied filters must hold (AND).
	Status   string
	Priority string
	Assignee string
}

type Repo interface {
	List(filter ListFilter) ([]model.Todo, error)
	Get(id model.TodoID) (model.Todo, error)
	Create(t model.Todo) (model.Todo, error)
	Update(id model.TodoID, patch Patch) (model.Todo, error)
	ToggleCompleted(id model.TodoID) (model.Todo, error)
	SetStatus(id model.TodoID, status string) (model.Todo, error)
	AddComment(id model.TodoID, author, text string) (model.Comment, model.Todo, error)
	Delete(id model.TodoID) (model.Todo, error)
	Clear() error
	Stats() (Stats, error)
}

func validStatus(s string) bool {
	for _, v := range model.Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func normalizeTodo(t *model.Todo) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []model.Subtask{}
	}
	if t.Comments == nil {
		t.Comments = []model.Comment{}
	}
}

func applyPatch(t *model.Todo, p Patch) error {
	// Validate before touching anything so a rejected patch leaves the
	// record untouched.
	if p.Status != nil && !validStatus(*p.Status) {
		return ErrInvalidStatus
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}

	// pointer string fields with "empty clears" semantics
	if p.DueDate != nil {
		if *p.DueDate == "" {
			t.DueDate = nil
		} else {
			t.DueDate = p.DueDate
		}
	}
	if p.Assignee != nil {
		if *p.Assignee == "" {
			t.Assignee = nil
		} else {
			t.Assignee = p.Assignee
		}
	}
	if p.Category != nil {
		if *p.Category == "" {
			t.Category = nil
		} else {
			t.Category = p.Category
		}
	}

	if p.Tags != nil {
		if *p.Tags == nil {
			t.Tags = []string{}
		} else {
			t.Tags = *p.Tags
		}
	}
	if p.Subtasks != nil {
		if *p.Subtasks == nil {
			t.Subtasks = []model.Subtask{}
		} else {
			t.Subtasks = *p.Subtasks
		}
	}

	if p.EstimatedHours != nil {
		t.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHours != nil {
		t.ActualHours = p.ActualHours
	}

	return nil
}

func matchesFilter(t model.Todo, f ListFilter) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Assignee != "" {
		if t.Assignee == nil || *t.Assignee != f.Assignee {
			return false
		}
	}
	return true
}

func validateUpsert(t model.Todo) error {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Description) == "" {
		return ErrMissingField
	}
	return nil
}
