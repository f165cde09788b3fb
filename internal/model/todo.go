package model

import (
	"time"
)

type TodoID string

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusDone       = "done"
)

// Statuses is the closed set of recognized workflow states, in display order.
var Statuses = []string{StatusTodo, StatusInProgress, StatusReview, StatusDone}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Todo struct {
	ID          TodoID    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	DueDate  *string `json:"dueDate,omitempty"`
	Assignee *string `json:"assignee,omitempty"`
	Category *string `json:"category,omitempty"`

	// Always present in JSON; absence is an empty slice, never null.
	Tags     []string  `json:"tags"`
	Subtasks []Subtask `json:"subtasks"`
	Comments []Comment `json:"comments"`

	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	ActualHours    *float64 `json:"actualHours,omitempty"`
}

// TodoUpsert is the creation payload. ID and CreatedAt are server-assigned
// and deliberately absent.
type TodoUpsert struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Subtasks    []Subtask `json:"subtasks,omitempty"`

	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	ActualHours    *float64 `json:"actualHours,omitempty"`
}
