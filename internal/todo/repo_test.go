package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodo/internal/model"
)

func mustCreate(t *testing.T, r Repo, todo model.Todo) model.Todo {
	t.Helper()
	created, err := r.Create(todo)
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	r := NewMemoryRepo()

	created := mustCreate(t, r, model.Todo{Title: "Write monthly report", Description: "for the finance team"})

	assert.Equal(t, model.TodoID("1"), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, model.PriorityMedium, created.Priority)
	assert.Equal(t, model.StatusTodo, created.Status)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, []model.Subtask{}, created.Subtasks)
	assert.Equal(t, []model.Comment{}, created.Comments)

	got, err := r.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_RequiresTitleAndDescription(t *testing.T) {
	r := NewMemoryRepo()

	_, err := r.Create(model.Todo{Title: "only a title"})
	assert.Equal(t, ErrMissingField, err)

	_, err = r.Create(model.Todo{Description: "only a description"})
	assert.Equal(t, ErrMissingField, err)

	stats, err := r.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestCreate_IncrementsCounter(t *testing.T) {
	r := NewMemoryRepo()

	t1 := mustCreate(t, r, model.Todo{Title: "a", Description: "a"})
	t2 := mustCreate(t, r, model.Todo{Title: "b", Description: "b"})
	t3 := mustCreate(t, r, model.Todo{Title: "c", Description: "c"})

	assert.Equal(t, model.TodoID("1"), t1.ID)
	assert.Equal(t, model.TodoID("2"), t2.ID)
	assert.Equal(t, model.TodoID("3"), t3.ID)
}

func TestList_NewestFirst(t *testing.T) {
	r := NewMemoryRepo()
	mustCreate(t, r, model.Todo{Title: "first", Description: "x"})
	mustCreate(t, r, model.Todo{Title: "second", Description: "x"})
	mustCreate(t, r, model.Todo{Title: "third", Description: "x"})

	ts, err := r.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, ts, 3)
	assert.Equal(t, "third", ts[0].Title)
	assert.Equal(t, "second", ts[1].Title)
	assert.Equal(t, "first", ts[2].Title)
}

func TestList_FiltersAreANDed(t *testing.T) {
	r := NewMemoryRepo()
	mustCreate(t, r, model.Todo{Title: "a", Description: "x", Priority: model.PriorityHigh, Status: model.StatusDone})
	mustCreate(t, r, model.Todo{Title: "b", Description: "x", Priority: model.PriorityHigh, Status: model.StatusTodo})
	mustCreate(t, r, model.Todo{Title: "c", Description: "x", Priority: model.PriorityLow, Status: model.StatusDone})
	mustCreate(t, r, model.Todo{Title: "d", Description: "x", Priority: model.PriorityHigh, Status: model.StatusDone, Assignee: strPtr("ada")})

	ts, err := r.List(ListFilter{Status: model.StatusDone, Priority: model.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, ts, 2)
	for _, todo := range ts {
		assert.Equal(t, model.StatusDone, todo.Status)
		assert.Equal(t, model.PriorityHigh, todo.Priority)
	}

	ts, err = r.List(ListFilter{Status: model.StatusDone, Priority: model.PriorityHigh, Assignee: "ada"})
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "d", ts[0].Title)
}

func TestList_CompletedFilter(t *testing.T) {
	r := NewMemoryRepo()
	done := mustCreate(t, r, model.Todo{Title: "done", Description: "x"})
	mustCreate(t, r, model.Todo{Title: "open", Description: "x"})
	_, err := r.ToggleCompleted(done.ID)
	require.NoError(t, err)

	ts, err := r.List(ListFilter{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "done", ts[0].Title)

	ts, err = r.List(ListFilter{Completed: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, "open", ts[0].Title)
}

func TestUpdate_OmittedFieldsUnchanged(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{
		Title:       "original",
		Description: "keep me",
		Priority:    model.PriorityHigh,
		Tags:        []string{"work"},
	})

	updated, err := r.Update(created.ID, Patch{Title: strPtr("renamed")})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, []string{"work"}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdate_ExplicitFalseOverwrites(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d", Completed: true})

	updated, err := r.Update(created.ID, Patch{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)

	updated, err = r.Update(created.ID, Patch{Title: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Title)
}

func TestUpdate_InvalidStatusRejectedWithoutMutation(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})

	_, err := r.Update(created.ID, Patch{Status: strPtr("bogus"), Title: strPtr("should not apply")})
	assert.Equal(t, ErrInvalidStatus, err)

	got, err := r.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTodo, got.Status)
	assert.Equal(t, "t", got.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewMemoryRepo()
	_, err := r.Update("42", Patch{Title: strPtr("x")})
	assert.Equal(t, ErrNotFound, err)
}

func TestUpdate_EmptyStringClearsOptionalScalars(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{
		Title:       "t",
		Description: "d",
		DueDate:     strPtr("2026-09-15"),
		Assignee:    strPtr("ada"),
	})

	updated, err := r.Update(created.ID, Patch{DueDate: strPtr(""), Assignee: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.Assignee)
}

func TestToggleCompleted(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})

	updated, err := r.ToggleCompleted(created.ID)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	updated, err = r.ToggleCompleted(created.ID)
	require.NoError(t, err)
	assert.False(t, updated.Completed)

	_, err = r.ToggleCompleted("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestSetStatus(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})

	updated, err := r.SetStatus(created.ID, model.StatusReview)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReview, updated.Status)

	_, err = r.SetStatus(created.ID, "bogus")
	assert.Equal(t, ErrInvalidStatus, err)

	got, err := r.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReview, got.Status)

	_, err = r.SetStatus("missing", model.StatusDone)
	assert.Equal(t, ErrNotFound, err)
}

func TestAddComment(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})

	c1, updated, err := r.AddComment(created.ID, "ada", "first")
	require.NoError(t, err)
	assert.NotEmpty(t, c1.ID)
	assert.False(t, c1.Timestamp.IsZero())
	require.Len(t, updated.Comments, 1)

	c2, updated, err := r.AddComment(created.ID, "bob", "second")
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "first", updated.Comments[0].Text)
	assert.Equal(t, "second", updated.Comments[1].Text)

	_, _, err = r.AddComment("missing", "ada", "x")
	assert.Equal(t, ErrNotFound, err)
}

func TestDelete(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})

	_, err := r.Delete("missing")
	assert.Equal(t, ErrNotFound, err)

	deleted, err := r.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	ts, err := r.List(ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, ts)

	stats, err := r.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)

	_, err = r.Get(created.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestDelete_DoesNotReuseIDs(t *testing.T) {
	r := NewMemoryRepo()
	first := mustCreate(t, r, model.Todo{Title: "t", Description: "d"})
	_, err := r.Delete(first.ID)
	require.NoError(t, err)

	second := mustCreate(t, r, model.Todo{Title: "t2", Description: "d2"})
	assert.Equal(t, model.TodoID("2"), second.ID)
}

func TestClear_ResetsCounter(t *testing.T) {
	r := NewMemoryRepo()
	mustCreate(t, r, model.Todo{Title: "a", Description: "x"})
	mustCreate(t, r, model.Todo{Title: "b", Description: "x"})

	require.NoError(t, r.Clear())

	ts, err := r.List(ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, ts)

	created := mustCreate(t, r, model.Todo{Title: "fresh", Description: "x"})
	assert.Equal(t, model.TodoID("1"), created.ID)
}

func TestStats_Aggregates(t *testing.T) {
	r := NewMemoryRepo()
	done := mustCreate(t, r, model.Todo{Title: "a", Description: "x", Priority: model.PriorityHigh, Status: model.StatusDone})
	mustCreate(t, r, model.Todo{Title: "b", Description: "x", Priority: model.PriorityUrgent, Status: model.StatusInProgress})
	mustCreate(t, r, model.Todo{Title: "c", Description: "x", Priority: model.PriorityLow, Status: model.StatusReview})
	mustCreate(t, r, model.Todo{Title: "d", Description: "x"})
	_, err := r.ToggleCompleted(done.ID)
	require.NoError(t, err)

	stats, err := r.Stats()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.HighPriority)
	assert.Equal(t, map[string]int{
		model.StatusTodo:       1,
		model.StatusInProgress: 1,
		model.StatusReview:     1,
		model.StatusDone:       1,
	}, stats.StatusCounts)
}

func TestStats_UnrecognizedStatusNotReported(t *testing.T) {
	r := NewMemoryRepo()
	created := mustCreate(t, r, model.Todo{Title: "a", Description: "x", Status: "someday"})
	require.Equal(t, "someday", created.Status)

	stats, err := r.Stats()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total)
	assert.NotContains(t, stats.StatusCounts, "someday")
	assert.Len(t, stats.StatusCounts, 4)
}
