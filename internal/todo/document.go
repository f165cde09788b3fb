package todo

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"smarttodo/internal/model"
)

// document is the full durable state: the ordered todo collection
// (most-recent-first) plus the id counter. It matches the on-disk JSON shape.
// Methods are not safe for concurrent use; the owning repo locks around them.
type document struct {
	Todos  []model.Todo `json:"todos"`
	NextID int64        `json:"next_id"`
}

func newDocument() document {
	return document{
		Todos:  []model.Todo{},
		NextID: 1,
	}
}

func (d *document) normalize() {
	if d.Todos == nil {
		d.Todos = []model.Todo{}
	}
	if d.NextID < 1 {
		d.NextID = 1
	}
	for i := range d.Todos {
		normalizeTodo(&d.Todos[i])
	}
}

func (d *document) index(id model.TodoID) int {
	for i := range d.Todos {
		if d.Todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *document) get(id model.TodoID) (model.Todo, error) {
	i := d.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	return d.Todos[i], nil
}

func (d *document) create(t model.Todo) (model.Todo, error) {
	if err := validateUpsert(t); err != nil {
		return model.Todo{}, err
	}

	t.ID = model.TodoID(strconv.FormatInt(d.NextID, 10))
	t.CreatedAt = time.Now().UTC()
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.StatusTodo
	}
	normalizeTodo(&t)

	// Newest first.
	d.Todos = append([]model.Todo{t}, d.Todos...)
	d.NextID++
	return t, nil
}

func (d *document) update(id model.TodoID, p Patch) (model.Todo, error) {
	i := d.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	t := d.Todos[i]
	if err := applyPatch(&t, p); err != nil {
		return model.Todo{}, err
	}
	d.Todos[i] = t
	return t, nil
}

func (d *document) toggleCompleted(id model.TodoID) (model.Todo, error) {
	i := d.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	d.Todos[i].Completed = !d.Todos[i].Completed
	return d.Todos[i], nil
}

func (d *document) setStatus(id model.TodoID, status string) (model.Todo, error) {
	if !validStatus(status) {
		return model.Todo{}, ErrInvalidStatus
	}
	i := d.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	d.Todos[i].Status = status
	return d.Todos[i], nil
}

func (d *document) addComment(id model.TodoID, author, text string) (model.Comment, model.Todo, error) {
	i := d.index(id)
	if i < 0 {
		return model.Comment{}, model.Todo{}, ErrNotFound
	}
	c := model.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	d.Todos[i].Comments = append(d.Todos[i].Comments, c)
	return c, d.Todos[i], nil
}

func (d *document) remove(id model.TodoID) (model.Todo, error) {
	i := d.index(id)
	if i < 0 {
		return model.Todo{}, ErrNotFound
	}
	t := d.Todos[i]
	d.Todos = append(d.Todos[:i], d.Todos[i+1:]...)
	return t, nil
}

func (d *document) clear() {
	d.Todos = []model.Todo{}
	d.NextID = 1
}

func (d *document) list(f ListFilter) []model.Todo {
	out := make([]model.Todo, 0, len(d.Todos))
	for _, t := range d.Todos {
		if matchesFilter(t, f) {
			out = append(out, t)
		}
	}
	return out
}
