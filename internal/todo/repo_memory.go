package todo

import (
	"sync"

	"smarttodo/internal/model"
)

// MemoryRepo keeps the collection purely in memory. Used by tests and as the
// store when no data directory is configured.
type MemoryRepo struct {
	mu  sync.RWMutex
	doc document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{doc: newDocument()}
}

func (r *MemoryRepo) List(filter ListFilter) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.list(filter), nil
}

func (r *MemoryRepo) Get(id model.TodoID) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.get(id)
}

func (r *MemoryRepo) Create(t model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.create(t)
}

func (r *MemoryRepo) Update(id model.TodoID, patch Patch) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.update(id, patch)
}

func (r *MemoryRepo) ToggleCompleted(id model.TodoID) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.toggleCompleted(id)
}

func (r *MemoryRepo) SetStatus(id model.TodoID, status string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.setStatus(id, status)
}

func (r *MemoryRepo) AddComment(id model.TodoID, author, text string) (model.Comment, model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.addComment(id, author, text)
}

func (r *MemoryRepo) Delete(id model.TodoID) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.remove(id)
}

func (r *MemoryRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.clear()
	return nil
}

func (r *MemoryRepo) Stats() (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return computeStats(r.doc.Todos), nil
}
