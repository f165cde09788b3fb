package todo

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"smarttodo/internal/model"
)

// FileRepo is a persistent todo repository backed by a single JSON document
// ({"todos": [...], "next_id": N}). Every successful mutation rewrites the
// file before returning. A failed write is logged and the in-memory mutation
// stands; the caller still sees success.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	doc    document
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, "todos.json"),
		logger: logger,
		doc:    newDocument(),
	}
	r.load()
	return r, nil
}

// load reads the document from disk. A missing or unreadable file is not an
// error: the store starts empty with the counter at 1.
func (r *FileRepo) load() {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Printf("[storage] read %s: %v (starting empty)", r.path, err)
		}
		return
	}
	var loaded document
	if err := json.Unmarshal(b, &loaded); err != nil {
		r.logger.Printf("[storage] parse %s: %v (starting empty)", r.path, err)
		return
	}
	loaded.normalize()
	r.doc = loaded
}

// saveLocked flushes the full document. Write failures are reported through
// the logger only; the in-memory state is already mutated and is not rolled
// back.
func (r *FileRepo) saveLocked() {
	b, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		r.logger.Printf("[storage] marshal todos: %v", err)
		return
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		r.logger.Printf("[storage] write %s: %v", r.path, err)
	}
}

func (r *FileRepo) List(filter ListFilter) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.list(filter), nil
}

func (r *FileRepo) Get(id model.TodoID) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.get(id)
}

func (r *FileRepo) Create(t model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created, err := r.doc.create(t)
	if err != nil {
		return model.Todo{}, err
	}
	r.saveLocked()
	return created, nil
}

func (r *FileRepo) Update(id model.TodoID, patch Patch) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.doc.update(id, patch)
	if err != nil {
		return model.Todo{}, err
	}
	r.saveLocked()
	return t, nil
}

func (r *FileRepo) ToggleCompleted(id model.TodoID) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.doc.toggleCompleted(id)
	if err != nil {
		return model.Todo{}, err
	}
	r.saveLocked()
	return t, nil
}

func (r *FileRepo) SetStatus(id model.TodoID, status string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.doc.setStatus(id, status)
	if err != nil {
		return model.Todo{}, err
	}
	r.saveLocked()
	return t, nil
}

func (r *FileRepo) AddComment(id model.TodoID, author, text string) (model.Comment, model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, t, err := r.doc.addComment(id, author, text)
	if err != nil {
		return model.Comment{}, model.Todo{}, err
	}
	r.saveLocked()
	return c, t, nil
}

func (r *FileRepo) Delete(id model.TodoID) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.doc.remove(id)
	if err != nil {
		return model.Todo{}, err
	}
	r.saveLocked()
	return t, nil
}

func (r *FileRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.clear()
	r.saveLocked()
	return nil
}

func (r *FileRepo) Stats() (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return computeStats(r.doc.Todos), nil
}
