package todo

import (
	"encoding/json"
	"net/http"
	"strings"

	"smarttodo/internal/model"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func parseBoolPtr(s string) *bool {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "1", "true", "yes":
		b := true
		return &b
	case "0", "false", "no":
		b := false
		return &b
	default:
		return nil
	}
}

// /api/todos  (collection)
func (h *Handler) TodosRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := ListFilter{
			Completed: parseBoolPtr(q.Get("completed")),
			Status:    q.Get("status"),
			Priority:  q.Get("priority"),
			Assignee:  q.Get("assignee"),
		}
		ts, err := h.repo.List(filter)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{
			"todos": ts,
			"count": len(ts),
		})
		return

	case http.MethodPost:
		var in model.TodoUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		t, err := h.repo.Create(model.Todo{
			Title:       in.Title,
			Description: in.Description,
			Completed:   in.Completed,
			Priority:    in.Priority,
			Status:      in.Status,
			DueDate:     in.DueDate,
			Assignee:    in.Assignee,
			Category:    in.Category,
			Tags:        in.Tags,
			Subtasks:    in.Subtasks,

			EstimatedHours: in.EstimatedHours,
			ActualHours:    in.ActualHours,
		})
		if err != nil {
			if err == ErrMissingField {
				writeErr(w, 400, err.Error())
				return
			}
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 201, map[string]any{
			"message": "Todo created!",
			"todo":    t,
		})
		return

	case http.MethodDelete:
		if err := h.repo.Clear(); err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"message": "All todos deleted!"})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/todos/{id} and its subresources
func (h *Handler) TodosSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/todos/")
	tail = strings.Trim(tail, "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}

	parts := strings.Split(tail, "/")
	id := model.TodoID(parts[0])

	// /api/todos/{id}
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			t, err := h.repo.Get(id)
			if err == ErrNotFound {
				writeErr(w, 404, "Todo not found")
				return
			}
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			writeJSON(w, 200, t)
			return

		case http.MethodPut:
			var p Patch
			if err := decodeJSON(r, &p); err != nil {
				writeErr(w, 400, "bad json")
				return
			}
			t, err := h.repo.Update(id, p)
			if err == ErrInvalidStatus {
				writeErr(w, 400, statusHint())
				return
			}
			if err == ErrNotFound {
				writeErr(w, 404, "Todo not found")
				return
			}
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			writeJSON(w, 200, map[string]any{
				"message": "Todo updated!",
				"todo":    t,
			})
			return

		case http.MethodDelete:
			t, err := h.repo.Delete(id)
			if err == ErrNotFound {
				writeErr(w, 404, "Todo not found")
				return
			}
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			writeJSON(w, 200, map[string]any{
				"message": "Todo deleted!",
				"todo":    t,
			})
			return

		default:
			writeErr(w, 405, "method not allowed")
			return
		}
	}

	// /api/todos/{id}/toggle
	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPatch {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, err := h.repo.ToggleCompleted(id)
		if err == ErrNotFound {
			writeErr(w, 404, "Todo not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{
			"message": "Status changed!",
			"todo":    t,
		})
		return
	}

	// /api/todos/{id}/status
	if len(parts) == 2 && parts[1] == "status" {
		if r.Method != http.MethodPatch {
			writeErr(w, 405, "method not allowed")
			return
		}
		var in struct {
			Status string `json:"status"`
		}
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		t, err := h.repo.SetStatus(id, in.Status)
		if err == ErrInvalidStatus {
			writeErr(w, 400, statusHint())
			return
		}
		if err == ErrNotFound {
			writeErr(w, 404, "Todo not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{
			"message": "Status updated!",
			"todo":    t,
		})
		return
	}

	// /api/todos/{id}/comments
	if len(parts) == 2 && parts[1] == "comments" {
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		var in struct {
			Author string `json:"author"`
			Text   string `json:"text"`
		}
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		c, t, err := h.repo.AddComment(id, in.Author, in.Text)
		if err == ErrNotFound {
			writeErr(w, 404, "Todo not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{
			"message": "Comment added!",
			"comment": c,
			"todo":    t,
		})
		return
	}

	writeErr(w, 404, "not found")
}

// /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	stats, err := h.repo.Stats()
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, stats)
}

func statusHint() string {
	return "Status must be one of: " + strings.Join(model.Statuses, ", ")
}
