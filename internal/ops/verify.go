package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"smarttodo/internal/model"
)

// Report summarizes a consistency check of the todo document.
type Report struct {
	Todos        int      `json:"todos"`
	NextID       int64    `json:"next_id"`
	MaxNumericID int64    `json:"max_numeric_id"`
	DuplicateIDs []string `json:"duplicate_ids,omitempty"`
	NullSlices   int      `json:"null_slices"`
}

func (r Report) OK() bool {
	return len(r.DuplicateIDs) == 0 && r.NullSlices == 0 && r.NextID > r.MaxNumericID
}

// VerifyDataFile parses a todos.json document and checks the invariants the
// store maintains: unique ids, a counter ahead of every issued numeric id,
// and no null tag/subtask/comment sequences.
func VerifyDataFile(path string) (Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}

	var doc struct {
		Todos  []model.Todo `json:"todos"`
		NextID int64        `json:"next_id"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return Report{}, fmt.Errorf("parse %s: %w", path, err)
	}

	rep := Report{
		Todos:  len(doc.Todos),
		NextID: doc.NextID,
	}

	seen := make(map[model.TodoID]bool, len(doc.Todos))
	for _, t := range doc.Todos {
		if seen[t.ID] {
			rep.DuplicateIDs = append(rep.DuplicateIDs, string(t.ID))
		}
		seen[t.ID] = true

		if n, err := strconv.ParseInt(string(t.ID), 10, 64); err == nil && n > rep.MaxNumericID {
			rep.MaxNumericID = n
		}
		if t.Tags == nil || t.Subtasks == nil || t.Comments == nil {
			rep.NullSlices++
		}
	}

	return rep, nil
}
