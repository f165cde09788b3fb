package todo

import (
	"smarttodo/internal/model"
)

type Stats struct {
	Total        int            `json:"total"`
	Completed    int            `json:"completed"`
	Active       int            `json:"active"`
	InProgress   int            `json:"inProgress"`
	HighPriority int            `json:"highPriority"`
	StatusCounts map[string]int `json:"statusCounts"`
}

// computeStats aggregates counts over the collection. The status breakdown
// covers exactly the recognized statuses; anything else is not reported.
func computeStats(todos []model.Todo) Stats {
	stats := Stats{
		StatusCounts: make(map[string]int, len(model.Statuses)),
	}
	for _, s := range model.Statuses {
		stats.StatusCounts[s] = 0
	}

	for _, t := range todos {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
		if t.Status == model.StatusInProgress {
			stats.InProgress++
		}
		if t.Priority == model.PriorityHigh || t.Priority == model.PriorityUrgent {
			stats.HighPriority++
		}
		if _, ok := stats.StatusCounts[t.Status]; ok {
			stats.StatusCounts[t.Status]++
		}
	}
	stats.Active = stats.Total - stats.Completed
	return stats
}
