// Package analyzer maps free-form task text to heuristic suggestions using
// fixed keyword tables. There is no model behind it; matching is substring
// containment over the lower-cased text, rules checked in a fixed order,
// first match wins.
package analyzer

import (
	"strings"

	"smarttodo/internal/model"
)

const (
	ActionEstimate = "estimate"
	ActionPriority = "priority"
	ActionPlan     = "plan"
	ActionTips     = "tips"
)

type Request struct {
	Text   string       `json:"text"`
	Action string       `json:"action"`
	Todos  []model.Todo `json:"todos,omitempty"`
}

type EstimateResult struct {
	EstimatedTime int `json:"estimated_time"`
}

type PriorityResult struct {
	Priority string `json:"priority"`
}

type PlanResult struct {
	Plan []model.Todo `json:"plan"`
}

type TipsResult struct {
	Tips []string `json:"tips"`
}

type SuggestionResult struct {
	SuggestedPriority string   `json:"suggested_priority"`
	Subtasks          []string `json:"subtasks"`
	Tips              []string `json:"tips"`
}

const (
	defaultEstimateMinutes = 30
	planSliceSize          = 5
)

type estimateRule struct {
	keywords []string
	minutes  int
}

type priorityRule struct {
	keywords []string
	priority string
}

var estimateRules = []estimateRule{
	{keywords: []string{"report", "project"}, minutes: 120},
	{keywords: []string{"meeting"}, minutes: 60},
	{keywords: []string{"email", "call"}, minutes: 15},
}

var priorityRules = []priorityRule{
	{keywords: []string{"important", "urgent", "asap"}, priority: model.PriorityHigh},
	{keywords: []string{"maybe", "later"}, priority: model.PriorityLow},
}

var researchSubtasks = []string{
	"Research and planning",
	"Write a draft",
	"Review and check",
}

var genericSubtasks = []string{
	"Start the task",
	"Finish it up",
	"Quality check",
}

var productivityTips = []string{
	"Start with the most important tasks first",
	"Take a break every 25 minutes (Pomodoro technique)",
	"Turn off notifications while working",
}

var suggestionTips = []string{
	"Set aside enough time",
	"Remove distractions",
}

// Analyze dispatches on Action and returns the action-specific result shape.
// It never fails: empty text matches no keyword and keeps the defaults, and
// an absent todo list yields an empty plan. Unrecognized actions fall through
// to the subtask suggestion.
func Analyze(req Request) any {
	text := strings.ToLower(req.Text)

	switch req.Action {
	case ActionEstimate:
		return EstimateResult{EstimatedTime: estimateMinutes(text)}

	case ActionPriority:
		return PriorityResult{Priority: suggestPriority(text)}

	case ActionPlan:
		return PlanResult{Plan: buildPlan(req.Todos)}

	case ActionTips:
		return TipsResult{Tips: productivityTips}

	default:
		subtasks := genericSubtasks
		if containsAny(text, []string{"report", "task"}) {
			subtasks = researchSubtasks
		}
		return SuggestionResult{
			SuggestedPriority: suggestPriority(text),
			Subtasks:          subtasks,
			Tips:              suggestionTips,
		}
	}
}

func estimateMinutes(text string) int {
	for _, rule := range estimateRules {
		if containsAny(text, rule.keywords) {
			return rule.minutes
		}
	}
	return defaultEstimateMinutes
}

func suggestPriority(text string) string {
	for _, rule := range priorityRules {
		if containsAny(text, rule.keywords) {
			return rule.priority
		}
	}
	return model.PriorityMedium
}

// buildPlan keeps the first five high-priority todos followed by the first
// five medium-priority ones, preserving the given order. Other priorities
// are left out entirely.
func buildPlan(todos []model.Todo) []model.Todo {
	plan := make([]model.Todo, 0, 2*planSliceSize)
	plan = append(plan, takeByPriority(todos, model.PriorityHigh, planSliceSize)...)
	plan = append(plan, takeByPriority(todos, model.PriorityMedium, planSliceSize)...)
	return plan
}

func takeByPriority(todos []model.Todo, priority string, max int) []model.Todo {
	out := make([]model.Todo, 0, max)
	for _, t := range todos {
		if t.Priority != priority {
			continue
		}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
