package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodo/internal/model"
)

func TestAnalyze_Estimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "report class", text: "Write monthly report", want: 120},
		{name: "project class", text: "kick off the new project", want: 120},
		{name: "meeting class", text: "Prepare for the team meeting", want: 60},
		{name: "call class", text: "call the client", want: 15},
		{name: "email class", text: "answer that email thread", want: 15},
		{name: "no keyword", text: "water the plants", want: 30},
		{name: "empty text", text: "", want: 30},
		// "project report meeting" hits the first rule; order is fixed.
		{name: "first rule wins", text: "project report meeting email", want: 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(Request{Text: tc.text, Action: ActionEstimate})
			assert.Equal(t, EstimateResult{EstimatedTime: tc.want}, got)
		})
	}
}

func TestAnalyze_Priority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "urgent", text: "this is urgent!", want: model.PriorityHigh},
		{name: "asap uppercase", text: "Need this ASAP", want: model.PriorityHigh},
		{name: "deferral", text: "maybe clean the garage later", want: model.PriorityLow},
		// Urgency is checked before deferral.
		{name: "urgency beats deferral", text: "urgent, but maybe later", want: model.PriorityHigh},
		{name: "no keyword", text: "buy groceries", want: model.PriorityMedium},
		{name: "empty text", text: "", want: model.PriorityMedium},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(Request{Text: tc.text, Action: ActionPriority})
			assert.Equal(t, PriorityResult{Priority: tc.want}, got)
		})
	}
}

func todoWithPriority(title, priority string) model.Todo {
	return model.Todo{Title: title, Priority: priority}
}

func TestAnalyze_Plan(t *testing.T) {
	todos := []model.Todo{
		todoWithPriority("h1", model.PriorityHigh),
		todoWithPriority("l1", model.PriorityLow),
		todoWithPriority("m1", model.PriorityMedium),
		todoWithPriority("u1", model.PriorityUrgent),
	}

	got := Analyze(Request{Action: ActionPlan, Todos: todos})
	plan, ok := got.(PlanResult)
	require.True(t, ok)
	require.Len(t, plan.Plan, 2)
	assert.Equal(t, "h1", plan.Plan[0].Title)
	assert.Equal(t, "m1", plan.Plan[1].Title)
}

func TestAnalyze_PlanCapsAtFivePerBucket(t *testing.T) {
	var todos []model.Todo
	for i := 0; i < 7; i++ {
		todos = append(todos, todoWithPriority("high", model.PriorityHigh))
	}
	for i := 0; i < 7; i++ {
		todos = append(todos, todoWithPriority("medium", model.PriorityMedium))
	}

	got := Analyze(Request{Action: ActionPlan, Todos: todos})
	plan := got.(PlanResult)
	require.Len(t, plan.Plan, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, model.PriorityHigh, plan.Plan[i].Priority)
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, model.PriorityMedium, plan.Plan[i].Priority)
	}
}

func TestAnalyze_PlanWithoutTodos(t *testing.T) {
	got := Analyze(Request{Action: ActionPlan})
	plan := got.(PlanResult)
	assert.Empty(t, plan.Plan)
	assert.NotNil(t, plan.Plan)
}

func TestAnalyze_Tips(t *testing.T) {
	got := Analyze(Request{Text: "", Action: ActionTips})
	tips, ok := got.(TipsResult)
	require.True(t, ok)
	assert.Len(t, tips.Tips, 3)

	// Static content, independent of text.
	again := Analyze(Request{Text: "urgent report meeting", Action: ActionTips})
	assert.Equal(t, got, again)
}

func TestAnalyze_DefaultSuggestsSubtasks(t *testing.T) {
	got := Analyze(Request{Text: "write the quarterly report asap", Action: "suggest"})
	s, ok := got.(SuggestionResult)
	require.True(t, ok)
	assert.Equal(t, model.PriorityHigh, s.SuggestedPriority)
	assert.Equal(t, researchSubtasks, s.Subtasks)
	assert.Len(t, s.Tips, 2)

	got = Analyze(Request{Text: "tidy the kitchen", Action: ""})
	s = got.(SuggestionResult)
	assert.Equal(t, model.PriorityMedium, s.SuggestedPriority)
	assert.Equal(t, genericSubtasks, s.Subtasks)
}
