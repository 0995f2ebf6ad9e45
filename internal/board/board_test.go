package board

import (
	"testing"
	"time"

	"organizo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id, date string, p domain.Priority, done bool) domain.Task {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return domain.Task{ID: id, Name: "task " + id, Date: d, Priority: p, Completed: done}
}

func TestActionNames(t *testing.T) {
	names := map[string]Action{
		"SET_TASKS":    SetTasks{},
		"ADD_TASK":     AddTask{},
		"UPDATE_TASK":  UpdateTask{},
		"REMOVE_TASK":  RemoveTask{},
		"TOGGLE_TASK":  ToggleTask{},
		"SELECT_TASK":  SelectTask{},
		"SET_LOADING":  SetLoading{},
		"SET_ERROR":    SetError{},
		"SET_UPDATING": SetUpdating{},
	}
	for want, a := range names {
		assert.Equal(t, want, a.Name())
	}
}

func TestReduceLifecycle(t *testing.T) {
	s := Initial()
	assert.True(t, s.Loading)

	s = Reduce(s, SetTasks{Tasks: []domain.Task{task("a", "2024-01-01", domain.PriorityLow, false)}})
	assert.False(t, s.Loading)
	require.Len(t, s.Tasks, 1)

	s = Reduce(s, AddTask{Task: task("b", "2024-01-02", domain.PriorityHigh, false)})
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, "b", s.Tasks[0].ID, "new tasks are prepended")

	updated := task("a", "2024-01-05", domain.PriorityMedium, false)
	s = Reduce(s, UpdateTask{Task: updated})
	assert.Equal(t, updated, s.Tasks[1])

	s = Reduce(s, ToggleTask{ID: "a"})
	assert.True(t, s.Tasks[1].Completed)
	s = Reduce(s, ToggleTask{ID: "a"})
	assert.False(t, s.Tasks[1].Completed)

	s = Reduce(s, SelectTask{ID: "b"})
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.ID)

	s = Reduce(s, RemoveTask{ID: "b"})
	assert.Len(t, s.Tasks, 1)
	assert.Empty(t, s.SelectedTaskID, "removing the selected task clears the selection")
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(Initial(), SetTasks{Tasks: []domain.Task{task("a", "2024-01-01", domain.PriorityLow, false)}})
	after := Reduce(before, ToggleTask{ID: "a"})
	assert.False(t, before.Tasks[0].Completed)
	assert.True(t, after.Tasks[0].Completed)

	_ = Reduce(before, RemoveTask{ID: "a"})
	assert.Len(t, before.Tasks, 1)
}

func TestReduceUnknownIDsAreNoops(t *testing.T) {
	s := Reduce(Initial(), SetTasks{Tasks: []domain.Task{task("a", "2024-01-01", domain.PriorityLow, false)}})
	assert.Equal(t, s, Reduce(s, ToggleTask{ID: "zzz"}))
	assert.Equal(t, s, Reduce(s, RemoveTask{ID: "zzz"}))
	assert.Equal(t, s, Reduce(s, UpdateTask{Task: task("zzz", "2024-01-01", domain.PriorityLow, false)}))
}

func TestReduceLoadingAndError(t *testing.T) {
	s := Reduce(Initial(), SetTasks{Tasks: []domain.Task{task("a", "2024-01-01", domain.PriorityLow, false)}})
	s = Reduce(s, SetLoading{})
	assert.True(t, s.Loading)

	s = Reduce(s, SetError{Message: "Failed to fetch tasks"})
	assert.False(t, s.Loading)
	assert.Equal(t, "Failed to fetch tasks", s.LoadingError)
	assert.Len(t, s.Tasks, 1, "a failed fetch keeps the tasks already shown")

	s = Reduce(s, SetUpdating{Updating: true})
	assert.True(t, s.Updating)
}

func TestSetTasksDropsStaleSelection(t *testing.T) {
	s := Reduce(Initial(), SetTasks{Tasks: []domain.Task{task("a", "2024-01-01", domain.PriorityLow, false)}})
	s = Reduce(s, SelectTask{ID: "a"})
	s = Reduce(s, SetTasks{Tasks: []domain.Task{task("b", "2024-01-01", domain.PriorityLow, false)}})
	assert.Empty(t, s.SelectedTaskID)
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestPendingOrder(t *testing.T) {
	tasks := []domain.Task{
		task("late-low", "2024-01-03", domain.PriorityLow, false),
		task("early-low", "2024-01-01", domain.PriorityLow, false),
		task("early-high", "2024-01-01", domain.PriorityHigh, false),
		task("early-medium", "2024-01-01", domain.PriorityMedium, false),
		task("done", "2023-12-31", domain.PriorityHigh, true),
	}
	assert.Equal(t, []string{"early-high", "early-medium", "early-low", "late-low"}, ids(Pending(tasks)))
}

func TestCompletedOrder(t *testing.T) {
	tasks := []domain.Task{
		task("old", "2024-01-01", domain.PriorityLow, true),
		task("open", "2024-02-01", domain.PriorityLow, false),
		task("new", "2024-01-10", domain.PriorityLow, true),
	}
	assert.Equal(t, []string{"new", "old"}, ids(Completed(tasks)))
}

func TestDueOn(t *testing.T) {
	tasks := []domain.Task{
		task("today-low", "2024-01-02", domain.PriorityLow, false),
		task("today-done", "2024-01-02", domain.PriorityHigh, true),
		task("tomorrow", "2024-01-03", domain.PriorityHigh, false),
		task("today-high", "2024-01-02", domain.PriorityHigh, false),
	}
	today := domain.NewDate(2024, time.January, 2)
	assert.Equal(t, []string{"today-high", "today-low"}, ids(DueOn(tasks, today)))
	assert.NotNil(t, DueOn(nil, today))
	assert.Empty(t, DueOn(nil, today))
}
