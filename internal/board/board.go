// Package board holds the task list state of the planner view as a reducer
// over named actions, plus the display ordering of tasks.
package board

import (
	"slices" // Cloning and sorting

	"organizo/internal/domain" // Importing domain models
)

// State of the task board
type State struct {
	Tasks          []domain.Task
	SelectedTaskID string
	Loading        bool
	LoadingError   string
	Updating       bool
}

// Initial is the state before the first fetch completes
func Initial() State {
	return State{Loading: true}
}

// Action is a named state transition
type Action interface {
	Name() string
}

// SetTasks replaces the list after a successful fetch
type SetTasks struct{ Tasks []domain.Task }

// AddTask prepends a newly created task
type AddTask struct{ Task domain.Task }

// UpdateTask replaces a task by id
type UpdateTask struct{ Task domain.Task }

// RemoveTask drops a task by id
type RemoveTask struct{ ID string }

// ToggleTask flips the completed flag of a task
type ToggleTask struct{ ID string }

// SelectTask marks a task as selected; an empty id clears the selection
type SelectTask struct{ ID string }

// SetLoading marks a fetch as started
type SetLoading struct{}

// SetError records a failed fetch. Tasks already loaded are kept.
type SetError struct{ Message string }

// SetUpdating flags an in-flight mutation
type SetUpdating struct{ Updating bool }

func (SetTasks) Name() string    { return "SET_TASKS" }
func (AddTask) Name() string     { return "ADD_TASK" }
func (UpdateTask) Name() string  { return "UPDATE_TASK" }
func (RemoveTask) Name() string  { return "REMOVE_TASK" }
func (ToggleTask) Name() string  { return "TOGGLE_TASK" }
func (SelectTask) Name() string  { return "SELECT_TASK" }
func (SetLoading) Name() string  { return "SET_LOADING" }
func (SetError) Name() string    { return "SET_ERROR" }
func (SetUpdating) Name() string { return "SET_UPDATING" }

// Reduce returns the state after applying a. The input state is never modified.
func Reduce(s State, a Action) State {
	next := s
	next.Tasks = slices.Clone(s.Tasks)

	switch a := a.(type) {
	case SetTasks:
		next.Tasks = slices.Clone(a.Tasks)
		next.Loading = false
		next.LoadingError = ""
		if next.SelectedTaskID != "" && indexOf(next.Tasks, next.SelectedTaskID) < 0 {
			next.SelectedTaskID = ""
		}
	case AddTask:
		next.Tasks = append([]domain.Task{a.Task}, next.Tasks...)
	case UpdateTask:
		if i := indexOf(next.Tasks, a.Task.ID); i >= 0 {
			next.Tasks[i] = a.Task
		}
	case RemoveTask:
		if i := indexOf(next.Tasks, a.ID); i >= 0 {
			next.Tasks = slices.Delete(next.Tasks, i, i+1)
		}
		if next.SelectedTaskID == a.ID {
			next.SelectedTaskID = ""
		}
	case ToggleTask:
		if i := indexOf(next.Tasks, a.ID); i >= 0 {
			next.Tasks[i].Completed = !next.Tasks[i].Completed
		}
	case SelectTask:
		next.SelectedTaskID = a.ID
	case SetLoading:
		next.Loading = true
		next.LoadingError = ""
	case SetError:
		next.Loading = false
		next.LoadingError = a.Message
	case SetUpdating:
		next.Updating = a.Updating
	}
	return next
}

// Selected returns the selected task, if any
func (s State) Selected() (domain.Task, bool) {
	if i := indexOf(s.Tasks, s.SelectedTaskID); i >= 0 {
		return s.Tasks[i], true
	}
	return domain.Task{}, false
}

func indexOf(tasks []domain.Task, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID == id })
}
