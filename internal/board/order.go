package board

import (
	"slices" // Cloning and sorting

	"organizo/internal/domain" // Importing domain models
)

// Pending returns open tasks by date ascending, then high before medium before low
func Pending(tasks []domain.Task) []domain.Task {
	out := filter(tasks, func(t domain.Task) bool { return !t.Completed })
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		if c := a.Date.Time().Compare(b.Date.Time()); c != 0 {
			return c
		}
		return a.Priority.Rank() - b.Priority.Rank()
	})
	return out
}

// Completed returns finished tasks, latest date first
func Completed(tasks []domain.Task) []domain.Task {
	out := filter(tasks, func(t domain.Task) bool { return t.Completed })
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return b.Date.Time().Compare(a.Date.Time())
	})
	return out
}

// DueOn returns the open tasks dated d, in Pending order
func DueOn(tasks []domain.Task, d domain.Date) []domain.Task {
	return filter(Pending(tasks), func(t domain.Task) bool { return t.Date.Equal(d) })
}

func filter(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
