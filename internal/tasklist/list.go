// Package tasklist holds the ordered collection of tasks for a session.
package tasklist

import (
	"strings"

	"monet/internal/domain"
	"monet/internal/errors"
)

// TaskList is an ordered sequence of tasks. Positions are 0-based; callers
// converting from user input subtract one first. Tasks are stored by value,
// so nothing returned by a TaskList aliases its contents.
type TaskList struct {
	tasks []domain.Task
}

// New creates a list holding tasks in the given order.
func New(tasks ...domain.Task) *TaskList {
	l := &TaskList{tasks: make([]domain.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Size returns the number of tasks.
func (l *TaskList) Size() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list has no tasks.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Get returns a copy of the task at index.
func (l *TaskList) Get(index int) (domain.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return domain.Task{}, err
	}
	return l.tasks[index], nil
}

// Add appends task to the end of the list.
func (l *TaskList) Add(task domain.Task) {
	l.tasks = append(l.tasks, task)
}

// Delete removes the task at index and returns it. Later tasks shift down by
// one.
func (l *TaskList) Delete(index int) (domain.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return domain.Task{}, err
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// Mark sets the task at index as done and returns the updated task.
func (l *TaskList) Mark(index int) (domain.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return domain.Task{}, err
	}
	l.tasks[index].MarkDone()
	return l.tasks[index], nil
}

// Unmark sets the task at index as not done and returns the updated task.
func (l *TaskList) Unmark(index int) (domain.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return domain.Task{}, err
	}
	l.tasks[index].MarkUndone()
	return l.tasks[index], nil
}

// Find returns a new list of the tasks whose description contains keyword.
// Matching is case-sensitive and keeps the original order.
func (l *TaskList) Find(keyword string) *TaskList {
	return l.filter(func(t domain.Task) bool {
		return strings.Contains(t.Description, keyword)
	})
}

// FilterByPriority returns a new list of the tasks with priority p.
func (l *TaskList) FilterByPriority(p domain.Priority) *TaskList {
	return l.filter(func(t domain.Task) bool {
		return t.Priority == p
	})
}

// Tasks returns a copy of the tasks in order.
func (l *TaskList) Tasks() []domain.Task {
	out := make([]domain.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) filter(keep func(domain.Task) bool) *TaskList {
	result := New()
	for _, t := range l.tasks {
		if keep(t) {
			result.tasks = append(result.tasks, t)
		}
	}
	return result
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return errors.NewOutOfRangeError(index, len(l.tasks))
	}
	return nil
}
