package pomodoro

import (
	"iter"
	"slices"
	"time"

	"github.com/akyairhashvil/studyclock/internal/models"
)

// TasksForToday yields the tasks dated today, in source order. The view is
// lazy and can be ranged over any number of times; the source slice is never
// modified.
func TasksForToday(all []models.Task, today string) iter.Seq[models.Task] {
	return func(yield func(models.Task) bool) {
		for _, t := range all {
			if t.Date != today {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Checklist splits the day's tasks into active and completed lists.
// The completed list is append-only.
type Checklist struct {
	active    []models.Task
	completed []models.CompletedTask
	done      map[string]struct{}
}

// Load replaces the active list with the tasks in view. Tasks already
// completed in this checklist stay completed.
func (c *Checklist) Load(view iter.Seq[models.Task]) {
	c.active = nil
	for t := range view {
		if c.isDone(t.ID) {
			continue
		}
		c.active = append(c.active, t)
	}
}

// Restore appends previously completed tasks, e.g. from persistent storage.
func (c *Checklist) Restore(completed []models.CompletedTask) {
	for _, ct := range completed {
		if c.isDone(ct.ID) {
			continue
		}
		c.markDone(ct.ID)
		c.completed = append(c.completed, ct)
		c.removeActive(ct.ID)
	}
}

// Complete moves an active task to the completed list. Unknown or already
// completed ids are a no-op.
func (c *Checklist) Complete(id string, at time.Time) (models.CompletedTask, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return models.CompletedTask{}, false
	}
	task := c.active[idx]
	c.active = slices.Delete(c.active, idx, idx+1)
	ct := models.CompletedTask{Task: task, CompletedAt: at}
	c.completed = append(c.completed, ct)
	c.markDone(id)
	return ct, true
}

// Active returns a copy of the active tasks.
func (c *Checklist) Active() []models.Task {
	return append([]models.Task(nil), c.active...)
}

// Completed returns a copy of the completed tasks in completion order.
func (c *Checklist) Completed() []models.CompletedTask {
	return append([]models.CompletedTask(nil), c.completed...)
}

func (c *Checklist) indexOf(id string) int {
	for i, t := range c.active {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Checklist) removeActive(id string) {
	if idx := c.indexOf(id); idx >= 0 {
		c.active = slices.Delete(c.active, idx, idx+1)
	}
}

func (c *Checklist) isDone(id string) bool {
	_, ok := c.done[id]
	return ok
}

func (c *Checklist) markDone(id string) {
	if c.done == nil {
		c.done = make(map[string]struct{})
	}
	c.done[id] = struct{}{}
}
