package finsuite

import "fmt"

// Goal is a financial target with a completion percentage.
type Goal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Target   Money  `json:"target"`
	Due      string `json:"due,omitempty"`
	Progress int    `json:"progress"` // 0..100
}

// GoalBook tracks goals in entry order.
type GoalBook struct {
	entries []Goal
}

func NewGoalBook() *GoalBook { return &GoalBook{} }

// Add records a new goal and returns its generated id. Name is mandatory and
// progress is clamped to 0..100.
func (b *GoalBook) Add(g Goal) (string, error) {
	if g.Name == "" {
		return "", fmt.Errorf("goal needs a name")
	}
	g.ID = NewID()
	g.Progress = clampProgress(g.Progress)
	b.entries = append(b.entries, g)
	return g.ID, nil
}

// SetProgress updates the completion percentage of a goal.
func (b *GoalBook) SetProgress(id string, progress int) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries[i].Progress = clampProgress(progress)
			return nil
		}
	}
	return fmt.Errorf("unknown goal %q", id)
}

// Remove deletes the goal with the given id.
func (b *GoalBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown goal %q", id)
}

// Entries returns the goals in entry order.
func (b *GoalBook) Entries() []Goal {
	out := make([]Goal, len(b.entries))
	copy(out, b.entries)
	return out
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
