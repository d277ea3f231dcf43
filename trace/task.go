package trace

import "time"

// A Task is one traced unit of work, typically the lifetime of a DMA
// transfer from arming the channel to its acknowledgment.
type Task struct {
	ID       string    `json:"id"`
	ParentID string    `json:"parent_id"`
	Kind     string    `json:"kind"`
	What     string    `json:"what"`
	Where    string    `json:"where"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	// Outcome records how the task ended: complete, cancel, take.
	Outcome string      `json:"outcome"`
	Detail  interface{} `json:"-"`
}

// A TaskFilter selects interesting tasks. Returning true keeps the task.
type TaskFilter func(t Task) bool
