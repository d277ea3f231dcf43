package trace

import (
	"sync"

	"github.com/hwblocks/edma/recording"
)

type taskTableEntry struct {
	ID        string
	ParentID  string
	Kind      string
	What      string
	Where     string
	Outcome   string
	StartTime float64
	EndTime   float64
}

// A DBTracer stores finished tasks through a recording backend. Tasks are
// buffered by the backend and flushed in batches.
type DBTracer struct {
	mu      sync.Mutex
	backend recording.DataRecorder

	tracingTasks map[string]Task
}

// NewDBTracer creates a DBTracer on the given backend and creates the task
// table.
func NewDBTracer(backend recording.DataRecorder) *DBTracer {
	t := &DBTracer{
		backend:      backend,
		tracingTasks: make(map[string]Task),
	}

	t.backend.CreateTable("trace", taskTableEntry{})

	return t
}

// StartTask records a task as in flight.
func (t *DBTracer) StartTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if task.ID == "" {
		panic("task id must be set")
	}

	t.tracingTasks[task.ID] = task
}

// EndTask completes an in-flight task and hands it to the backend. Ending
// a task that was never started is ignored.
func (t *DBTracer) EndTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	started, found := t.tracingTasks[task.ID]
	if !found {
		return
	}
	delete(t.tracingTasks, task.ID)

	t.backend.InsertData("trace", taskTableEntry{
		ID:        started.ID,
		ParentID:  started.ParentID,
		Kind:      started.Kind,
		What:      started.What,
		Where:     started.Where,
		Outcome:   task.Outcome,
		StartTime: float64(started.Start.UnixNano()) / 1e9,
		EndTime:   float64(task.End.UnixNano()) / 1e9,
	})
}

// Flush forwards to the backend.
func (t *DBTracer) Flush() {
	t.backend.Flush()
}
