package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingTracer struct {
	started []Task
	ended   []Task
}

func (t *capturingTracer) StartTask(task Task) { t.started = append(t.started, task) }
func (t *capturingTracer) EndTask(task Task)   { t.ended = append(t.ended, task) }

type fakeDomain struct {
	name    string
	tracers []Tracer
}

func (d *fakeDomain) Name() string      { return d.name }
func (d *fakeDomain) Tracers() []Tracer { return d.tracers }

func TestStartTaskNotifiesEveryTracer(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Unix(42, 0) }
	defer func() { now = restore }()

	first := &capturingTracer{}
	second := &capturingTracer{}
	domain := &fakeDomain{name: "Memcpy.1", tracers: []Tracer{first, second}}

	StartTask("t1", "p1", domain, "transfer", "memcpy", nil)

	require.Len(t, first.started, 1)
	require.Len(t, second.started, 1)

	task := first.started[0]
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "p1", task.ParentID)
	assert.Equal(t, "transfer", task.Kind)
	assert.Equal(t, "memcpy", task.What)
	assert.Equal(t, "Memcpy.1", task.Where)
	assert.Equal(t, time.Unix(42, 0), task.Start)
}

func TestEndTaskCarriesOutcome(t *testing.T) {
	tracer := &capturingTracer{}
	domain := &fakeDomain{name: "Memcpy.1", tracers: []Tracer{tracer}}

	EndTask("t1", domain, "cancel")

	require.Len(t, tracer.ended, 1)
	assert.Equal(t, "t1", tracer.ended[0].ID)
	assert.Equal(t, "cancel", tracer.ended[0].Outcome)
}

func TestStartTaskSkipsUntracedDomains(t *testing.T) {
	domain := &fakeDomain{name: "Memcpy.1"}

	// No tracers attached, so even an invalid task is not inspected.
	StartTask("", "", domain, "", "", nil)
}

func TestStartTaskValidation(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		domain string
		kind   string
	}{
		{"empty task id", "", "Memcpy.1", "transfer"},
		{"unnamed domain", "t1", "", "transfer"},
		{"empty kind", "t1", "Memcpy.1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain := &fakeDomain{
				name:    tt.domain,
				tracers: []Tracer{&capturingTracer{}},
			}

			assert.Panics(t, func() {
				StartTask(tt.id, "", domain, tt.kind, "what", nil)
			})
		})
	}
}

func TestSequentialIDGenerator(t *testing.T) {
	g := &sequentialIDGenerator{}

	assert.Equal(t, "1", g.Generate())
	assert.Equal(t, "2", g.Generate())
	assert.Equal(t, "3", g.Generate())
}

func TestParallelIDGeneratorIsUnique(t *testing.T) {
	g := parallelIDGenerator{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
