// Package trace records the lifecycle of DMA transfers as tasks that can be
// collected by pluggable tracers.
package trace

// A NamedTraceable is a traced domain: it has a name and a set of attached
// tracers.
type NamedTraceable interface {
	Name() string
	Tracers() []Tracer
}

// A Tracer collects tasks from the domains it is attached to.
type Tracer interface {
	// StartTask marks the beginning of a task. Start time is filled in.
	StartTask(task Task)

	// EndTask marks the end of a previously started task. Only ID, Where,
	// End, and Outcome are filled in.
	EndTask(task Task)
}

// StartTask notifies every tracer attached to the domain that a task began.
func StartTask(
	id string,
	parentID string,
	domain NamedTraceable,
	kind string,
	what string,
	detail interface{},
) {
	if len(domain.Tracers()) == 0 {
		return
	}

	taskMustBeValid(id, domain, kind)

	task := Task{
		ID:       id,
		ParentID: parentID,
		Kind:     kind,
		What:     what,
		Where:    domain.Name(),
		Start:    now(),
		Detail:   detail,
	}

	for _, t := range domain.Tracers() {
		t.StartTask(task)
	}
}

// EndTask notifies every tracer attached to the domain that a task ended.
func EndTask(id string, domain NamedTraceable, outcome string) {
	if len(domain.Tracers()) == 0 {
		return
	}

	task := Task{
		ID:      id,
		Where:   domain.Name(),
		End:     now(),
		Outcome: outcome,
	}

	for _, t := range domain.Tracers() {
		t.EndTask(task)
	}
}

func taskMustBeValid(id string, domain NamedTraceable, kind string) {
	if id == "" {
		panic("task id must not be empty")
	}

	if domain.Name() == "" {
		panic("domain must have a name")
	}

	if kind == "" {
		panic("task kind must not be empty")
	}
}
