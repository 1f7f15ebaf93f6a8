package pricing

import (
	"errors"
	"fmt"
)

// ErrUnknownTask is returned by BillTasks for a task with no configured rate.
var ErrUnknownTask = errors.New("unknown task")

// Tasks returns the configured task names in configuration order.
func (e *Engine) Tasks() []string {
	out := make([]string, len(e.taskOrder))
	copy(out, e.taskOrder)
	return out
}

// BillTasks returns the cost of the given request counts per task-specific API.
// Terms are summed in configuration order so the total is reproducible.
func (e *Engine) BillTasks(requests map[string]int) (float64, error) {
	for name, n := range requests {
		if _, ok := e.tasks[name]; !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownTask, name)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: %d %s requests", ErrNegativeInput, n, name)
		}
	}

	var total float64
	for _, name := range e.taskOrder {
		if n, ok := requests[name]; ok {
			total += float64(n) * e.tasks[name] / 1000
		}
	}
	return total, nil
}
