package event

// Queue collects dispatched events until the presentation layer drains them.
type Queue struct {
	events []Event
	limit  int
}

// NewQueue returns a queue that keeps at most limit events (0 = unbounded).
// When full, the oldest events are dropped.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

func (q *Queue) OnEvent(e Event) {
	q.events = append(q.events, e)
	if q.limit > 0 && len(q.events) > q.limit {
		q.events = q.events[len(q.events)-q.limit:]
	}
}

// Drain returns the pending events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *Queue) Len() int { return len(q.events) }
