package seqcore

// TopoSort returns the events of s linearized so that every edge's
// source precedes its target, using Kahn's algorithm with a FIFO queue.
// The queue is seeded with the events that have no incoming edge, in
// insertion order (the order events were first added to the sequence);
// an event that becomes ready later is queued when its last parent is
// popped, in the order that parent's edges were added. The result is
// deterministic for the same Sequence construction order. Returns a
// SequenceCycleError if the graph is not a DAG.
func TopoSort(s *Sequence) ([]*Event, error) {
	events := s.Events()
	indegree := make(map[*Event]int, len(events))
	for _, e := range events {
		indegree[e] = 0
	}
	for _, e := range events {
		for _, child := range s.Children(e) {
			indegree[child]++
		}
	}

	queue := make([]*Event, 0, len(events))
	for _, e := range events {
		if indegree[e] == 0 {
			queue = append(queue, e)
		}
	}

	ordered := make([]*Event, 0, len(events))
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		ordered = append(ordered, e)
		for _, child := range s.Children(e) {
			indegree[child]--
			if indegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(ordered) != len(events) {
		return nil, &SequenceCycleError{Remaining: len(events) - len(ordered), Total: len(events)}
	}
	return ordered, nil
}
