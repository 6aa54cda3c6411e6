package fiber

// pendingQueue holds deferred actions in FIFO order.
type pendingQueue struct {
	deque[Action]
}

func (q *pendingQueue) enqueue(action Action) {
	q.pushBack(action)
}

func (q *pendingQueue) actions() []Action {
	nodes := q.nodes()
	out := make([]Action, len(nodes))
	for i, n := range nodes {
		out[i] = n.v
	}
	return out
}
