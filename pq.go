package gridpath

import "container/heap"

// PriorityQueueItem is a node queued at Priority; Sequence breaks ties.
type PriorityQueueItem[NodeType comparable] struct {
	Node     NodeType
	Priority float64
	Sequence uint64
}

// PriorityQueue orders items by (Priority, Sequence); equal priorities pop
// first-inserted first.
type PriorityQueue[NodeType comparable] []PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[NodeType]) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem[NodeType]))
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// Frontier is a PriorityQueue plus the insertion counter of a single search run.
type Frontier[NodeType comparable] struct {
	queue    PriorityQueue[NodeType]
	sequence uint64
}

// Push queues node behind every earlier entry of equal priority.
func (f *Frontier[NodeType]) Push(node NodeType, priority float64) {
	f.sequence++
	heap.Push(&f.queue, PriorityQueueItem[NodeType]{Node: node, Priority: priority, Sequence: f.sequence})
}

// Pop removes the lowest (priority, sequence) entry.
func (f *Frontier[NodeType]) Pop() PriorityQueueItem[NodeType] {
	return heap.Pop(&f.queue).(PriorityQueueItem[NodeType])
}

// Len is the number of queued entries, stale ones included.
func (f *Frontier[NodeType]) Len() int { return f.queue.Len() }
