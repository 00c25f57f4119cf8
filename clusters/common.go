package clusters

import (
	"container/heap"
)

// priority queue, ordered so the item with the largest priority sits on top
type pItem struct {
	v int
	p float64
	i int
}

type priorityQueue []*pItem

func newPriorityQueue(size int) priorityQueue {
	q := make(priorityQueue, 0, size)
	heap.Init(&q)

	return q
}

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].p > pq[j].p
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].i = i
	pq[j].i = j
}

// Push and Pop are for container/heap. Use heap.Push and heap.Pop.
func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pItem)
	item.i = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.i = -1
	*pq = old[0 : n-1]
	return item
}

func (pq priorityQueue) Peek() *pItem {
	return pq[0]
}

func (pq *priorityQueue) NotEmpty() bool {
	return len(*pq) > 0
}

func (pq *priorityQueue) Update(item *pItem, value int, priority float64) {
	item.v = value
	item.p = priority
	heap.Fix(pq, item.i)
}
