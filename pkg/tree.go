package pkg

import (
	"container/heap"
)

// Huffman tree stored as an arena of nodes addressed by NodeID.

type NodeID int32

// NoNode marks an absent child.
const NoNode NodeID = -1

type Node struct {
	Leaf   bool
	Symbol byte
	Weight uint64
	Left   NodeID
	Right  NodeID
}

type Tree struct {
	nodes []Node
	root  NodeID
}

func (t *Tree) Root() NodeID        { return t.root }
func (t *Tree) Len() int            { return len(t.nodes) }
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Child returns the left child for bit 0 and the right child otherwise.
func (t *Tree) Child(id NodeID, bit uint8) NodeID {
	if bit == 0 {
		return t.nodes[id].Left
	}
	return t.nodes[id].Right
}

func (t *Tree) newLeaf(sym byte, weight uint64) NodeID {
	t.nodes = append(t.nodes, Node{Leaf: true, Symbol: sym, Weight: weight, Left: NoNode, Right: NoNode})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) newInternal(weight uint64, left, right NodeID) NodeID {
	t.nodes = append(t.nodes, Node{Weight: weight, Left: left, Right: right})
	return NodeID(len(t.nodes) - 1)
}

// Equal reports whether both trees have the same shape and leaf symbols.
// Weights and node identities are ignored.
func (t *Tree) Equal(o *Tree) bool {
	var eq func(a, b NodeID) bool
	eq = func(a, b NodeID) bool {
		if a == NoNode || b == NoNode {
			return a == b
		}
		na, nb := t.nodes[a], o.nodes[b]
		if na.Leaf != nb.Leaf {
			return false
		}
		if na.Leaf {
			return na.Symbol == nb.Symbol
		}
		return eq(na.Left, nb.Left) && eq(na.Right, nb.Right)
	}
	return eq(t.root, o.root)
}

type queueItem struct {
	id     NodeID
	weight uint64
	seq    int
}

// nodeQueue orders by weight, then by insertion sequence.
type nodeQueue []queueItem

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) {
	*q = append(*q, x.(queueItem))
}
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BuildTree builds a Huffman tree by repeatedly merging the two lightest
// nodes. Leaves enter the queue in ascending symbol order; the first node
// popped in a merge becomes the left child.
func BuildTree(freqs FrequencyMap) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	t := &Tree{nodes: make([]Node, 0, 2*len(freqs)-1)}
	q := make(nodeQueue, 0, len(freqs))
	seq := 0
	for _, s := range freqs.Symbols() {
		w := freqs[s]
		q = append(q, queueItem{id: t.newLeaf(s, w), weight: w, seq: seq})
		seq++
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(queueItem)
		right := heap.Pop(&q).(queueItem)
		w := left.weight + right.weight
		heap.Push(&q, queueItem{id: t.newInternal(w, left.id, right.id), weight: w, seq: seq})
		seq++
	}

	t.root = heap.Pop(&q).(queueItem).id
	return t, nil
}

// RebuildTree reconstructs a prefix tree from a code table. Codes are
// placed in ascending symbol order. Every code needs at least one bit, so
// a one-symbol table must use "0" or "1".
func RebuildTree(table Table) (*Tree, error) {
	t := &Tree{}
	if len(table) == 0 {
		return nil, ErrEmptyAlphabet
	}

	syms := table.Symbols()

	t.root = t.newInternal(0, NoNode, NoNode)
	for _, s := range syms {
		code := table[s]
		if len(code) == 0 {
			return nil, corruptTable("empty code for symbol 0x%02x", s)
		}

		cur := t.root
		for i, bit := range code {
			next := t.nodes[cur].Right
			if !bit {
				next = t.nodes[cur].Left
			}
			last := i == len(code)-1

			switch {
			case next == NoNode && last:
				next = t.newLeaf(s, 0)
				t.setChild(cur, bit, next)
			case next == NoNode:
				next = t.newInternal(0, NoNode, NoNode)
				t.setChild(cur, bit, next)
			case t.nodes[next].Leaf && last:
				return nil, corruptTable("code %s for symbol 0x%02x is already assigned to 0x%02x",
					code, s, t.nodes[next].Symbol)
			case t.nodes[next].Leaf:
				return nil, corruptTable("code %s for symbol 0x%02x passes through leaf 0x%02x",
					code, s, t.nodes[next].Symbol)
			case last:
				return nil, corruptTable("code %s for symbol 0x%02x ends on an internal node", code, s)
			}
			cur = next
		}
	}
	return t, nil
}

func (t *Tree) setChild(parent NodeID, bit bool, child NodeID) {
	if bit {
		t.nodes[parent].Right = child
	} else {
		t.nodes[parent].Left = child
	}
}
