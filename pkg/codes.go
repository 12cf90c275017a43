package pkg

import (
	"sort"
	"strings"
)

// Code is a bit-string, first bit first. false is 0, true is 1.
type Code []bool

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Table maps each symbol to its code.
type Table map[byte]Code

// Symbols returns the table's symbols in ascending order.
func (t Table) Symbols() []byte {
	syms := make([]byte, 0, len(t))
	for s := range t {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// EncodedBits is the bitstream length for input with the given frequencies.
func (t Table) EncodedBits(freqs FrequencyMap) uint64 {
	var n uint64
	for s, c := range freqs {
		n += c * uint64(len(t[s]))
	}
	return n
}

// GenerateCodes reads each leaf's path off the tree: 0 for a left branch,
// 1 for a right branch. A tree that is a single leaf gets the code "0".
func GenerateCodes(t *Tree) Table {
	table := make(Table)
	if root := t.Node(t.Root()); root.Leaf {
		table[root.Symbol] = Code{false}
		return table
	}

	path := make(Code, 0, 32)
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if id == NoNode {
			return
		}
		n := t.Node(id)
		if n.Leaf {
			table[n.Symbol] = append(Code(nil), path...)
			return
		}
		path = append(path, false)
		walk(n.Left)
		path = path[:len(path)-1]

		path = append(path, true)
		walk(n.Right)
		path = path[:len(path)-1]
	}
	walk(t.Root())
	return table
}
