package pkg

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Decoder walks a prefix tree driven by the bits of a BitReader.
type Decoder struct {
	tree *Tree
	br   *BitReader
	cur  NodeID
}

func NewDecoder(tree *Tree, br *BitReader) *Decoder {
	return &Decoder{tree: tree, br: br, cur: tree.Root()}
}

// Decode writes count symbols to w. Bits after the last symbol are padding
// and are not read. A tree that is a single leaf decodes the code "0".
func (d *Decoder) Decode(ctx context.Context, w io.Writer, count uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	root := d.tree.Root()
	leafRoot := d.tree.Node(root).Leaf

	var emitted uint64
	for emitted < count {
		pos := d.br.BitsRead()
		if pos%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		bit, err := d.br.ReadBit()
		if errors.Is(err, io.EOF) {
			reason := "bitstream ended mid-code"
			if d.cur == root {
				reason = "bitstream ended early"
			}
			return errors.WithStack(&StructuralCorruptionError{
				Reason: fmt.Sprintf("%s after %d of %d symbols", reason, emitted, count),
				Bit:    int64(pos),
			})
		}
		if err != nil {
			return err
		}

		var next NodeID
		switch {
		case !leafRoot:
			next = d.tree.Child(d.cur, bit)
		case bit == 0:
			next = root
		default:
			next = NoNode
		}
		if next == NoNode {
			return errors.WithStack(&StructuralCorruptionError{
				Reason: "no branch for bit in code table",
				Bit:    int64(pos),
			})
		}

		n := d.tree.Node(next)
		if !n.Leaf {
			d.cur = next
			continue
		}
		if err := out.WriteByte(n.Symbol); err != nil {
			return ioError("write output", err)
		}
		emitted++
		d.cur = root
	}
	return d.flush(out)
}

func (d *Decoder) flush(out *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return ioError("write output", err)
	}
	return nil
}
