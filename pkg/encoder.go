package pkg

import (
	"context"

	"github.com/pkg/errors"
)

// checkInterval is how many bits pass between context checks.
const checkInterval = 1 << 12

// Encoder writes the codes of input symbols to a BitWriter.
type Encoder struct {
	table Table
	bw    *BitWriter
}

func NewEncoder(table Table, bw *BitWriter) *Encoder {
	return &Encoder{table: table, bw: bw}
}

// Encode writes the code of every byte of data and closes the bit writer.
// Nothing is flushed when a symbol has no code or ctx is done.
func (e *Encoder) Encode(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var lookup [256]Code
	var present [256]bool
	for s, c := range e.table {
		lookup[s], present[s] = c, true
	}

	var bits uint64
	for i, b := range data {
		if !present[b] {
			return errors.WithStack(&MissingCodeError{Symbol: b, Offset: int64(i)})
		}
		for _, bit := range lookup[b] {
			if bits%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := e.bw.writeBool(bit); err != nil {
				return err
			}
			bits++
		}
	}
	return e.bw.Close()
}
