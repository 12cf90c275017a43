package pkg

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitWriter packs bits MSB first into bytes written to the sink.
// It is not safe for concurrent use.
type BitWriter struct {
	w *bitio.Writer
	n uint64
}

func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit appends one bit; any non-zero value is a 1.
func (b *BitWriter) WriteBit(bit uint8) error {
	return b.writeBool(bit != 0)
}

// WriteBits appends every bit of c in order.
func (b *BitWriter) WriteBits(c Code) error {
	for _, bit := range c {
		if err := b.writeBool(bit); err != nil {
			return err
		}
	}
	return nil
}

func (b *BitWriter) writeBool(bit bool) error {
	if err := b.w.WriteBool(bit); err != nil {
		return ioError("write bitstream", err)
	}
	b.n++
	return nil
}

// BitsWritten is the number of bits written so far, padding excluded.
func (b *BitWriter) BitsWritten() uint64 { return b.n }

// Flush writes out a partially filled byte, padding its low-order bits
// with zeros. Writing may continue afterwards on the next byte boundary.
func (b *BitWriter) Flush() error {
	if err := b.w.Close(); err != nil {
		return ioError("flush bitstream", err)
	}
	return nil
}

// Close flushes the writer. The underlying sink is left open.
func (b *BitWriter) Close() error { return b.Flush() }

// BitReader yields the bits of a byte source MSB first.
type BitReader struct {
	r *bitio.Reader
	n uint64
}

func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBit returns the next bit, or io.EOF once the source is exhausted.
func (b *BitReader) ReadBit() (uint8, error) {
	bit, err := b.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, ioError("read bitstream", err)
	}
	b.n++
	if bit {
		return 1, nil
	}
	return 0, nil
}

// BitsRead is the number of bits consumed so far.
func (b *BitReader) BitsRead() uint64 { return b.n }
