package pkg

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Serialized code table:
//
//	count  uint16 (little endian)
//	count entries, ascending by symbol:
//	  symbol  uint8
//	  bits    uint8
//	  code    ceil(bits/8) bytes, MSB first, zero padded

const maxCodeLen = 255

// WriteTable serializes t to w.
func WriteTable(w io.Writer, t Table) error {
	var buf bytes.Buffer
	buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(len(t))))

	for _, s := range t.Symbols() {
		code := t[s]
		if len(code) > maxCodeLen {
			return errors.Errorf("huffman: code for symbol 0x%02x is %d bits, limit is %d", s, len(code), maxCodeLen)
		}
		buf.WriteByte(s)
		buf.WriteByte(byte(len(code)))

		bw := NewBitWriter(&buf)
		if err := bw.WriteBits(code); err != nil {
			return err
		}
		if err := bw.Close(); err != nil {
			return err
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return ioError("write table", err)
	}
	return nil
}

// TableSize is the serialized size of t in bytes.
func TableSize(t Table) int {
	n := 2
	for _, c := range t {
		n += 2 + (len(c)+7)/8
	}
	return n
}

// ReadTable parses a table written by WriteTable.
func ReadTable(r io.Reader) (Table, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, malformed(err, "reading table size")
	}
	if count > 256 {
		return nil, malformed(nil, "table lists %d symbols", count)
	}

	t := make(Table, count)
	var entry [2]byte
	packed := make([]byte, (maxCodeLen+7)/8)
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, malformed(err, "reading entry %d of %d", i, count)
		}
		sym, n := entry[0], int(entry[1])
		if _, dup := t[sym]; dup {
			return nil, malformed(nil, "symbol 0x%02x listed twice", sym)
		}

		p := packed[:(n+7)/8]
		if _, err := io.ReadFull(r, p); err != nil {
			return nil, malformed(err, "reading code for symbol 0x%02x", sym)
		}

		br := NewBitReader(bytes.NewReader(p))
		code := make(Code, n)
		for j := range code {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, malformed(err, "unpacking code for symbol 0x%02x", sym)
			}
			code[j] = bit == 1
		}
		t[sym] = code
	}
	return t, nil
}
