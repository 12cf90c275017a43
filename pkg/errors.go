package pkg

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for an empty frequency map.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")
	// ErrChecksumMismatch reports that decoded data does not hash to the stored checksum.
	ErrChecksumMismatch = errors.New("huffman: checksum mismatch")
)

// IOError wraps a failure of the underlying source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("huffman: %s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

func ioError(op string, err error) error {
	return errors.WithStack(&IOError{Op: op, Err: err})
}

// MissingCodeError is returned by the encoder for a symbol that has no table entry.
type MissingCodeError struct {
	Symbol byte
	Offset int64
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol 0x%02x at offset %d", e.Symbol, e.Offset)
}

// StructuralCorruptionError reports a code table or bitstream that does not
// describe a well-formed prefix tree.
type StructuralCorruptionError struct {
	Reason string
	// Bit is the bitstream position where decoding failed, or -1 when the
	// failure was found while rebuilding the tree.
	Bit int64
}

func (e *StructuralCorruptionError) Error() string {
	if e.Bit < 0 {
		return "huffman: corrupt code table: " + e.Reason
	}
	return fmt.Sprintf("huffman: corrupt bitstream at bit %d: %s", e.Bit, e.Reason)
}

func corruptTable(format string, v ...any) error {
	return errors.WithStack(&StructuralCorruptionError{Reason: fmt.Sprintf(format, v...), Bit: -1})
}

// MalformedTableError reports a header or code table that cannot be parsed.
type MalformedTableError struct {
	Reason string
	Err    error
}

func (e *MalformedTableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("huffman: malformed header: %s: %v", e.Reason, e.Err)
	}
	return "huffman: malformed header: " + e.Reason
}

func (e *MalformedTableError) Unwrap() error { return e.Err }

func malformed(err error, format string, v ...any) error {
	return errors.WithStack(&MalformedTableError{Reason: fmt.Sprintf(format, v...), Err: err})
}
