package pkg

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"

	"sqhuff/pkg/logger"
)

var (
	Magic          = [4]byte{'S', 'Q', 'H', 'F'}
	Version uint16 = 1
)

const (
	FlagChecksum = 1 << 0

	knownFlags = FlagChecksum
)

// FileHeader precedes the code table. Length is the number of original
// bytes, which tells the decoder where the padded bitstream ends.
type FileHeader struct {
	Magic    [4]byte
	Version  uint16
	Flags    uint16
	Length   uint64
	Checksum uint64
}

type Options struct {
	// Checksum stores an xxhash64 of the input and verifies it on decompression.
	Checksum bool
	Logger   logger.Logger
}

func DefaultOptions() Options {
	return Options{Checksum: true}
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.Nop()
	}
	return o.Logger
}

// Stats describes one compressed artifact.
type Stats struct {
	RawBytes     uint64
	Symbols      int
	HeaderBytes  int
	EncodedBits  uint64
	PayloadBytes uint64
}

func statsFor(h FileHeader, table Table, bits uint64) Stats {
	return Stats{
		RawBytes:     h.Length,
		Symbols:      len(table),
		HeaderBytes:  binary.Size(h) + TableSize(table),
		EncodedBits:  bits,
		PayloadBytes: (bits + 7) / 8,
	}
}

// Compress reads all of src and writes header, code table and bitstream to dst.
func Compress(ctx context.Context, dst io.Writer, src io.Reader, opts Options) (Stats, error) {
	log := opts.logger()

	freqs, data, err := ReadFrequencies(src)
	if err != nil {
		return Stats{}, err
	}

	h := FileHeader{Magic: Magic, Version: Version, Length: uint64(len(data))}
	if opts.Checksum {
		h.Flags |= FlagChecksum
		h.Checksum = xxhash.Sum64(data)
	}

	table := Table{}
	if len(freqs) > 0 {
		tree, err := BuildTree(freqs)
		if err != nil {
			return Stats{}, err
		}
		table = GenerateCodes(tree)
	}
	bits := table.EncodedBits(freqs)
	log.Infof("code table: %d symbols, %d bytes in, %d bits out", len(table), len(data), bits)

	out := bufio.NewWriter(dst)
	if err := binary.Write(out, binary.LittleEndian, &h); err != nil {
		return Stats{}, ioError("write header", err)
	}
	if err := WriteTable(out, table); err != nil {
		return Stats{}, err
	}

	bw := NewBitWriter(out)
	if err := NewEncoder(table, bw).Encode(ctx, data); err != nil {
		return Stats{}, err
	}
	if err := out.Flush(); err != nil {
		return Stats{}, ioError("write destination", err)
	}

	return statsFor(h, table, bw.BitsWritten()), nil
}

// Decompress reads an artifact written by Compress from src and writes the
// original bytes to dst.
func Decompress(ctx context.Context, dst io.Writer, src io.Reader, opts Options) (Stats, error) {
	log := opts.logger()

	in := bufio.NewReader(src)
	h, table, err := readHeader(in)
	if err != nil {
		return Stats{}, err
	}
	log.Infof("code table: %d symbols, %d bytes expected", len(table), h.Length)

	hash := xxhash.New()
	out := dst
	if h.Flags&FlagChecksum != 0 {
		out = io.MultiWriter(dst, hash)
	}

	br := NewBitReader(in)
	if len(table) > 0 {
		tree, err := RebuildTree(table)
		if err != nil {
			return Stats{}, err
		}
		if err := NewDecoder(tree, br).Decode(ctx, out, h.Length); err != nil {
			return Stats{}, err
		}
	}

	if h.Flags&FlagChecksum != 0 && hash.Sum64() != h.Checksum {
		return Stats{}, ErrChecksumMismatch
	}
	return statsFor(*h, table, br.BitsRead()), nil
}

// Inspect reads only the header and code table of an artifact.
func Inspect(src io.Reader) (*FileHeader, Table, error) {
	return readHeader(bufio.NewReader(src))
}

func readHeader(r io.Reader) (*FileHeader, Table, error) {
	var h FileHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, nil, malformed(err, "reading file header")
	}
	if h.Magic != Magic {
		return nil, nil, malformed(nil, "not a sqhuff file")
	}
	if h.Version != Version {
		return nil, nil, malformed(nil, "unsupported version %d", h.Version)
	}
	if h.Flags&^knownFlags != 0 {
		return nil, nil, malformed(nil, "unknown flags 0x%04x", h.Flags)
	}

	table, err := ReadTable(r)
	if err != nil {
		return nil, nil, err
	}
	if len(table) == 0 && h.Length > 0 {
		return nil, nil, malformed(nil, "empty code table for %d bytes of data", h.Length)
	}
	return &h, table, nil
}
