package pkg

import (
	"bytes"
	"io"
	"sort"
)

// FrequencyMap maps each symbol present in the input to its occurrence count.
type FrequencyMap map[byte]uint64

// CountFrequencies counts byte frequencies in data.
func CountFrequencies(data []byte) FrequencyMap {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}

	freqs := make(FrequencyMap)
	for s, n := range counts {
		if n > 0 {
			freqs[byte(s)] = n
		}
	}
	return freqs
}

// ReadFrequencies drains r, counting frequencies while buffering the input
// for the encoding pass.
func ReadFrequencies(r io.Reader) (FrequencyMap, []byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, nil, ioError("read source", err)
	}
	data := buf.Bytes()
	return CountFrequencies(data), data, nil
}

// Symbols returns the alphabet in ascending order.
func (f FrequencyMap) Symbols() []byte {
	syms := make([]byte, 0, len(f))
	for s := range f {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Total is the number of counted bytes.
func (f FrequencyMap) Total() uint64 {
	var n uint64
	for _, c := range f {
		n += c
	}
	return n
}
