package pkg

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

// skewedData returns n bytes drawn from a roughly geometric distribution
// over a alphabet symbols, so codes come out with varied lengths.
func skewedData(seed int64, n, alphabet int) []byte {
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	for i := range data {
		s := 0
		for s < alphabet-1 && r.Intn(3) != 0 {
			s++
		}
		data[i] = byte(s * 7)
	}
	return data
}

func mustCode(t *testing.T, s string) Code {
	t.Helper()
	c, err := parseCode(s)
	if err != nil {
		t.Fatalf("parseCode(%q): %v", s, err)
	}
	return c
}

func mustTable(t *testing.T, codes map[byte]string) Table {
	t.Helper()
	table := make(Table, len(codes))
	for s, c := range codes {
		table[s] = mustCode(t, c)
	}
	return table
}

func codeStrings(table Table) map[byte]string {
	out := make(map[byte]string, len(table))
	for s, c := range table {
		out[s] = c.String()
	}
	return out
}

func parseCode(s string) (Code, error) {
	c := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			c[i] = true
		default:
			return nil, errors.Errorf("invalid bit %q at position %d", s[i], i)
		}
	}
	return c, nil
}

// hasPrefix reports whether p is a prefix of c.
func hasPrefix(c, p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i := range p {
		if c[i] != p[i] {
			return false
		}
	}
	return true
}
