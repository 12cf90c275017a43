package pkg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.bin")
	packed := filepath.Join(dir, "input.sqhf")
	restored := filepath.Join(dir, "restored.bin")

	data := skewedData(70, 40000, 50)
	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := CompressFile(context.Background(), src, packed, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(packed)
	if err != nil {
		t.Fatal(err)
	}
	if uint64(info.Size()) != uint64(stats.HeaderBytes)+stats.PayloadBytes {
		t.Errorf("file is %d bytes, stats say %d", info.Size(), uint64(stats.HeaderBytes)+stats.PayloadBytes)
	}

	if _, err := DecompressFile(context.Background(), packed, restored, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("restored file differs from the original")
	}

	h, table, err := InspectFile(packed)
	if err != nil {
		t.Fatal(err)
	}
	if h.Length != uint64(len(data)) || len(table) != stats.Symbols {
		t.Errorf("inspect gave length %d and %d symbols", h.Length, len(table))
	}
}

func TestFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out")
	_, err := CompressFile(context.Background(), filepath.Join(dir, "nope"), dst, DefaultOptions())
	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("destination exists after failure: %v", err)
	}
}

func TestFileFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "garbage")
	dst := filepath.Join(dir, "out")
	if err := os.WriteFile(src, []byte("not an archive at all, just text"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := DecompressFile(context.Background(), src, dst, DefaultOptions())
	var mte *MalformedTableError
	if !errors.As(err, &mte) {
		t.Fatalf("expected MalformedTableError, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "garbage" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("directory holds %v after failed decompression", names)
	}
}

func TestFileOverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in")
	dst := filepath.Join(dir, "out")
	if err := os.WriteFile(src, []byte("fresh"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("stale contents"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := CompressFile(context.Background(), src, dst, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	h, _, err := InspectFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if h.Length != 5 {
		t.Fatalf("destination header length %d, want 5", h.Length)
	}
}
