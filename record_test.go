package intake

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testStamp = time.Date(2024, 3, 9, 14, 30, 5, 0, time.Local)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestAppendRecord_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	rec := Record{Timestamp: testStamp, Name: "Jane Doe", Address: "1 Main St", Phone: "(555) 123-4567"}
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, path)
	want := [][]string{
		{"timestamp", "name", "address", "phone"},
		{"2024-03-09T14:30:05", "Jane Doe", "1 Main St", "(555) 123-4567"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendRecord_NoDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	rec := Record{Timestamp: testStamp, Name: "Jane Doe", Address: "1 Main St", Phone: ""}
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}
	rec.Name = "John Roe"
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (header + 2 records), got %d", len(rows))
	}
	if rows[1][1] != "Jane Doe" || rows[2][1] != "John Roe" {
		t.Errorf("unexpected record order: %v", rows)
	}
}

func TestAppendRecord_HeaderForEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	rec := Record{Timestamp: testStamp, Name: "Jane Doe", Address: "1 Main St", Phone: ""}
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}
	rows := readCSV(t, path)
	if len(rows) != 2 || rows[0][0] != "timestamp" {
		t.Fatalf("expected header for zero-byte file, got %v", rows)
	}
}

func TestAppendRecord_QuotesEmbeddedNewlinesAndCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	rec := Record{
		Timestamp: testStamp,
		Name:      `Jane "JD" Doe`,
		Address:   "1 Main St\nApt 2, Floor 3",
		Phone:     "(555) 123-4567",
	}
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}
	rows := readCSV(t, path)
	if rows[1][1] != rec.Name {
		t.Errorf("name: got %q, want %q", rows[1][1], rec.Name)
	}
	if rows[1][2] != rec.Address {
		t.Errorf("address: got %q, want %q", rows[1][2], rec.Address)
	}
}

func TestAppendRecord_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "contacts.csv")
	rec := Record{Timestamp: testStamp, Name: "Jane Doe", Address: "1 Main St", Phone: ""}
	if err := AppendRecord(path, rec); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}

func TestAppendRecord_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// A file where a directory is expected makes MkdirAll fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "contacts.csv")
	rec := Record{Timestamp: testStamp, Name: "Jane Doe", Address: "1 Main St", Phone: ""}
	if err := AppendRecord(path, rec); err == nil {
		t.Error("expected error for unwritable path")
	}
}
