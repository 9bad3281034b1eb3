package intake

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout is local time at second precision with no zone offset.
const TimestampLayout = "2006-01-02T15:04:05"

var csvHeader = []string{"timestamp", "name", "address", "phone"}

// Record is one contact entry as it lands in the CSV file. It is written
// once and never read back by this program.
type Record struct {
	Timestamp time.Time
	Name      string
	Address   string
	Phone     string
}

// AppendRecord appends r to the CSV file at path. Parent directories are
// created as needed. The header row is written exactly when the file does
// not exist or is empty at the moment of the write; a header-only file left
// behind by a failed data-row write is accepted, not rolled back.
func AppendRecord(path string, r Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	isNew := true
	if info, err := os.Stat(path); err == nil {
		isNew = info.Size() == 0
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	row := []string{r.Timestamp.Format(TimestampLayout), r.Name, r.Address, r.Phone}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
