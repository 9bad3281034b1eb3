package intake

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const draftFilename = "state.json"

// FormValues mirrors the three visible form fields.
type FormValues struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Draft is the persisted snapshot of unsaved form input plus the chosen
// CSV target location.
type Draft struct {
	CSVPath string     `json:"csv_path"`
	Form    FormValues `json:"form"`
}

// DraftStore persists the draft as a sidecar JSON file in the app
// directory. Every save writes the complete snapshot; every load yields
// either a complete structure or a zero one.
type DraftStore struct {
	path string
}

func NewDraftStore(dir string) *DraftStore {
	return &DraftStore{path: filepath.Join(dir, draftFilename)}
}

// Path is where the sidecar file lives on disk.
func (s *DraftStore) Path() string {
	return s.path
}

// Load reads the sidecar file. A missing, unreadable, or structurally
// invalid file yields a zero Draft along with the underlying error; the
// caller logs and otherwise discards it, so draft recovery never surfaces
// to the user.
func (s *DraftStore) Load() (Draft, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to read draft state: %w", err)
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("failed to parse draft state: %w", err)
	}
	return d, nil
}

// Save overwrites the sidecar with the complete current snapshot. The
// caller discards the error on purpose: a failed draft save never aborts
// the action that triggered it.
func (s *DraftStore) Save(d Draft) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write draft state: %w", err)
	}
	return nil
}
