package intake

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Validation sentinels. The UI maps each one to its warning dialog.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrAddressRequired = errors.New("address is required")
	ErrPathRequired    = errors.New("no CSV file chosen")

	// ErrPhoneEmpty means the phone normalized to nothing and the caller
	// has not yet confirmed saving without one. No side effects occurred.
	ErrPhoneEmpty = errors.New("phone is empty")
)

// Controller owns the form state and drives every user action against the
// draft store and the CSV appender. The UI shell reads and writes field
// values only through it; there is no other copy of the state.
type Controller struct {
	cfg    *Config
	store  *DraftStore
	logger *zap.Logger
	now    func() time.Time

	csvPath string
	form    FormValues
}

// NewController loads the persisted draft, falling back to empty defaults
// plus the default CSV target when the sidecar is missing or corrupt.
func NewController(cfg *Config, store *DraftStore, logger *zap.Logger) *Controller {
	c := &Controller{
		cfg:    cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	d, err := store.Load()
	if err != nil {
		// Degrades to empty defaults; never shown to the user.
		logger.Debug("draft state unavailable", zap.Error(err))
	}
	c.csvPath = d.CSVPath
	if c.csvPath == "" {
		c.csvPath = cfg.DefaultCSVPath()
	}
	c.form = d.Form
	return c
}

func (c *Controller) CSVPath() string { return c.csvPath }

func (c *Controller) SetCSVPath(path string) { c.csvPath = path }

func (c *Controller) Form() FormValues { return c.form }

func (c *Controller) SetForm(f FormValues) { c.form = f }

// ChooseFile records a confirmed target location and persists the draft
// immediately. A cancelled chooser never reaches this method.
func (c *Controller) ChooseFile(path string) {
	c.csvPath = path
	c.persistDraft()
}

// Clear empties the three form fields and persists the now-empty draft.
func (c *Controller) Clear() {
	c.form = FormValues{}
	c.persistDraft()
}

// Exit persists the current draft unconditionally. The UI runs it on every
// termination route.
func (c *Controller) Exit() {
	c.persistDraft()
}

// Save validates the form and appends one record, short-circuiting on the
// first failure: name, address, phone, target path, then the write itself.
// An empty normalized phone without allowEmptyPhone returns ErrPhoneEmpty
// before any I/O; the UI asks for confirmation and retries with it set.
// On success the draft is persisted with the just-saved values and the
// form is cleared (persisting again, now empty).
func (c *Controller) Save(allowEmptyPhone bool) (Record, error) {
	name := strings.TrimSpace(c.form.Name)
	if name == "" {
		return Record{}, ErrNameRequired
	}
	address := strings.TrimSpace(c.form.Address)
	if address == "" {
		return Record{}, ErrAddressRequired
	}
	phone := NormalizePhone(strings.TrimSpace(c.form.Phone))
	if phone == "" && !allowEmptyPhone {
		return Record{}, ErrPhoneEmpty
	}
	path := strings.TrimSpace(c.csvPath)
	if path == "" {
		return Record{}, ErrPathRequired
	}

	rec := Record{Timestamp: c.now(), Name: name, Address: address, Phone: phone}
	if err := AppendRecord(path, rec); err != nil {
		return Record{}, err
	}
	if c.cfg.VCFDir != "" {
		if err := MirrorVCF(c.cfg.VCFDir, rec); err != nil {
			return Record{}, err
		}
	}
	c.logger.Debug("entry saved",
		zap.String("path", path),
		zap.Time("timestamp", rec.Timestamp))

	c.persistDraft()
	c.Clear()
	return rec, nil
}

func (c *Controller) persistDraft() {
	if err := c.store.Save(Draft{CSVPath: strings.TrimSpace(c.csvPath), Form: c.form}); err != nil {
		// Deliberately swallowed: draft persistence never blocks an action.
		c.logger.Debug("draft save failed", zap.Error(err))
	}
}
