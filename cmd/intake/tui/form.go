package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/arjungandhi/intake"
)

const appTitle = "Contact Intake"

type field int

const (
	fieldPath field = iota
	fieldName
	fieldAddress
	fieldPhone
	fieldCount
)

type modalKind int

const (
	modalNone modalKind = iota
	modalWarn
	modalConfirmPhone
	modalError
	modalInfo
	modalBrowse
)

// Model is the single-window form. All field values live in the
// controller; the widgets are pushed to and pulled from it around every
// action.
type Model struct {
	ctrl   *intake.Controller
	logger *zap.Logger
	styles Styles

	path    textinput.Model
	name    textinput.Model
	phone   textinput.Model
	address textarea.Model
	picker  filepicker.Model

	focus     field
	modal     modalKind
	modalText string

	width  int
	height int
}

func newModel(ctrl *intake.Controller, logger *zap.Logger) Model {
	m := Model{
		ctrl:   ctrl,
		logger: logger,
		styles: DefaultStyles(),
		focus:  fieldName,
	}

	m.path = textinput.New()
	m.path.Placeholder = "contacts.csv"
	m.path.CharLimit = 0
	m.path.Width = 50

	m.name = textinput.New()
	m.name.Placeholder = "Full name"
	m.name.CharLimit = 200
	m.name.Width = 50

	m.phone = textinput.New()
	m.phone.Placeholder = "555-123-4567"
	m.phone.CharLimit = 40
	m.phone.Width = 50

	m.address = textarea.New()
	m.address.Placeholder = "Street, city…"
	m.address.CharLimit = 0
	m.address.SetWidth(50)
	m.address.SetHeight(5)
	m.address.ShowLineNumbers = false

	m.picker = filepicker.New()
	m.picker.AllowedTypes = []string{".csv"}
	m.picker.FileAllowed = true
	m.picker.DirAllowed = true
	m.picker.Height = 12

	m.pullState()
	m.name.Focus()
	return m
}

// Run drives the form until the user exits and persists the draft on the
// way out, covering every normal termination route of the event loop.
func Run(ctrl *intake.Controller, logger *zap.Logger) error {
	p := tea.NewProgram(newModel(ctrl, logger), tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.pushState()
		ctrl.Exit()
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// pushState copies the widget values into the controller.
func (m Model) pushState() {
	m.ctrl.SetCSVPath(m.path.Value())
	m.ctrl.SetForm(intake.FormValues{
		Name:    m.name.Value(),
		Address: m.address.Value(),
		Phone:   m.phone.Value(),
	})
}

// pullState copies the controller values into the widgets.
func (m *Model) pullState() {
	m.path.SetValue(m.ctrl.CSVPath())
	f := m.ctrl.Form()
	m.name.SetValue(f.Name)
	m.address.SetValue(f.Address)
	m.phone.SetValue(f.Phone)
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.path.Blur()
	m.name.Blur()
	m.address.Blur()
	m.phone.Blur()
	m.focus = f
	switch f {
	case fieldPath:
		return m.path.Focus()
	case fieldName:
		return m.name.Focus()
	case fieldAddress:
		return m.address.Focus()
	default:
		return m.phone.Focus()
	}
}

func (m Model) View() string {
	if m.modal == modalBrowse {
		body := strings.Join([]string{
			m.styles.ModalTitle.Render("Choose or create a CSV file"),
			"",
			m.picker.View(),
			"",
			m.styles.Help.Render("enter: select   esc: cancel"),
		}, "\n")
		return m.place(m.styles.Modal.Render(body))
	}
	if m.modal != modalNone {
		return m.place(m.renderModal())
	}

	title := m.styles.Title.Render(appTitle)

	csvRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Label.Render("CSV File:"), m.path.View())

	details := strings.Join([]string{
		m.styles.BoxTitle.Render("Contact Details"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render("Name:"), m.name.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render("Address:"), m.address.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render("Phone:"), m.phone.View()),
	}, "\n")

	help := m.styles.Help.Render(
		"ctrl+s: save entry   ctrl+l: clear form   ctrl+b: browse   ctrl+o: open folder   tab: next field   esc: exit")
	tip := m.styles.Tip.Render(
		"Tip: unsaved input is remembered if you exit before saving. Saved entries are appended to the CSV.")

	return strings.Join([]string{
		title,
		csvRow,
		"",
		m.styles.FormBox.Render(details),
		"",
		help,
		tip,
	}, "\n")
}

func (m Model) renderModal() string {
	var title string
	switch m.modal {
	case modalWarn:
		title = m.styles.WarnTitle.Render(appTitle)
	case modalError:
		title = m.styles.ErrorTitle.Render(appTitle)
	default:
		title = m.styles.ModalTitle.Render(appTitle)
	}
	hint := "enter: ok"
	if m.modal == modalConfirmPhone {
		hint = "y: save anyway   n: cancel"
	}
	body := strings.Join([]string{
		title,
		"",
		m.modalText,
		"",
		m.styles.Help.Render(hint),
	}, "\n")
	return m.styles.Modal.Render(body)
}

// place centers content in the window once its size is known.
func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// browseDir is the directory the file picker opens in.
func (m Model) browseDir() string {
	dir := filepath.Dir(strings.TrimSpace(m.path.Value()))
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// chosePath normalizes a file picker selection: directories keep the
// current file name, and the .csv extension is added when missing.
func (m Model) chosePath(selection string) string {
	if info, err := os.Stat(selection); err == nil && info.IsDir() {
		base := filepath.Base(strings.TrimSpace(m.path.Value()))
		if base == "" || base == "." || base == string(filepath.Separator) {
			base = "contacts.csv"
		}
		selection = filepath.Join(selection, base)
	}
	if filepath.Ext(selection) == "" {
		selection += ".csv"
	}
	return selection
}
