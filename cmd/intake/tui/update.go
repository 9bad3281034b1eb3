package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arjungandhi/intake"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.pushState()
			m.ctrl.Exit()
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "ctrl+s":
			m.pushState()
			return m.save(false)
		case "ctrl+l":
			m.pushState()
			m.ctrl.Clear()
			m.pullState()
			return m, nil
		case "ctrl+b":
			m.picker.CurrentDirectory = m.browseDir()
			m.modal = modalBrowse
			return m, m.picker.Init()
		case "ctrl+o":
			return m.openFolder()
		}
	}

	return m.updateFocused(msg)
}

// updateFocused routes everything else to the focused widget.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldPath:
		m.path, cmd = m.path.Update(msg)
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldAddress:
		m.address, cmd = m.address.Update(msg)
	default:
		m.phone, cmd = m.phone.Update(msg)
	}
	return m, cmd
}

// updateModal handles keys while a prompt is open; the form underneath is
// blocked until it is dismissed.
func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalBrowse:
		if msg.String() == "esc" {
			// Cancelled: no change to the target path.
			m.modal = modalNone
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, selection := m.picker.DidSelectFile(msg); ok {
			path := m.chosePath(selection)
			m.ctrl.ChooseFile(path)
			m.path.SetValue(path)
			m.modal = modalNone
			m.logger.Debug("csv target chosen", zap.String("path", path))
			return m, nil
		}
		return m, cmd

	case modalConfirmPhone:
		switch msg.String() {
		case "y", "Y", "enter":
			m.modal = modalNone
			return m.save(true)
		case "n", "N", "esc":
			// Declined: abort with no side effects.
			m.modal = modalNone
			return m, nil
		}
		return m, nil

	default:
		switch msg.String() {
		case "enter", "esc", " ":
			m.modal = modalNone
		}
		return m, nil
	}
}

// save runs the controller's validation pipeline and maps each outcome to
// its prompt.
func (m Model) save(allowEmptyPhone bool) (tea.Model, tea.Cmd) {
	_, err := m.ctrl.Save(allowEmptyPhone)
	switch {
	case errors.Is(err, intake.ErrNameRequired):
		m.modal = modalWarn
		m.modalText = "Please enter a name."
	case errors.Is(err, intake.ErrAddressRequired):
		m.modal = modalWarn
		m.modalText = "Please enter an address."
	case errors.Is(err, intake.ErrPhoneEmpty):
		m.modal = modalConfirmPhone
		m.modalText = "Phone is empty or invalid. Save anyway?"
	case errors.Is(err, intake.ErrPathRequired):
		m.modal = modalWarn
		m.modalText = "Please choose a CSV file location."
	case err != nil:
		m.modal = modalError
		m.modalText = fmt.Sprintf("Could not write to CSV:\n%v", err)
	default:
		// The controller cleared the form; reflect that in the widgets.
		m.pullState()
		m.modal = modalInfo
		m.modalText = "Entry saved to CSV."
	}
	return m, nil
}

func (m Model) openFolder() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.path.Value())
	if path == "" {
		m.modal = modalInfo
		m.modalText = "Choose a CSV file first."
		return m, nil
	}
	if err := intake.OpenFolder(filepath.Dir(path)); err != nil {
		m.modal = modalError
		m.modalText = fmt.Sprintf("Could not open folder:\n%v", err)
	}
	return m, nil
}

func (m *Model) resize() {
	w := m.width - 20
	if w < 24 {
		w = 24
	}
	if w > 72 {
		w = 72
	}
	m.path.Width = w
	m.name.Width = w
	m.phone.Width = w
	m.address.SetWidth(w)
}
