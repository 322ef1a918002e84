package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mobility/internal/importer"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportedMsg hands a filled form over to the mobility form view.
type ImportedMsg struct {
	Form     *mobility.Form
	Warnings []string
}

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	spinner    spinner.Model

	path   string
	result importer.Result
	form   *mobility.Form
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ImportModel{
		importService: impSvc,
		filePicker:    fp,
		spinner:       s,
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateResult:
		if m.result.Success {
			return "Enter: edit form | Esc: pick another file"
		}

		return "Esc: pick another file"
	case importStateImporting:
		return "Importing..."
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m.handleEsc()
		case tea.KeyEnter:
			if m.state == importStateResult && m.result.Success {
				form, warnings := m.form, m.result.Warnings

				return m, func() tea.Msg { return ImportedMsg{Form: form, Warnings: warnings} }
			}
		}

	case importResultMsg:
		m.state = importStateResult
		m.result = msg.result
		m.form = msg.form

		return m, nil

	case spinner.TickMsg:
		if m.state == importStateImporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.path = path

		return m, tea.Batch(m.spinner.Tick, m.importCmd(path))
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateResult:
		m.state = importStateFilePick
		m.result = importer.Result{}
		m.form = nil

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select the HR export to import:\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("%s Importing %s...", m.spinner.View(), m.path),
		)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if !m.result.Success {
		return style.Render(
			errorStyle.Render("Import failed: "+FormatWarnings(m.result.Warnings)) +
				"\n\n(Esc to go back)",
		)
	}

	s := successStyle.Render(fmt.Sprintf("Imported %d field(s) from %s.", m.result.FieldsImported, m.path))

	if w := FormatWarnings(m.result.Warnings); w != "" {
		s += "\n\n" + warningStyle.Render(w)
	}

	return style.Render(s + "\n\n(Enter to review the form)")
}

type importResultMsg struct {
	result importer.Result
	form   *mobility.Form
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	svc := m.importService

	return func() tea.Msg {
		form := mobility.NewForm()

		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{
				result: importer.Result{Warnings: []string{err.Error()}},
				form:   form,
			}
		}
		defer f.Close()

		return importResultMsg{result: svc.Import(f, form), form: form}
	}
}
