package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/employee"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

type mobilityState int

const (
	mobilityStateEditing mobilityState = iota
	mobilityStateSubmitting
	mobilityStateResult
)

// formValues is shared with huh through pointers, so it lives on the heap and
// survives the model being copied by bubbletea.
type formValues struct {
	values map[mobility.Field]*string
}

func newFormValues(f *mobility.Form) *formValues {
	v := &formValues{values: make(map[mobility.Field]*string, len(mobility.Fields))}
	for _, field := range mobility.Fields {
		val := f.Get(field)
		v.values[field] = &val
	}

	return v
}

func (v *formValues) ptr(field mobility.Field) *string {
	return v.values[field]
}

func (v *formValues) mobilityType() mobility.Type {
	return mobility.Type(*v.values[mobility.FieldMobilityType])
}

// toForm copies the inputs into a fresh form. Dates typed as DD/MM/YYYY are
// stored in ISO form; anything else was rejected by the input validator.
func (v *formValues) toForm() *mobility.Form {
	f := mobility.NewForm()

	for _, field := range mobility.Fields {
		value := *v.values[field]

		if field == mobility.FieldStartDate || field == mobility.FieldEndDate {
			if iso, err := NormalizeDateInput(value); err == nil {
				value = iso
			}
		}

		f.Set(field, value)
	}

	return f
}

type MobilityModel struct {
	CommonModel
	employeeService *employee.Service
	catalog         *catalog.Catalog

	state    mobilityState
	values   *formValues
	form     *huh.Form
	spinner  spinner.Model
	warnings []string

	fieldErrors map[mobility.Field]string
	err         error
	response    string
}

// NewMobilityModel edits f, which may come from an import or be blank.
func NewMobilityModel(svc *employee.Service, cat *catalog.Catalog, f *mobility.Form, warnings []string) MobilityModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := MobilityModel{
		employeeService: svc,
		catalog:         cat,
		values:          newFormValues(f),
		spinner:         s,
		warnings:        warnings,
	}
	m.form = m.buildForm()

	return m
}

func (m MobilityModel) Title() string { return "Mobility" }

func (m MobilityModel) ShortHelp() string {
	switch m.state {
	case mobilityStateSubmitting:
		return "Submitting..."
	case mobilityStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: next"
}

func (m MobilityModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MobilityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case mobilityStateEditing:
		return m.updateEditing(msg)
	case mobilityStateSubmitting:
		return m.updateSubmitting(msg)
	case mobilityStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m MobilityModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = mobilityStateSubmitting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.submitCmd())
}

func (m MobilityModel) updateSubmitting(msg tea.Msg) (tea.Model, tea.Cmd) {
	result, ok := msg.(submitResultMsg)
	if !ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var verr *employee.ValidationError
	if errors.As(result.err, &verr) {
		m.state = mobilityStateEditing
		m.fieldErrors = verr.Errors
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	m.state = mobilityStateResult
	m.err = result.err
	m.response = result.body

	return m, nil
}

func (m MobilityModel) buildForm() *huh.Form {
	v := m.values

	typeOptions := make([]huh.Option[string], 0, len(m.catalog.MobilityTypes))
	for _, t := range m.catalog.MobilityTypes {
		typeOptions = append(typeOptions, huh.NewOption(t.Label, string(t.Value)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(string(mobility.FieldMobilityType)).
				Title("Mobility type").
				Options(typeOptions...).
				Value(v.ptr(mobility.FieldMobilityType)),
		),

		huh.NewGroup(
			huh.NewInput().
				Key(string(mobility.FieldStartDate)).
				Title("Start date").
				Placeholder("DD/MM/YYYY").
				Validate(validateDateInput).
				Value(v.ptr(mobility.FieldStartDate)),
		).WithHideFunc(func() bool { return !v.mobilityType().HasStartDate() }),

		huh.NewGroup(
			huh.NewInput().
				Key(string(mobility.FieldEndDate)).
				Title("End date").
				Placeholder("DD/MM/YYYY").
				Validate(validateDateInput).
				Value(v.ptr(mobility.FieldEndDate)),
		).WithHideFunc(func() bool { return !v.mobilityType().HasEndDate() }),

		huh.NewGroup(
			huh.NewInput().
				Key(string(mobility.FieldFullName)).
				Title("Full name").
				Value(v.ptr(mobility.FieldFullName)),
			huh.NewInput().
				Key(string(mobility.FieldGPID)).
				Title("GPID").
				Value(v.ptr(mobility.FieldGPID)),
			huh.NewInput().
				Key(string(mobility.FieldLocation)).
				Title("Location").
				Value(v.ptr(mobility.FieldLocation)),
		),

		huh.NewGroup(
			m.optionSelect(mobility.FieldOriginalPosition, "Original position"),
			m.optionSelect(mobility.FieldTemporaryPosition, "Temporary position"),
			m.optionSelect(mobility.FieldHRBP, "HRBP"),
		),
	).WithWidth(70).WithShowHelp(false)
}

// optionSelect offers the catalog list for field plus an empty choice, so an
// unmatched import stays empty until someone picks a value.
func (m MobilityModel) optionSelect(field mobility.Field, title string) *huh.Select[string] {
	list := m.catalog.Options(field)

	opts := make([]huh.Option[string], 0, len(list)+1)
	opts = append(opts, huh.NewOption("(none)", ""))

	for _, o := range list {
		opts = append(opts, huh.NewOption(o, o))
	}

	return huh.NewSelect[string]().
		Key(string(field)).
		Title(title).
		Options(opts...).
		Height(8).
		Value(m.values.ptr(field))
}

func (m MobilityModel) View() string {
	switch m.state {
	case mobilityStateEditing:
		var header string

		if w := FormatWarnings(m.warnings); w != "" {
			header += warningStyle.Render(w) + "\n\n"
		}

		if e := FormatFieldErrors(m.fieldErrors); e != "" {
			header += errorStyle.Render(e) + "\n\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(header + m.form.View())

	case mobilityStateSubmitting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Sending to the employees API...", m.spinner.View()),
		)

	case mobilityStateResult:
		return m.viewResult()
	}

	return ""
}

func (m MobilityModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)",
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Employee registered")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.response,
			"",
			"(Esc to go back)",
		),
	)
}

type submitResultMsg struct {
	body string
	err  error
}

func (m MobilityModel) submitCmd() tea.Cmd {
	svc := m.employeeService
	form := m.values.toForm()

	return func() tea.Msg {
		ctx, cancel := SubmitCtx()
		defer cancel()

		body, err := svc.Submit(ctx, form)
		if err != nil {
			return submitResultMsg{err: err}
		}

		return submitResultMsg{body: string(body)}
	}
}
