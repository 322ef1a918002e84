package mobility

import (
	"maps"
	"strings"
)

const (
	MsgRequired       = "this field is required"
	MsgEndBeforeStart = "end date must be after start date"
)

// Form holds the values of one mobility record while it is being filled in,
// plus the validation errors per field. It is not safe for concurrent use.
type Form struct {
	values map[Field]string
	errors map[Field]string
}

// NewForm returns a form with default values (mobility type "start").
func NewForm() *Form {
	f := &Form{}
	f.Reset()

	return f
}

// Reset restores the default values and clears all errors.
func (f *Form) Reset() {
	f.values = make(map[Field]string, len(Fields))
	for _, field := range Fields {
		f.values[field] = ""
	}

	f.values[FieldMobilityType] = string(TypeStart)
	f.errors = make(map[Field]string)
}

// Set writes a value and clears the error recorded for that field.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
	delete(f.errors, field)
}

// Get returns the current value of a field.
func (f *Form) Get(field Field) string {
	return f.values[field]
}

// Type returns the current mobility type.
func (f *Form) Type() Type {
	return Type(f.values[FieldMobilityType])
}

// SetType switches the mobility type. Dates depend on the type, so both are
// cleared along with their errors.
func (f *Form) SetType(t Type) {
	f.values[FieldMobilityType] = string(t)
	f.values[FieldStartDate] = ""
	f.values[FieldEndDate] = ""

	delete(f.errors, FieldStartDate)
	delete(f.errors, FieldEndDate)
}

// Values returns a copy of all field values.
func (f *Form) Values() map[Field]string {
	return maps.Clone(f.values)
}

// Errors returns a copy of the validation errors keyed by field.
func (f *Form) Errors() map[Field]string {
	return maps.Clone(f.errors)
}

// ShowStartDate reports whether the start date input applies to the current type.
func (f *Form) ShowStartDate() bool {
	return f.Type().HasStartDate()
}

// ShowEndDate reports whether the end date input applies to the current type.
func (f *Form) ShowEndDate() bool {
	return f.Type().HasEndDate()
}

// Validate checks required fields and date ordering. It replaces the previous
// error set and reports whether the form is valid.
func (f *Form) Validate() bool {
	f.errors = make(map[Field]string)

	required := []Field{
		FieldLocation,
		FieldFullName,
		FieldGPID,
		FieldTemporaryPosition,
		FieldOriginalPosition,
		FieldHRBP,
	}

	switch f.Type() {
	case TypeStart:
		required = append(required, FieldStartDate)
	case TypeEnd:
		required = append(required, FieldEndDate)
	case TypeFixedPeriod:
		required = append(required, FieldStartDate, FieldEndDate)
	}

	for _, field := range required {
		if strings.TrimSpace(f.values[field]) == "" {
			f.errors[field] = MsgRequired
		}
	}

	// ISO dates compare correctly as strings.
	start, end := f.values[FieldStartDate], f.values[FieldEndDate]
	if _, failed := f.errors[FieldEndDate]; !failed &&
		f.Type() == TypeFixedPeriod && start != "" && end != "" && end <= start {
		f.errors[FieldEndDate] = MsgEndBeforeStart
	}

	return len(f.errors) == 0
}
