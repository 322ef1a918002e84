package mobility

// Field is the canonical key a value is stored under, whatever the source
// header was called.
type Field string

const (
	FieldMobilityType      Field = "mobilityType"
	FieldStartDate         Field = "startDate"
	FieldEndDate           Field = "endDate"
	FieldLocation          Field = "location"
	FieldFullName          Field = "fullName"
	FieldGPID              Field = "gpid"
	FieldTemporaryPosition Field = "temporaryPosition"
	FieldOriginalPosition  Field = "originalPosition"
	FieldHRBP              Field = "hrbp"
)

// Fields lists every canonical field in display order.
var Fields = []Field{
	FieldMobilityType,
	FieldStartDate,
	FieldEndDate,
	FieldLocation,
	FieldFullName,
	FieldGPID,
	FieldTemporaryPosition,
	FieldOriginalPosition,
	FieldHRBP,
}

// Valid reports whether f is one of the canonical fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}

	return false
}

// Type is the kind of mobility event a record describes.
type Type string

const (
	TypeStart       Type = "start"
	TypeEnd         Type = "end"
	TypeFixedPeriod Type = "fixed-period"
)

// Label returns the display label used by the HR forms.
func (t Type) Label() string {
	switch t {
	case TypeStart:
		return "Inicio de Movilidad"
	case TypeEnd:
		return "Fin de Movilidad"
	case TypeFixedPeriod:
		return "Periodo Fijo"
	}

	return string(t)
}

// HasStartDate reports whether records of this type carry a start date.
func (t Type) HasStartDate() bool {
	return t != TypeEnd
}

// HasEndDate reports whether records of this type carry an end date.
func (t Type) HasEndDate() bool {
	return t == TypeEnd || t == TypeFixedPeriod
}
