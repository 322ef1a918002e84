package employee

import "github.com/MrJamesThe3rd/mobility/internal/mobility"

// Payload is the body of POST /employees on the employees API. Optional values
// left empty are sent as null.
type Payload struct {
	GPID              string  `json:"gpid"`
	FullName          string  `json:"full_name"`
	MobilityType      *string `json:"mobility_type"`
	OriginalPosition  *string `json:"original_position"`
	TemporaryPosition *string `json:"temporary_position"`
	Location          *string `json:"location"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	HRBP              *string `json:"hrbp"`
}

// NewPayload maps a form to the API payload. Dates the mobility type does not
// use are always null, whatever the form holds.
func NewPayload(f *mobility.Form) Payload {
	p := Payload{
		GPID:              f.Get(mobility.FieldGPID),
		FullName:          f.Get(mobility.FieldFullName),
		MobilityType:      nullable(f.Get(mobility.FieldMobilityType)),
		OriginalPosition:  nullable(f.Get(mobility.FieldOriginalPosition)),
		TemporaryPosition: nullable(f.Get(mobility.FieldTemporaryPosition)),
		Location:          nullable(f.Get(mobility.FieldLocation)),
		HRBP:              nullable(f.Get(mobility.FieldHRBP)),
	}

	switch f.Type() {
	case mobility.TypeStart:
		p.StartDate = nullable(f.Get(mobility.FieldStartDate))
	case mobility.TypeEnd:
		p.EndDate = nullable(f.Get(mobility.FieldEndDate))
	case mobility.TypeFixedPeriod:
		p.StartDate = nullable(f.Get(mobility.FieldStartDate))
		p.EndDate = nullable(f.Get(mobility.FieldEndDate))
	}

	return p
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
