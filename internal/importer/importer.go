// Package importer fills a mobility form from the first data row of an HR
// export CSV.
package importer

import (
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

const MsgNoData = "no data found"

// FieldStore receives the imported values. mobility.Form implements it.
type FieldStore interface {
	Set(field mobility.Field, value string)
}

// Result summarizes one import. Per-field problems end up in Warnings and do
// not make the import fail.
type Result struct {
	Success        bool     `json:"success"`
	FieldsImported int      `json:"fieldsImported"`
	Warnings       []string `json:"warnings"`
}

func failed(msg string) Result {
	return Result{Success: false, FieldsImported: 0, Warnings: []string{msg}}
}

// kind says how a raw cell becomes a field value.
type kind int

const (
	kindText kind = iota
	kindDate
	kindOption
	kindMobilityType
)

var fieldKinds = map[mobility.Field]kind{
	mobility.FieldMobilityType:      kindMobilityType,
	mobility.FieldStartDate:         kindDate,
	mobility.FieldEndDate:           kindDate,
	mobility.FieldLocation:          kindText,
	mobility.FieldFullName:          kindText,
	mobility.FieldGPID:              kindText,
	mobility.FieldTemporaryPosition: kindOption,
	mobility.FieldOriginalPosition:  kindOption,
	mobility.FieldHRBP:              kindOption,
}

func kindOf(f mobility.Field) kind {
	if k, ok := fieldKinds[f]; ok {
		return k
	}

	return kindText
}
