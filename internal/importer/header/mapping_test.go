package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/importer/header"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

func TestBuild(t *testing.T) {
	table := []catalog.Synonym{
		{Alias: "fecha inicio", Field: mobility.FieldStartDate},
		{Alias: "ubicacion", Field: mobility.FieldLocation},
	}

	got := header.Build([]string{"Fecha Inicio", "Ubicación"}, table)

	assert.Equal(t, map[string]mobility.Field{
		"Fecha Inicio": mobility.FieldStartDate,
		"Ubicación":    mobility.FieldLocation,
	}, got.Map())
}

func TestBuild_DefaultCatalog(t *testing.T) {
	type testCase struct {
		name    string
		headers []string
		want    map[string]mobility.Field
	}

	tests := []testCase{
		{
			name:    "Accents and case ignored",
			headers: []string{"DELEGACIÓN", "Título Y Código Del Puesto", "hr business partner"},
			want: map[string]mobility.Field{
				"DELEGACIÓN":                 mobility.FieldLocation,
				"Título Y Código Del Puesto": mobility.FieldTemporaryPosition,
				"hr business partner":        mobility.FieldHRBP,
			},
		},
		{
			name:    "English headers",
			headers: []string{"Employee ID", "Full Name", "End Date", "Mobility Type"},
			want: map[string]mobility.Field{
				"Employee ID":   mobility.FieldGPID,
				"Full Name":     mobility.FieldFullName,
				"End Date":      mobility.FieldEndDate,
				"Mobility Type": mobility.FieldMobilityType,
			},
		},
		{
			name:    "Surrounding whitespace ignored",
			headers: []string{"  gpid  "},
			want:    map[string]mobility.Field{"  gpid  ": mobility.FieldGPID},
		},
		{
			name:    "Unknown headers absent",
			headers: []string{"Salario", "Departamento", "GPID"},
			want:    map[string]mobility.Field{"GPID": mobility.FieldGPID},
		},
		{
			name:    "No substring matching",
			headers: []string{"Fecha de nacimiento", "Nombre del jefe", "Puesto anterior"},
			want:    map[string]mobility.Field{},
		},
		{
			name:    "Empty header list",
			headers: nil,
			want:    map[string]mobility.Field{},
		},
	}

	table := catalog.Default().Synonyms

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, header.Build(tt.headers, table).Map())
		})
	}
}

func TestBuild_TableOrderWins(t *testing.T) {
	// Ambiguous table: both aliases fold to "fecha".
	table := []catalog.Synonym{
		{Alias: "fécha", Field: mobility.FieldEndDate},
		{Alias: "fecha", Field: mobility.FieldStartDate},
	}

	got := header.Build([]string{"Fecha"}, table)

	f, ok := got.Field("Fecha")
	assert.True(t, ok)
	assert.Equal(t, mobility.FieldEndDate, f)
}

func TestMapping_KeepsHeaderOrder(t *testing.T) {
	got := header.Build(
		[]string{"HRBP", "Sueldo", "Fecha Fin", "GPID"},
		catalog.Default().Synonyms,
	)

	assert.Equal(t, []header.Binding{
		{Header: "HRBP", Field: mobility.FieldHRBP},
		{Header: "Fecha Fin", Field: mobility.FieldEndDate},
		{Header: "GPID", Field: mobility.FieldGPID},
	}, got.Bindings())
	assert.Equal(t, 3, got.Len())

	_, ok := got.Field("Sueldo")
	assert.False(t, ok)
}
