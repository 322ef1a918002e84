package catalog

import "github.com/MrJamesThe3rd/mobility/internal/mobility"

// Default returns the built-in tables. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Synonyms: []Synonym{
			{"fecha inicio", mobility.FieldStartDate},
			{"fecha", mobility.FieldStartDate},
			{"date", mobility.FieldStartDate},
			{"start date", mobility.FieldStartDate},
			{"fecha documento", mobility.FieldStartDate},

			{"fecha fin", mobility.FieldEndDate},
			{"fecha final", mobility.FieldEndDate},
			{"end date", mobility.FieldEndDate},

			{"ubicacion", mobility.FieldLocation},
			{"ubicación", mobility.FieldLocation},
			{"delegacion", mobility.FieldLocation},
			{"delegación", mobility.FieldLocation},
			{"location", mobility.FieldLocation},

			{"nombre y apellidos", mobility.FieldFullName},
			{"nombre completo", mobility.FieldFullName},
			{"nombre", mobility.FieldFullName},
			{"full name", mobility.FieldFullName},

			{"gpid", mobility.FieldGPID},
			{"employee id", mobility.FieldGPID},
			{"id empleado", mobility.FieldGPID},

			{"titulo y codigo del puesto", mobility.FieldTemporaryPosition},
			{"título y código del puesto", mobility.FieldTemporaryPosition},
			{"puesto temporal", mobility.FieldTemporaryPosition},
			{"temporary position", mobility.FieldTemporaryPosition},
			{"puesto", mobility.FieldTemporaryPosition},

			{"puesto original", mobility.FieldOriginalPosition},
			{"original position", mobility.FieldOriginalPosition},

			{"hrbp", mobility.FieldHRBP},
			{"hr business partner", mobility.FieldHRBP},

			{"tipo de movilidad", mobility.FieldMobilityType},
			{"tipo movilidad", mobility.FieldMobilityType},
			{"mobility type", mobility.FieldMobilityType},
		},
		Positions: []string{
			"Delivery Driver (Conductor)",
			"Sales Delivery Driver (Repartidor Preventa)",
			"Sales replenisher (Reponedor)",
			"Auto Sale Seller (Vendedor Autoventa)",
			"Pre Sale Seller (Vendedor Preventa)",
			"Sales Promoter ADR (ADR)",
			"Sales Technician DPV (DPV)",
			"Pre-Sale Representative B (Rutas Especializadas de Bebidas)",
			"Seller Replacement (Suplente)",
			"Sales Asst Operation (Asistente Operaciones Ventas Monitor)",
		},
		HRBPs: []string{
			"Jesus Tejado",
			"Marta Mengual",
		},
		MobilityTypes: []TypeOption{
			{mobility.TypeStart, mobility.TypeStart.Label()},
			{mobility.TypeEnd, mobility.TypeEnd.Label()},
			{mobility.TypeFixedPeriod, mobility.TypeFixedPeriod.Label()},
		},
		TypeAliases: map[string]mobility.Type{
			"inicio":              mobility.TypeStart,
			"fin":                 mobility.TypeEnd,
			"periodo fijo":        mobility.TypeFixedPeriod,
			"inicio de movilidad": mobility.TypeStart,
			"fin de movilidad":    mobility.TypeEnd,
			"start":               mobility.TypeStart,
			"end":                 mobility.TypeEnd,
			"fixed-period":        mobility.TypeFixedPeriod,
		},
	}
}
