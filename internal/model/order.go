// Package model defines the core domain models used throughout the application.
package model

import "time"

// Canonical warranty status values. Anything else that arrives from a
// spreadsheet export is passed through unchanged and rejected later by the
// validation gate.
const (
	StatusGarantia         = "Garantia"
	StatusGarantiaOficina  = "Garantia de Oficina"
	StatusGarantiaUsinagem = "Garantia de Usinagem"
)

// Order is the canonical representation of one warranty service order after
// normalization and classification. Nullable columns are pointers; a nil
// pointer means the source value was absent or unparseable, never zero.
type Order struct {
	DataOrdem              *time.Time
	DataFechamento         *time.Time
	DiaServico             *int
	MesServico             *int
	AnoServico             *int
	TotalPecas             *float64
	TotalServico           *float64
	TotalGeral             *float64
	NumeroOrdem            string
	Status                 string
	DefeitoTextoBruto      string
	MecanicoResponsavel    string
	ModeloMotor            string
	FabricanteMotor        string
	ClienteNome            string
	Observacoes            string
	DefeitoGrupo           string
	DefeitoSubgrupo        string
	DefeitoSubsubgrupo     string
	ClassificacaoConfianca float64
}

// IsWarrantyStatus reports whether the order carries one of the three
// canonical warranty statuses.
func (o *Order) IsWarrantyStatus() bool {
	switch o.Status {
	case StatusGarantia, StatusGarantiaOficina, StatusGarantiaUsinagem:
		return true
	}
	return false
}

// MissingServiceDate reports whether the derived service date fields still
// need to be backfilled from DataOrdem.
func (o *Order) MissingServiceDate() bool {
	return o.MesServico == nil || o.AnoServico == nil
}
