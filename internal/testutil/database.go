// Package testutil provides test utilities shared across packages: an
// in-memory migrated database and small order fixtures.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/oficinagl/garantia/internal/model"
	"github.com/oficinagl/garantia/internal/storage"
)

// SetupTestDB creates a new in-memory database with migrations applied and
// cleanup registered.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Order returns a fully populated valid order for tests. Mutate the result
// to produce the shape a test needs.
func Order(numeroOrdem string) model.Order {
	dataOrdem := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	dia, mes, ano := 7, 3, 2024
	pecas, servico, geral := 1200.0, 800.5, 2000.5

	return model.Order{
		NumeroOrdem:            numeroOrdem,
		Status:                 model.StatusGarantia,
		DataOrdem:              &dataOrdem,
		DiaServico:             &dia,
		MesServico:             &mes,
		AnoServico:             &ano,
		DefeitoTextoBruto:      "vazamento de óleo no cárter",
		MecanicoResponsavel:    "Oficina Central",
		ModeloMotor:            "MWM X10",
		FabricanteMotor:        "MWM",
		TotalPecas:             &pecas,
		TotalServico:           &servico,
		TotalGeral:             &geral,
		DefeitoGrupo:           "Vazamentos",
		DefeitoSubgrupo:        "Vazamento de Fluido",
		DefeitoSubsubgrupo:     "Óleo",
		ClassificacaoConfianca: model.ConfidenceFullMatch,
	}
}

// IncompleteOrder returns an order missing its derived service date fields,
// ready for the reconciliation engine to backfill.
func IncompleteOrder(numeroOrdem string) model.Order {
	o := Order(numeroOrdem)
	o.DiaServico = nil
	o.MesServico = nil
	o.AnoServico = nil
	return o
}

// UnclassifiedOrder returns an order with raw defect text but only the
// sentinel taxonomy.
func UnclassifiedOrder(numeroOrdem, defectText string) model.Order {
	o := Order(numeroOrdem)
	o.DefeitoTextoBruto = defectText
	o.DefeitoGrupo = model.NaoClassificado
	o.DefeitoSubgrupo = model.NaoClassificado
	o.DefeitoSubsubgrupo = model.NaoClassificado
	o.ClassificacaoConfianca = model.ConfidenceNone
	return o
}
