package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinagl/garantia/internal/classify"
	"github.com/oficinagl/garantia/internal/model"
)

func newTestPipeline() *Pipeline {
	return New(classify.NewClassifier(), NewGate(0, 0))
}

func validRow(numeroOrdem string) model.RawRow {
	return model.RawRow{
		model.ColNumeroOrdem:     numeroOrdem,
		model.ColStatus:          "G",
		model.ColDataOrdem:       "07/03/2024",
		model.ColDefeito:         "Vazamento de óleo no cárter",
		model.ColMecanico:        "Oficina Central",
		model.ColClienteNome:     "Transportes Silva",
		model.ColModeloMotor:     "MWM X10",
		model.ColFabricanteMotor: "MWM",
		model.ColTotalPecas:      "1.200,00",
		model.ColTotalServico:    "800,50",
		model.ColTotalGeral:      "2.000,50",
	}
}

func TestPipeline_MapRow(t *testing.T) {
	p := newTestPipeline()

	order, warnings := p.MapRow(validRow("12345"), 2)
	require.NotNil(t, order)
	assert.Empty(t, warnings)

	assert.Equal(t, "12345", order.NumeroOrdem)
	assert.Equal(t, model.StatusGarantia, order.Status)

	require.NotNil(t, order.DataOrdem)
	assert.Equal(t, "2024-03-07", order.DataOrdem.Format("2006-01-02"))
	require.NotNil(t, order.DiaServico)
	require.NotNil(t, order.MesServico)
	require.NotNil(t, order.AnoServico)
	assert.Equal(t, 7, *order.DiaServico)
	assert.Equal(t, 3, *order.MesServico)
	assert.Equal(t, 2024, *order.AnoServico)

	assert.Equal(t, "Vazamentos", order.DefeitoGrupo)
	assert.Equal(t, "Vazamento de Fluido", order.DefeitoSubgrupo)
	assert.Equal(t, "Óleo", order.DefeitoSubsubgrupo)
	assert.Equal(t, model.ConfidenceFullMatch, order.ClassificacaoConfianca)

	require.NotNil(t, order.TotalPecas)
	assert.InDelta(t, 1200.0, *order.TotalPecas, 1e-9)
	require.NotNil(t, order.TotalGeral)
	assert.InDelta(t, 2000.5, *order.TotalGeral, 1e-9)
}

func TestPipeline_MapRow_MissingOrderNumber(t *testing.T) {
	p := newTestPipeline()

	row := validRow("")
	order, warnings := p.MapRow(row, 5)
	assert.Nil(t, order)
	require.Len(t, warnings, 1)
	assert.Equal(t, 5, warnings[0].Row)
	assert.Contains(t, warnings[0].Reason, model.ColNumeroOrdem)
}

func TestPipeline_MapRow_ExplicitDateColumnsFallback(t *testing.T) {
	p := newTestPipeline()

	row := validRow("12345")
	row[model.ColDataOrdem] = "not a date"
	row[model.ColDia] = "7"
	row[model.ColMes] = "março"
	row[model.ColAno] = "2024"

	order, warnings := p.MapRow(row, 2)
	require.NotNil(t, order)
	assert.NotEmpty(t, warnings)

	assert.Nil(t, order.DataOrdem)
	require.NotNil(t, order.MesServico)
	require.NotNil(t, order.AnoServico)
	assert.Equal(t, 3, *order.MesServico)
	assert.Equal(t, 2024, *order.AnoServico)
}

func TestPipeline_MapRow_DefectTextFallbackChain(t *testing.T) {
	p := newTestPipeline()

	row := validRow("12345")
	row[model.ColDefeito] = ""
	row[model.ColDefeitoAlt] = ""
	row[model.ColDefeitoAlt2] = "motor aquecendo"

	order, _ := p.MapRow(row, 2)
	require.NotNil(t, order)
	assert.Equal(t, "motor aquecendo", order.DefeitoTextoBruto)
	assert.Equal(t, "Problemas de Funcionamento/Desempenho", order.DefeitoGrupo)
}

func TestPipeline_MapRow_UnclassifiableText(t *testing.T) {
	p := newTestPipeline()

	row := validRow("12345")
	row[model.ColDefeito] = "texto sem qualquer correspondência conhecida"

	order, _ := p.MapRow(row, 2)
	require.NotNil(t, order)
	assert.Equal(t, model.NaoClassificado, order.DefeitoGrupo)
	assert.Equal(t, model.NaoClassificado, order.DefeitoSubgrupo)
	assert.Equal(t, model.NaoClassificado, order.DefeitoSubsubgrupo)
	assert.Equal(t, model.ConfidenceNone, order.ClassificacaoConfianca)
}

func TestPipeline_Process(t *testing.T) {
	p := newTestPipeline()

	badStatus := validRow("222")
	badStatus[model.ColStatus] = "X"

	noNumber := validRow("")

	out := p.Process([]model.RawRow{validRow("111"), badStatus, noNumber})

	require.Len(t, out.Orders, 1)
	assert.Equal(t, "111", out.Orders[0].NumeroOrdem)

	require.Len(t, out.Rejected, 1)
	assert.Equal(t, "222", out.Rejected[0].NumeroOrdem)
	assert.Equal(t, 3, out.Rejected[0].Row)
	assert.Contains(t, out.Rejected[0].Failed, PredStatus)

	require.Len(t, out.Warnings, 1)
	assert.Equal(t, 4, out.Warnings[0].Row)
}

func TestGate_Check(t *testing.T) {
	gate := NewGate(0, 0)

	t.Run("valid order passes", func(t *testing.T) {
		p := newTestPipeline()
		order, _ := p.MapRow(validRow("12345"), 2)
		require.NotNil(t, order)
		assert.True(t, gate.Check(order).OK())
	})

	t.Run("reports every failed predicate", func(t *testing.T) {
		mes := 13
		ano := 1987
		order := &model.Order{
			NumeroOrdem: "12345",
			Status:      "X",
			MesServico:  &mes,
			AnoServico:  &ano,
		}
		result := gate.Check(order)
		assert.False(t, result.OK())
		assert.ElementsMatch(t,
			[]string{PredDataOrdem, PredStatus, PredMesServico, PredAnoServico},
			result.Failed)
	})

	t.Run("nil month and year are acceptable", func(t *testing.T) {
		d := mustDate(t)
		order := &model.Order{
			NumeroOrdem: "12345",
			Status:      model.StatusGarantia,
			DataOrdem:   &d,
		}
		assert.True(t, gate.Check(order).OK())
	})

	t.Run("year bounds are configurable", func(t *testing.T) {
		d := mustDate(t)
		ano := 1998
		order := &model.Order{
			NumeroOrdem: "12345",
			Status:      model.StatusGarantia,
			DataOrdem:   &d,
			AnoServico:  &ano,
		}

		assert.Contains(t, NewGate(0, 0).Check(order).Failed, PredAnoServico)
		assert.True(t, NewGate(1990, 2030).Check(order).OK())
	})
}

func TestNewGate_Defaults(t *testing.T) {
	gate := NewGate(0, 0)
	assert.Equal(t, DefaultMinYear, gate.MinYear)
	assert.Equal(t, DefaultMaxYear, gate.MaxYear)

	gate = NewGate(2010, 2020)
	assert.Equal(t, 2010, gate.MinYear)
	assert.Equal(t, 2020, gate.MaxYear)
}

func mustDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
}
