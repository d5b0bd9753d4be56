package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_IsWarrantyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "garantia", status: StatusGarantia, want: true},
		{name: "garantia de oficina", status: StatusGarantiaOficina, want: true},
		{name: "garantia de usinagem", status: StatusGarantiaUsinagem, want: true},
		{name: "passed-through raw code", status: "X", want: false},
		{name: "empty", status: "", want: false},
		{name: "raw code not canonicalized", status: "G", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{Status: tt.status}
			assert.Equal(t, tt.want, o.IsWarrantyStatus())
		})
	}
}

func TestOrder_MissingServiceDate(t *testing.T) {
	mes, ano := 3, 2024

	tests := []struct {
		mes  *int
		ano  *int
		name string
		want bool
	}{
		{name: "both present", mes: &mes, ano: &ano, want: false},
		{name: "month missing", mes: nil, ano: &ano, want: true},
		{name: "year missing", mes: &mes, ano: nil, want: true},
		{name: "both missing", mes: nil, ano: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{MesServico: tt.mes, AnoServico: tt.ano}
			assert.Equal(t, tt.want, o.MissingServiceDate())
		})
	}
}

func TestClassification(t *testing.T) {
	t.Run("unclassified sentinel at every level", func(t *testing.T) {
		c := Unclassified()
		assert.Equal(t, NaoClassificado, c.Grupo)
		assert.Equal(t, NaoClassificado, c.Subgrupo)
		assert.Equal(t, NaoClassificado, c.Subsubgrupo)
		assert.Equal(t, ConfidenceNone, c.Confianca)
		assert.False(t, c.IsClassified())
	})

	t.Run("classified when a group matched", func(t *testing.T) {
		c := Classification{Grupo: "Vazamentos", Confianca: ConfidenceGroup}
		assert.True(t, c.IsClassified())
	})

	t.Run("empty group is not classified", func(t *testing.T) {
		c := Classification{}
		assert.False(t, c.IsClassified())
	})
}
