package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinagl/garantia/internal/common"
	"github.com/oficinagl/garantia/internal/model"
)

func TestReadCSV_CommaDelimited(t *testing.T) {
	input := "NOrdem_OSv,Status_OSv,Data_OSv\n12345,G,07/03/2024\n12346,GO,08/03/2024\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "12345", rows[0][model.ColNumeroOrdem])
	assert.Equal(t, "G", rows[0][model.ColStatus])
	assert.Equal(t, "07/03/2024", rows[0][model.ColDataOrdem])
	assert.Equal(t, "GO", rows[1][model.ColStatus])
}

func TestReadCSV_SemicolonDelimited(t *testing.T) {
	// pt-BR locale exports use ";" so "," stays free for decimals.
	input := "NOrdem_OSv;Status_OSv;TOT\n12345;G;3500,50\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "12345", rows[0][model.ColNumeroOrdem])
	assert.Equal(t, "3500,50", rows[0][model.ColTotalGeral])
}

func TestReadCSV_StripsBOM(t *testing.T) {
	input := "\uFEFFNOrdem_OSv,Status_OSv\n12345,G\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12345", rows[0][model.ColNumeroOrdem])
}

func TestReadCSV_RaggedRows(t *testing.T) {
	// Real exports drop trailing cells; missing cells become nil so the
	// normalizer sees absence, not an empty string.
	input := "NOrdem_OSv,Status_OSv,Data_OSv\n12345,G\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "12345", rows[0][model.ColNumeroOrdem])
	assert.Equal(t, "G", rows[0][model.ColStatus])
	val, present := rows[0][model.ColDataOrdem]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestReadCSV_HeaderWhitespaceTrimmed(t *testing.T) {
	input := " NOrdem_OSv , Status_OSv \n12345,G\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12345", rows[0][model.ColNumeroOrdem])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, common.ErrNoRows)
}

func TestReadCSV_WrongExport(t *testing.T) {
	// A CSV without the order number column is not a Tabela export.
	input := "foo,bar\n1,2\n"

	_, err := ReadCSV(strings.NewReader(input))
	assert.ErrorIs(t, err, common.ErrUnknownHeader)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("NOrdem_OSv,Status_OSv\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSV_QuotedFields(t *testing.T) {
	input := "NOrdem_OSv,ObsCorpo_OSv\n12345,\"vazamento de óleo, no cárter\"\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "vazamento de óleo, no cárter", rows[0][model.ColDefeito])
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   rune
	}{
		{name: "semicolons dominate", header: "a;b;c", want: ';'},
		{name: "commas dominate", header: "a,b,c", want: ','},
		{name: "tie goes to comma", header: "a;b,c", want: ','},
		{name: "no delimiter at all", header: "single", want: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectDelimiter(tt.header))
		})
	}
}
