// Package pipeline turns raw spreadsheet rows into canonical warranty
// orders: field normalization, defect classification, and the validation
// gate that decides admissibility.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oficinagl/garantia/internal/classify"
	"github.com/oficinagl/garantia/internal/model"
	"github.com/oficinagl/garantia/internal/normalize"
)

// Warning records a non-fatal problem found while mapping a row. Row is the
// spreadsheet row number (header row is 1, first data row is 2).
type Warning struct {
	Reason string
	Row    int
}

// Rejection records a row that mapped cleanly but failed validation.
type Rejection struct {
	NumeroOrdem string
	Failed      []string
	Row         int
}

// Outcome is the result of processing one batch of raw rows.
type Outcome struct {
	Orders   []model.Order
	Rejected []Rejection
	Warnings []Warning
}

// Pipeline composes the normalizer, classifier, and validation gate.
type Pipeline struct {
	classifier *classify.Classifier
	gate       Gate
}

// New builds a pipeline around the given classifier and gate.
func New(classifier *classify.Classifier, gate Gate) *Pipeline {
	return &Pipeline{classifier: classifier, gate: gate}
}

// Process maps every row, classifies defect text, and validates the result.
// Rows that cannot be mapped at all (no order number) produce warnings only;
// rows that map but fail the gate land in Rejected with every failed
// predicate named. The caller decides what to do with rejections.
func (p *Pipeline) Process(rows []model.RawRow) Outcome {
	var out Outcome
	for i, row := range rows {
		rowNum := i + 2 // first data row sits below the header

		order, warnings := p.MapRow(row, rowNum)
		out.Warnings = append(out.Warnings, warnings...)
		if order == nil {
			continue
		}

		if result := p.gate.Check(order); !result.OK() {
			out.Rejected = append(out.Rejected, Rejection{
				NumeroOrdem: order.NumeroOrdem,
				Row:         rowNum,
				Failed:      result.Failed,
			})
			continue
		}

		out.Orders = append(out.Orders, *order)
	}
	return out
}

// MapRow converts one raw row into a canonical order. It returns nil when
// the row has no order number (nothing to key an upsert on); every other
// malformed cell degrades to an absent value plus a warning.
func (p *Pipeline) MapRow(row model.RawRow, rowNum int) (*model.Order, []Warning) {
	var warnings []Warning
	warn := func(format string, args ...any) {
		warnings = append(warnings, Warning{Row: rowNum, Reason: fmt.Sprintf(format, args...)})
	}

	numero := cellString(row[model.ColNumeroOrdem])
	if numero == "" {
		warn("linha descartada: número da ordem (%s) ausente", model.ColNumeroOrdem)
		return nil, warnings
	}

	order := &model.Order{NumeroOrdem: numero}

	status, ok := normalize.MapStatus(row[model.ColStatus])
	if !ok {
		warn("ordem %s: status ausente", numero)
	}
	order.Status = status

	if d, ok := normalize.ParseDate(row[model.ColDataOrdem]); ok {
		order.DataOrdem = &d
		dia, mes, ano := d.Day(), int(d.Month()), d.Year()
		order.DiaServico = &dia
		order.MesServico = &mes
		order.AnoServico = &ano
	} else {
		warn("ordem %s: data da ordem inválida (%v)", numero, row[model.ColDataOrdem])
		// The export also carries explicit DIA/MÊS/ANO columns; fall back
		// to them when the order date itself is unusable.
		if dia, ok := normalize.ParseNumber(row[model.ColDia]); ok {
			d := int(dia)
			order.DiaServico = &d
		}
		if mes, ok := normalize.ParseMonth(row[model.ColMes]); ok {
			order.MesServico = &mes
		}
		if ano, ok := normalize.ParseNumber(row[model.ColAno]); ok {
			a := int(ano)
			order.AnoServico = &a
		}
	}

	if d, ok := normalize.ParseDate(row[model.ColDataFechamento]); ok {
		order.DataFechamento = &d
	}

	order.DefeitoTextoBruto = firstNonEmpty(
		cellString(row[model.ColDefeito]),
		cellString(row[model.ColDefeitoAlt]),
		cellString(row[model.ColDefeitoAlt2]),
	)
	c := p.classifier.Classify(order.DefeitoTextoBruto)
	order.DefeitoGrupo = c.Grupo
	order.DefeitoSubgrupo = c.Subgrupo
	order.DefeitoSubsubgrupo = c.Subsubgrupo
	order.ClassificacaoConfianca = c.Confianca

	order.MecanicoResponsavel = cellString(row[model.ColMecanico])
	order.ClienteNome = cellString(row[model.ColClienteNome])
	order.ModeloMotor = cellString(row[model.ColModeloMotor])
	order.FabricanteMotor = cellString(row[model.ColFabricanteMotor])
	order.Observacoes = cellString(row[model.ColDefeitoAlt])

	if n, ok := normalize.ParseNumber(row[model.ColTotalPecas]); ok {
		order.TotalPecas = &n
	}
	if n, ok := normalize.ParseNumber(row[model.ColTotalServico]); ok {
		order.TotalServico = &n
	}
	if n, ok := normalize.ParseNumber(row[model.ColTotalGeral]); ok {
		order.TotalGeral = &n
	}

	return order, warnings
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
