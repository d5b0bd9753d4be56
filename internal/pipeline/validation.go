package pipeline

import "github.com/oficinagl/garantia/internal/model"

// Predicate names reported by the validation gate. Callers use these to
// tell a user exactly which fields sank a row.
const (
	PredNumeroOrdem = "numero_ordem"
	PredDataOrdem   = "data_ordem"
	PredStatus      = "status"
	PredMesServico  = "mes_servico"
	PredAnoServico  = "ano_servico"
)

// Default plausibility bounds for ano_servico.
const (
	DefaultMinYear = 2000
	DefaultMaxYear = 2030
)

// Gate decides whether a mapped order is admissible. Year bounds are
// configuration, not business logic baked into the pipeline.
type Gate struct {
	MinYear int
	MaxYear int
}

// NewGate returns a gate with the given year bounds, falling back to the
// defaults when a bound is zero.
func NewGate(minYear, maxYear int) Gate {
	if minYear == 0 {
		minYear = DefaultMinYear
	}
	if maxYear == 0 {
		maxYear = DefaultMaxYear
	}
	return Gate{MinYear: minYear, MaxYear: maxYear}
}

// Result lists every predicate an order failed. An empty list means the
// order is admissible.
type Result struct {
	Failed []string
}

// OK reports whether all predicates passed.
func (r Result) OK() bool {
	return len(r.Failed) == 0
}

// Check evaluates every predicate independently, never short-circuiting, so
// the caller can report all failing fields at once. It has no side effects;
// persist, skip, or flag for review is the caller's call.
func (g Gate) Check(o *model.Order) Result {
	var failed []string

	if o.NumeroOrdem == "" {
		failed = append(failed, PredNumeroOrdem)
	}
	if o.DataOrdem == nil {
		failed = append(failed, PredDataOrdem)
	}
	if !o.IsWarrantyStatus() {
		failed = append(failed, PredStatus)
	}
	if o.MesServico != nil && (*o.MesServico < 1 || *o.MesServico > 12) {
		failed = append(failed, PredMesServico)
	}
	if o.AnoServico != nil && (*o.AnoServico < g.MinYear || *o.AnoServico > g.MaxYear) {
		failed = append(failed, PredAnoServico)
	}

	return Result{Failed: failed}
}
