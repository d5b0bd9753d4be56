package model

// NaoClassificado is the sentinel used at every taxonomy level when no
// classification rule matched.
const NaoClassificado = "Não Classificado"

// Classification confidence levels. Confidence is a function of match depth
// only: group+subgroup+subsubgroup, group+subgroup, group alone, or nothing.
const (
	ConfidenceNone      = 0.0
	ConfidenceGroup     = 0.5
	ConfidenceSubgroup  = 0.7
	ConfidenceFullMatch = 0.9
)

// Classification is the outcome of classifying one defect description into
// the three-level taxonomy.
type Classification struct {
	Grupo       string
	Subgrupo    string
	Subsubgrupo string
	Confianca   float64
}

// Unclassified returns the all-sentinel classification with zero confidence.
func Unclassified() Classification {
	return Classification{
		Grupo:       NaoClassificado,
		Subgrupo:    NaoClassificado,
		Subsubgrupo: NaoClassificado,
		Confianca:   ConfidenceNone,
	}
}

// IsClassified reports whether any rule matched at the group level.
func (c Classification) IsClassified() bool {
	return c.Grupo != NaoClassificado && c.Grupo != ""
}
