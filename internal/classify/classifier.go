package classify

import (
	"regexp"
	"strings"

	"github.com/oficinagl/garantia/internal/model"
	"github.com/oficinagl/garantia/internal/normalize"
)

// GeralSubgroup names the fallback taxonomy entry used when a group matched
// but no deeper rule did.
const GeralSubgroup = "Geral"

var (
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Preprocess canonicalizes text for keyword matching: lowercase, diacritics
// stripped, punctuation replaced by whitespace, whitespace runs collapsed.
func Preprocess(text string) string {
	t := normalize.Fold(text)
	t = punctPattern.ReplaceAllString(t, " ")
	t = spacePattern.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Classifier assigns taxonomy leaves to defect descriptions. It is stateless
// apart from its immutable rule tree and safe for concurrent use.
type Classifier struct {
	tree *RuleTree
}

// NewClassifier returns a classifier over the default rule set.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules())
}

// NewClassifierWithRules returns a classifier over a custom rule tree.
func NewClassifierWithRules(tree *RuleTree) *Classifier {
	return &Classifier{tree: tree}
}

// Classify maps a free-text defect description to a taxonomy leaf with a
// confidence score. Matching is first-match-wins in rule declaration order;
// confidence reflects match depth only: 0.9 for a full three-level match,
// 0.7 when only group and subgroup matched, 0.5 for group alone, 0 when
// nothing matched or the text is empty.
func (c *Classifier) Classify(text string) model.Classification {
	processed := Preprocess(text)
	if processed == "" {
		return model.Unclassified()
	}

	for _, group := range c.tree.groups {
		if !containsAny(processed, group.keywords) {
			continue
		}

		for _, subgroup := range group.subgroups {
			if !containsAny(processed, subgroup.keywords) {
				continue
			}

			for _, subsubgroup := range subgroup.subsubgroups {
				if containsAny(processed, subsubgroup.keywords) {
					return model.Classification{
						Grupo:       group.name,
						Subgrupo:    subgroup.name,
						Subsubgrupo: subsubgroup.name,
						Confianca:   model.ConfidenceFullMatch,
					}
				}
			}

			return model.Classification{
				Grupo:       group.name,
				Subgrupo:    subgroup.name,
				Subsubgrupo: GeralSubgroup,
				Confianca:   model.ConfidenceSubgroup,
			}
		}

		return model.Classification{
			Grupo:       group.name,
			Subgrupo:    GeralSubgroup,
			Subsubgrupo: GeralSubgroup,
			Confianca:   model.ConfidenceGroup,
		}
	}

	return model.Unclassified()
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
