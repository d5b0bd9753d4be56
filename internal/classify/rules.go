// Package classify maps free-text defect descriptions onto a three-level
// taxonomy (grupo, subgrupo, subsubgrupo) using deterministic keyword rules.
package classify

// Group is one top-level taxonomy entry. Declaration order is significant:
// the classifier walks groups in order and stops at the first keyword hit,
// so re-sorting the rule set changes classification results.
type Group struct {
	Name      string
	Keywords  []string
	Subgroups []Subgroup
}

// Subgroup is a second-level taxonomy entry.
type Subgroup struct {
	Name         string
	Keywords     []string
	Subsubgroups []Subsubgroup
}

// Subsubgroup is a leaf taxonomy entry.
type Subsubgroup struct {
	Name     string
	Keywords []string
}

// RuleTree is an immutable classification rule set. Build it once at startup
// with NewRuleTree; it is safe for concurrent use and is never mutated.
type RuleTree struct {
	groups []compiledGroup
}

type compiledGroup struct {
	name      string
	keywords  []string
	subgroups []compiledSubgroup
}

type compiledSubgroup struct {
	name         string
	keywords     []string
	subsubgroups []compiledSubsubgroup
}

type compiledSubsubgroup struct {
	name     string
	keywords []string
}

// NewRuleTree compiles groups into a RuleTree, preprocessing every keyword
// the same way classification input is preprocessed so matching is a plain
// substring check.
func NewRuleTree(groups []Group) *RuleTree {
	tree := &RuleTree{groups: make([]compiledGroup, 0, len(groups))}
	for _, g := range groups {
		cg := compiledGroup{
			name:      g.Name,
			keywords:  preprocessAll(g.Keywords),
			subgroups: make([]compiledSubgroup, 0, len(g.Subgroups)),
		}
		for _, sg := range g.Subgroups {
			csg := compiledSubgroup{
				name:         sg.Name,
				keywords:     preprocessAll(sg.Keywords),
				subsubgroups: make([]compiledSubsubgroup, 0, len(sg.Subsubgroups)),
			}
			for _, ssg := range sg.Subsubgroups {
				csg.subsubgroups = append(csg.subsubgroups, compiledSubsubgroup{
					name:     ssg.Name,
					keywords: preprocessAll(ssg.Keywords),
				})
			}
			cg.subgroups = append(cg.subgroups, csg)
		}
		tree.groups = append(tree.groups, cg)
	}
	return tree
}

func preprocessAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, Preprocess(kw))
	}
	return out
}

// GroupNames returns the group names in declaration order.
func (t *RuleTree) GroupNames() []string {
	names := make([]string, 0, len(t.groups))
	for _, g := range t.groups {
		names = append(names, g.name)
	}
	return names
}
