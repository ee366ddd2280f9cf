package repository

import "strconv"

// queryPlan accumulates the joins, conjunctive WHERE conditions and
// positional arguments of one entries query. Count and fetch share a plan so
// total_count always reflects the same predicate set as the page.
type queryPlan struct {
	joins []string
	conds []string
	args  []any
}

// predicate contributes one filter condition (and any join it needs) to a
// plan. Absent filters simply contribute no predicate.
type predicate func(p *queryPlan)

func (p *queryPlan) apply(preds []predicate) *queryPlan {
	for _, pred := range preds {
		pred(p)
	}
	return p
}

// arg registers a query argument and returns its positional placeholder.
func (p *queryPlan) arg(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

func (p *queryPlan) where(cond string) {
	p.conds = append(p.conds, cond)
}

// join appends a join clause unless an identical one is already present, so
// several predicates may depend on the same relation.
func (p *queryPlan) join(clause string) {
	for _, j := range p.joins {
		if j == clause {
			return
		}
	}
	p.joins = append(p.joins, clause)
}

func (p *queryPlan) joinClause() string {
	out := ""
	for _, j := range p.joins {
		out += " " + j
	}
	return out
}

func (p *queryPlan) whereClause() string {
	if len(p.conds) == 0 {
		return ""
	}
	out := " WHERE " + p.conds[0]
	for _, c := range p.conds[1:] {
		out += " AND " + c
	}
	return out
}
