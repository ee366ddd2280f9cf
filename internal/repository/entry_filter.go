package repository

import "time"

// EntryFilter carries the optional listing filters. Zero values mean the
// filter is absent and contributes nothing to the query plan.
type EntryFilter struct {
	TalentName     string
	JobManagerName string
	ClientName     string
	DateFrom       *time.Time
	DateTo         *time.Time
	RequiredSkills []string
}

// predicates translates the filter into its conjunctive predicate set.
//
// All required-skill terms apply to one shared join of the required-skill
// relation. With a single term this restricts entries to those having a
// matching required skill; with several terms the conditions AND against the
// same joined skill row, so terms matching different skills of the same entry
// return nothing. Known issue, kept deliberately; see DESIGN.md. The shared
// join also multiplies an entry once per matching skill row, which both the
// count and the page reflect.
func (f EntryFilter) predicates() []predicate {
	var preds []predicate

	for _, term := range f.RequiredSkills {
		term := term
		preds = append(preds, func(p *queryPlan) {
			p.join("JOIN entry_required_skills ers ON ers.entry_id = e.id")
			p.join("JOIN skills rs ON rs.id = ers.skill_id")
			p.where("rs.name ILIKE " + p.arg(contains(term)))
		})
	}

	if f.TalentName != "" {
		preds = append(preds, func(p *queryPlan) {
			p.where("e.talent_name ILIKE " + p.arg(contains(f.TalentName)))
		})
	}
	if f.JobManagerName != "" {
		preds = append(preds, func(p *queryPlan) {
			p.where("e.job_manager_name ILIKE " + p.arg(contains(f.JobManagerName)))
		})
	}
	if f.ClientName != "" {
		preds = append(preds, func(p *queryPlan) {
			p.where("e.client_name ILIKE " + p.arg(contains(f.ClientName)))
		})
	}
	if f.DateFrom != nil {
		preds = append(preds, func(p *queryPlan) {
			p.where("e.start_date >= " + p.arg(*f.DateFrom))
		})
	}
	if f.DateTo != nil {
		preds = append(preds, func(p *queryPlan) {
			p.where("e.end_date <= " + p.arg(*f.DateTo))
		})
	}

	return preds
}

func contains(term string) string {
	return "%" + term + "%"
}
