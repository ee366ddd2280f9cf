package dto

import (
	"time"

	"staff-planner/internal/domain/staffing"
	"staff-planner/internal/usecase"
)

// EntryListEnvelope is the stable listing contract: the requested page, the
// number of records on it, the total match count ignoring pagination, and
// the shaped records themselves.
type EntryListEnvelope struct {
	Page       int             `json:"page"`
	Count      int             `json:"count"`
	TotalCount int             `json:"total_count"`
	Data       []EntryResponse `json:"data"`
}

type EntryEnvelope struct {
	Data EntryResponse `json:"data"`
}

type EntryResponse struct {
	ID               int64           `json:"id"`
	OriginalID       string          `json:"original_id"`
	TalentID         *string         `json:"talent_id"`
	TalentName       *string         `json:"talent_name"`
	TalentGrade      *string         `json:"talent_grade"`
	BookingGrade     *string         `json:"booking_grade"`
	OperatingUnit    string          `json:"operating_unit"`
	OfficeCity       *string         `json:"office_city"`
	OfficePostalCode string          `json:"office_postal_code"`
	JobManagerName   *string         `json:"job_manager_name"`
	JobManagerID     *string         `json:"job_manager_id"`
	TotalHours       float64         `json:"total_hours"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	ClientName       *string         `json:"client_name"`
	ClientID         string          `json:"client_id"`
	Industry         *string         `json:"industry"`
	IsUnassigned     *bool           `json:"is_unassigned"`
	RequiredSkills   []SkillResponse `json:"required_skills"`
	OptionalSkills   []SkillResponse `json:"optional_skills"`
}

type SkillResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewEntryListEnvelope shapes one usecase page. When skills were omitted the
// skill fields stay nil and serialize as null.
func NewEntryListEnvelope(page usecase.EntryPage) EntryListEnvelope {
	data := make([]EntryResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		data = append(data, newEntryResponse(e, page.SkillsOmitted))
	}
	return EntryListEnvelope{
		Page:       page.Page,
		Count:      len(data),
		TotalCount: page.TotalCount,
		Data:       data,
	}
}

func NewEntryEnvelope(e staffing.Entry) EntryEnvelope {
	return EntryEnvelope{Data: newEntryResponse(e, false)}
}

func newEntryResponse(e staffing.Entry, omitSkills bool) EntryResponse {
	out := EntryResponse{
		ID:               e.ID,
		OriginalID:       e.OriginalID,
		TalentID:         e.TalentID,
		TalentName:       e.TalentName,
		TalentGrade:      e.TalentGrade,
		BookingGrade:     e.BookingGrade,
		OperatingUnit:    e.OperatingUnit,
		OfficeCity:       e.OfficeCity,
		OfficePostalCode: e.OfficePostalCode,
		JobManagerName:   e.JobManagerName,
		JobManagerID:     e.JobManagerID,
		TotalHours:       e.TotalHours,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		ClientName:       e.ClientName,
		ClientID:         e.ClientID,
		Industry:         e.Industry,
		IsUnassigned:     e.IsUnassigned,
	}
	if !omitSkills {
		out.RequiredSkills = newSkillResponses(e.RequiredSkills)
		out.OptionalSkills = newSkillResponses(e.OptionalSkills)
	}
	return out
}

func newSkillResponses(skills []staffing.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{Name: s.Name, Category: s.Category})
	}
	return out
}
