// Package staffing holds the core entities of the staffing dataset.
package staffing

import "time"

// Entry is one staffing assignment record. Pointer fields are nullable in
// the store; everything else is required.
type Entry struct {
	ID               int64
	OriginalID       string
	TalentID         *string
	TalentName       *string
	TalentGrade      *string
	BookingGrade     *string
	OperatingUnit    string
	OfficeCity       *string
	OfficePostalCode string
	JobManagerName   *string
	JobManagerID     *string
	TotalHours       float64
	StartDate        time.Time
	EndDate          time.Time
	ClientName       *string
	ClientID         string
	Industry         *string
	IsUnassigned     *bool

	RequiredSkills []Skill
	OptionalSkills []Skill
}

// Skill is a named capability tag. The (Name, Category) pair is the natural
// de-duplication key during ingestion.
type Skill struct {
	ID       int64
	Name     string
	Category string
}
