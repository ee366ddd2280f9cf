package staffing

// SortKey identifies an Entry scalar column a listing may be ordered by.
// Membership is closed: anything outside sortColumns is rejected at parse
// time, so a key can be spliced into ORDER BY without further checks.
type SortKey string

const (
	SortByID               SortKey = "id"
	SortByOriginalID       SortKey = "original_id"
	SortByTalentID         SortKey = "talent_id"
	SortByTalentName       SortKey = "talent_name"
	SortByTalentGrade      SortKey = "talent_grade"
	SortByBookingGrade     SortKey = "booking_grade"
	SortByOperatingUnit    SortKey = "operating_unit"
	SortByOfficeCity       SortKey = "office_city"
	SortByOfficePostalCode SortKey = "office_postal_code"
	SortByJobManagerName   SortKey = "job_manager_name"
	SortByJobManagerID     SortKey = "job_manager_id"
	SortByTotalHours       SortKey = "total_hours"
	SortByStartDate        SortKey = "start_date"
	SortByEndDate          SortKey = "end_date"
	SortByClientName       SortKey = "client_name"
	SortByClientID         SortKey = "client_id"
	SortByIndustry         SortKey = "industry"
	SortByIsUnassigned     SortKey = "is_unassigned"
)

var sortColumns = map[SortKey]string{
	SortByID:               "id",
	SortByOriginalID:       "original_id",
	SortByTalentID:         "talent_id",
	SortByTalentName:       "talent_name",
	SortByTalentGrade:      "talent_grade",
	SortByBookingGrade:     "booking_grade",
	SortByOperatingUnit:    "operating_unit",
	SortByOfficeCity:       "office_city",
	SortByOfficePostalCode: "office_postal_code",
	SortByJobManagerName:   "job_manager_name",
	SortByJobManagerID:     "job_manager_id",
	SortByTotalHours:       "total_hours",
	SortByStartDate:        "start_date",
	SortByEndDate:          "end_date",
	SortByClientName:       "client_name",
	SortByClientID:         "client_id",
	SortByIndustry:         "industry",
	SortByIsUnassigned:     "is_unassigned",
}

// ParseSortKey validates s against the closed enumeration.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(s)
	_, ok := sortColumns[k]
	return k, ok
}

// Column returns the entries column the key maps to. Unknown keys fall back
// to id; ParseSortKey is expected to have run first.
func (k SortKey) Column() string {
	if col, ok := sortColumns[k]; ok {
		return col
	}
	return "id"
}
