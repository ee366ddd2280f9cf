// Package ingest performs the one-shot bulk load of a planning JSON export
// into the staffing store.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"staff-planner/internal/database"

	"go.uber.org/zap"
)

// sourceDateTimeLayout is the fixed timestamp format of the JSON export,
// e.g. "11/01/2022 04:42 PM".
const sourceDateTimeLayout = "01/02/2006 03:04 PM"

type sourceSkill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type sourceEntry struct {
	ID               int64         `json:"id"`
	OriginalID       string        `json:"originalId"`
	TalentID         *string       `json:"talentId"`
	TalentName       *string       `json:"talentName"`
	TalentGrade      *string       `json:"talentGrade"`
	BookingGrade     *string       `json:"bookingGrade"`
	OperatingUnit    string        `json:"operatingUnit"`
	OfficeCity       *string       `json:"officeCity"`
	OfficePostalCode string        `json:"officePostalCode"`
	JobManagerName   *string       `json:"jobManagerName"`
	JobManagerID     *string       `json:"jobManagerId"`
	TotalHours       float64       `json:"totalHours"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	ClientName       *string       `json:"clientName"`
	ClientID         string        `json:"clientId"`
	Industry         *string       `json:"industry"`
	IsUnassigned     *bool         `json:"isUnassigned"`
	RequiredSkills   []sourceSkill `json:"requiredSkills"`
	OptionalSkills   []sourceSkill `json:"optionalSkills"`
}

type Loader struct {
	db     database.DB
	logger *zap.Logger
}

func NewLoader(db database.DB, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{db: db, logger: logger}
}

// Run loads the export at path inside a single transaction. Skills are
// de-duplicated by (name, category) within the run.
func (l *Loader) Run(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []sourceEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("decode export: %w", err)
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	skillIDs := make(map[sourceSkill]int64)
	for _, e := range entries {
		if err := l.insertEntry(ctx, tx, e); err != nil {
			return fmt.Errorf("entry id=%d: %w", e.ID, err)
		}
		if err := l.linkSkills(ctx, tx, skillIDs, e.ID, "entry_required_skills", e.RequiredSkills); err != nil {
			return fmt.Errorf("entry id=%d required skills: %w", e.ID, err)
		}
		if err := l.linkSkills(ctx, tx, skillIDs, e.ID, "entry_optional_skills", e.OptionalSkills); err != nil {
			return fmt.Errorf("entry id=%d optional skills: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	l.logger.Info("ingest complete",
		zap.Int("entries", len(entries)),
		zap.Int("skills", len(skillIDs)),
	)
	return nil
}

func (l *Loader) insertEntry(ctx context.Context, tx database.Tx, e sourceEntry) error {
	startDate, err := parseSourceTime(e.StartDate)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	endDate, err := parseSourceTime(e.EndDate)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO entries (
			id, original_id, talent_id, talent_name, talent_grade, booking_grade,
			operating_unit, office_city, office_postal_code, job_manager_name,
			job_manager_id, total_hours, start_date, end_date, client_name,
			client_id, industry, is_unassigned
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		e.ID, e.OriginalID, e.TalentID, e.TalentName, e.TalentGrade, e.BookingGrade,
		e.OperatingUnit, e.OfficeCity, e.OfficePostalCode, e.JobManagerName,
		e.JobManagerID, e.TotalHours, startDate, endDate, e.ClientName,
		e.ClientID, e.Industry, e.IsUnassigned,
	)
	return err
}

func (l *Loader) linkSkills(ctx context.Context, tx database.Tx, skillIDs map[sourceSkill]int64, entryID int64, table string, skills []sourceSkill) error {
	for _, s := range skills {
		id, ok := skillIDs[s]
		if !ok {
			row := tx.QueryRow(ctx,
				`INSERT INTO skills (name, category) VALUES ($1, $2) RETURNING id`,
				s.Name, s.Category,
			)
			if err := row.Scan(&id); err != nil {
				return err
			}
			skillIDs[s] = id
		}

		// The (entry_id, skill_id) pair is unique per relation; repeats in
		// the export are dropped rather than rejected.
		_, err := tx.Exec(ctx,
			`INSERT INTO `+table+` (entry_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			entryID, id,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func parseSourceTime(s string) (time.Time, error) {
	return time.ParseInLocation(sourceDateTimeLayout, s, time.UTC)
}
