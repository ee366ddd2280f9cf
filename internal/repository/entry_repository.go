package repository

import (
	"context"
	"errors"

	"staff-planner/internal/database"
	"staff-planner/internal/domain/staffing"

	"github.com/jackc/pgx/v5"
)

var ErrEntryNotFound = errors.New("entry not found")

const entryColumns = `e.id, e.original_id, e.talent_id, e.talent_name, e.talent_grade,
	e.booking_grade, e.operating_unit, e.office_city, e.office_postal_code,
	e.job_manager_name, e.job_manager_id, e.total_hours, e.start_date, e.end_date,
	e.client_name, e.client_id, e.industry, e.is_unassigned`

type EntryRepository interface {
	Count(ctx context.Context, filter EntryFilter) (int, error)
	List(ctx context.Context, filter EntryFilter, sort staffing.SortKey, descending bool, limit, offset int) ([]staffing.Entry, error)
	GetByID(ctx context.Context, id int64) (*staffing.Entry, error)
}

type PostgresEntryRepository struct {
	db database.DB
}

func NewPostgresEntryRepository(db database.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) Count(ctx context.Context, filter EntryFilter) (int, error) {
	plan := new(queryPlan).apply(filter.predicates())

	q := `SELECT COUNT(*) FROM entries e` + plan.joinClause() + plan.whereClause()

	var c int
	if err := r.db.QueryRow(ctx, q, plan.args...).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresEntryRepository) List(ctx context.Context, filter EntryFilter, sort staffing.SortKey, descending bool, limit, offset int) ([]staffing.Entry, error) {
	plan := new(queryPlan).apply(filter.predicates())

	dir := "ASC"
	if descending {
		dir = "DESC"
	}

	q := `SELECT ` + entryColumns + ` FROM entries e` +
		plan.joinClause() +
		plan.whereClause() +
		` ORDER BY e.` + sort.Column() + ` ` + dir +
		` LIMIT ` + plan.arg(limit) + ` OFFSET ` + plan.arg(offset)

	rows, err := r.db.Query(ctx, q, plan.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.Entry, 0)
	for rows.Next() {
		var e staffing.Entry
		if err := scanEntry(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEntryRepository) GetByID(ctx context.Context, id int64) (*staffing.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries e WHERE e.id = $1`, id)

	var e staffing.Entry
	if err := scanEntry(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func scanEntry(row database.Row, e *staffing.Entry) error {
	return row.Scan(
		&e.ID,
		&e.OriginalID,
		&e.TalentID,
		&e.TalentName,
		&e.TalentGrade,
		&e.BookingGrade,
		&e.OperatingUnit,
		&e.OfficeCity,
		&e.OfficePostalCode,
		&e.JobManagerName,
		&e.JobManagerID,
		&e.TotalHours,
		&e.StartDate,
		&e.EndDate,
		&e.ClientName,
		&e.ClientID,
		&e.Industry,
		&e.IsUnassigned,
	)
}
