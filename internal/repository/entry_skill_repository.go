package repository

import (
	"context"
	"fmt"

	"staff-planner/internal/database"
	"staff-planner/internal/domain/staffing"
)

// SkillRole selects which of the two entry↔skill relations to read.
type SkillRole string

const (
	SkillRoleRequired SkillRole = "required"
	SkillRoleOptional SkillRole = "optional"
)

type EntrySkillRepository interface {
	FindByEntryIDs(ctx context.Context, role SkillRole, entryIDs []int64) (map[int64][]staffing.Skill, error)
}

type PostgresEntrySkillRepository struct {
	db database.DB
}

func NewPostgresEntrySkillRepository(db database.DB) *PostgresEntrySkillRepository {
	return &PostgresEntrySkillRepository{db: db}
}

func (r *PostgresEntrySkillRepository) FindByEntryIDs(ctx context.Context, role SkillRole, entryIDs []int64) (map[int64][]staffing.Skill, error) {
	out := make(map[int64][]staffing.Skill, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	table, err := roleTable(role)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.entry_id, s.id, s.name, s.category
		 FROM `+table+` a
		 JOIN skills s ON s.id = a.skill_id
		 WHERE a.entry_id = ANY($1)
		 ORDER BY s.id ASC`,
		entryIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID int64
		var s staffing.Skill
		if err := rows.Scan(&entryID, &s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out[entryID] = append(out[entryID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func roleTable(role SkillRole) (string, error) {
	switch role {
	case SkillRoleRequired:
		return "entry_required_skills", nil
	case SkillRoleOptional:
		return "entry_optional_skills", nil
	default:
		return "", fmt.Errorf("unknown skill role: %q", role)
	}
}
