package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-planner/internal/domain/staffing"
	"staff-planner/internal/repository"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

const (
	defaultSortKey = staffing.SortByID

	// page_size must stay strictly below this bound.
	maxPageSize = 50
)

// EntryListParams are the normalized listing inputs. Filter fields are
// optional; empty or nil means the filter is absent.
type EntryListParams struct {
	Page       int
	PageSize   int
	OrderBy    string
	Descending bool
	OmitSkills bool

	TalentName     string
	JobManagerName string
	ClientName     string
	DateFrom       *time.Time
	DateTo         *time.Time
	RequiredSkills []string
}

// EntryPage is one page of the filtered, sorted result set. TotalCount is
// the number of matches ignoring pagination. SkillsOmitted records whether
// skill relations were skipped, so shaping can tell "omitted" from "empty".
type EntryPage struct {
	Page          int
	TotalCount    int
	Entries       []staffing.Entry
	SkillsOmitted bool
}

type EntryUsecase interface {
	ListEntries(ctx context.Context, params EntryListParams) (EntryPage, error)
	GetEntry(ctx context.Context, id int64) (*staffing.Entry, error)
}

type Entries struct {
	entries repository.EntryRepository
	skills  repository.EntrySkillRepository
}

func NewEntryUsecase(entries repository.EntryRepository, skills repository.EntrySkillRepository) *Entries {
	return &Entries{entries: entries, skills: skills}
}

func (u *Entries) ListEntries(ctx context.Context, params EntryListParams) (EntryPage, error) {
	if params.Page <= 0 {
		return EntryPage{}, fmt.Errorf("%w: page must be greater than 0", ErrInvalidParameter)
	}
	if params.PageSize <= 0 || params.PageSize >= maxPageSize {
		return EntryPage{}, fmt.Errorf("%w: page_size must be between 1 and %d", ErrInvalidParameter, maxPageSize-1)
	}

	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = string(defaultSortKey)
	}
	sortKey, ok := staffing.ParseSortKey(orderBy)
	if !ok {
		return EntryPage{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidParameter, params.OrderBy)
	}

	skillTerms := make([]string, 0, len(params.RequiredSkills))
	for _, s := range params.RequiredSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skillTerms = append(skillTerms, s)
	}

	filter := repository.EntryFilter{
		TalentName:     params.TalentName,
		JobManagerName: params.JobManagerName,
		ClientName:     params.ClientName,
		DateFrom:       params.DateFrom,
		DateTo:         params.DateTo,
		RequiredSkills: skillTerms,
	}

	total, err := u.entries.Count(ctx, filter)
	if err != nil {
		return EntryPage{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	offset := (params.Page - 1) * params.PageSize
	rows, err := u.entries.List(ctx, filter, sortKey, params.Descending, params.PageSize, offset)
	if err != nil {
		return EntryPage{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !params.OmitSkills {
		if err := u.attachSkills(ctx, rows); err != nil {
			return EntryPage{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return EntryPage{
		Page:          params.Page,
		TotalCount:    total,
		Entries:       rows,
		SkillsOmitted: params.OmitSkills,
	}, nil
}

func (u *Entries) GetEntry(ctx context.Context, id int64) (*staffing.Entry, error) {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows := []staffing.Entry{*e}
	if err := u.attachSkills(ctx, rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return &rows[0], nil
}

// attachSkills batch-loads both skill relations for the page and attaches
// them in place. Entries without skills get empty, non-nil lists.
func (u *Entries) attachSkills(ctx context.Context, entries []staffing.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(entries))
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}

	required, err := u.skills.FindByEntryIDs(ctx, repository.SkillRoleRequired, ids)
	if err != nil {
		return err
	}
	optional, err := u.skills.FindByEntryIDs(ctx, repository.SkillRoleOptional, ids)
	if err != nil {
		return err
	}

	for i := range entries {
		entries[i].RequiredSkills = orEmpty(required[entries[i].ID])
		entries[i].OptionalSkills = orEmpty(optional[entries[i].ID])
	}
	return nil
}

func orEmpty(skills []staffing.Skill) []staffing.Skill {
	if skills == nil {
		return []staffing.Skill{}
	}
	return skills
}
