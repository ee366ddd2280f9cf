package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"staff-planner/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

type fakeTx struct {
	entryInserts int
	skillInserts []string // "name/category"
	links        map[string]int
	nextSkillID  int64
	committed    bool
	rolledBack   bool
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	switch {
	case strings.Contains(query, "INSERT INTO entries"):
		t.entryInserts++
	case strings.Contains(query, "entry_required_skills"):
		t.links["required"]++
	case strings.Contains(query, "entry_optional_skills"):
		t.links["optional"]++
	}
	return 1, nil
}

func (t *fakeTx) QueryRow(_ context.Context, query string, args ...any) database.Row {
	if strings.Contains(query, "INSERT INTO skills") {
		t.nextSkillID++
		t.skillInserts = append(t.skillInserts, args[0].(string)+"/"+args[1].(string))
		return fakeRow{id: t.nextSkillID}
	}
	return fakeRow{err: sql.ErrNoRows}
}

func (t *fakeTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) SQLDB() *sql.DB             { return nil }

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, nil
}

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return fakeRow{err: sql.ErrNoRows}
}

func writeExport(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "planning.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func exportEntry(id int64) map[string]any {
	return map[string]any{
		"id":               id,
		"originalId":       "62d396e7",
		"talentId":         "tln_3084",
		"talentName":       "Frau Hermine Caspar MBA.",
		"talentGrade":      "Intern",
		"bookingGrade":     "",
		"operatingUnit":    "Operating Unit 3",
		"officeCity":       "Hamburg",
		"officePostalCode": "97311",
		"jobManagerName":   "Marjan Hande",
		"jobManagerId":     "tln_3019",
		"totalHours":       33.0,
		"startDate":        "11/01/2022 04:42 PM",
		"endDate":          "11/05/2022 07:42 PM",
		"clientName":       "Döhn",
		"clientId":         "cl_1",
		"industry":         "Low technology",
		"isUnassigned":     false,
		"requiredSkills":   []map[string]any{{"name": "German", "category": "Language"}},
		"optionalSkills":   []map[string]any{},
	}
}

func TestParseSourceTime(t *testing.T) {
	got, err := parseSourceTime("11/01/2022 04:42 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 11, 1, 16, 42, 0, 0, time.UTC), got)

	got, err = parseSourceTime("01/05/2023 09:07 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 5, 9, 7, 0, 0, time.UTC), got)

	_, err = parseSourceTime("2022-11-01T16:42:00Z")
	assert.Error(t, err)
}

func TestLoaderRun_InsertsEntriesAndLinks(t *testing.T) {
	e1 := exportEntry(1)
	e2 := exportEntry(2)
	e2["optionalSkills"] = []map[string]any{{"name": "French", "category": "Language"}}
	path := writeExport(t, []any{e1, e2})

	tx := &fakeTx{links: map[string]int{}}
	loader := NewLoader(&fakeDB{tx: tx}, nil)

	require.NoError(t, loader.Run(context.Background(), path))
	assert.True(t, tx.committed)
	assert.Equal(t, 2, tx.entryInserts)
	assert.Equal(t, 2, tx.links["required"])
	assert.Equal(t, 1, tx.links["optional"])
}

// Both entries require the same (name, category), so only one skill row is
// created per run; a different pair gets its own row.
func TestLoaderRun_DeduplicatesSkillsByNameAndCategory(t *testing.T) {
	e1 := exportEntry(1)
	e2 := exportEntry(2)
	e2["requiredSkills"] = []map[string]any{
		{"name": "German", "category": "Language"},
		{"name": "German", "category": "Certification"},
	}
	path := writeExport(t, []any{e1, e2})

	tx := &fakeTx{links: map[string]int{}}
	loader := NewLoader(&fakeDB{tx: tx}, nil)

	require.NoError(t, loader.Run(context.Background(), path))
	assert.Equal(t, []string{"German/Language", "German/Certification"}, tx.skillInserts)
}

func TestLoaderRun_BadTimestampAborts(t *testing.T) {
	e := exportEntry(7)
	e["startDate"] = "November 1st"
	path := writeExport(t, []any{e})

	tx := &fakeTx{links: map[string]int{}}
	loader := NewLoader(&fakeDB{tx: tx}, nil)

	err := loader.Run(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry id=7")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestSourceEntry_DecodesNullableFields(t *testing.T) {
	raw := `{"id":3,"originalId":"x","talentId":null,"isUnassigned":null,` +
		`"operatingUnit":"ou","officePostalCode":"pc","clientId":"cl",` +
		`"totalHours":0,"startDate":"11/01/2022 04:42 PM","endDate":"11/05/2022 07:42 PM"}`

	var e sourceEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Nil(t, e.TalentID)
	assert.Nil(t, e.IsUnassigned)
	assert.Equal(t, "ou", e.OperatingUnit)
}
