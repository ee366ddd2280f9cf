package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"staff-planner/internal/delivery/http/middleware"
	"staff-planner/internal/domain/staffing"
	"staff-planner/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEntryUsecase struct {
	page    usecase.EntryPage
	listErr error
	entry   *staffing.Entry
	getErr  error

	gotParams usecase.EntryListParams
	gotID     int64
}

func (m *mockEntryUsecase) ListEntries(_ context.Context, params usecase.EntryListParams) (usecase.EntryPage, error) {
	m.gotParams = params
	return m.page, m.listErr
}

func (m *mockEntryUsecase) GetEntry(_ context.Context, id int64) (*staffing.Entry, error) {
	m.gotID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entry, nil
}

func newTestApp(uc usecase.EntryUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewEntriesHandler(uc).RegisterRoutes(app.Group("/v1/entries"))
	return app
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestHandleListEntries_Envelope(t *testing.T) {
	e := staffing.Entry{
		ID:               1,
		OriginalID:       "62d396e7",
		OperatingUnit:    "Operating Unit 3",
		OfficePostalCode: "97311",
		ClientID:         "cl_1",
		StartDate:        time.Date(2022, 11, 1, 16, 42, 0, 0, time.UTC),
		EndDate:          time.Date(2022, 11, 5, 19, 42, 0, 0, time.UTC),
		RequiredSkills:   []staffing.Skill{{ID: 7, Name: "German", Category: "Language"}},
		OptionalSkills:   []staffing.Skill{},
	}
	uc := &mockEntryUsecase{page: usecase.EntryPage{Page: 1, TotalCount: 25, Entries: []staffing.Entry{e}}}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/?page=1&page_size=10", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 1, body["count"])
	assert.EqualValues(t, 25, body["total_count"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	record := data[0].(map[string]any)
	assert.Equal(t, "62d396e7", record["original_id"])
	assert.Nil(t, record["talent_name"])
	required := record["required_skills"].([]any)
	require.Len(t, required, 1)
	assert.Equal(t, map[string]any{"name": "German", "category": "Language"}, required[0])
	assert.Equal(t, []any{}, record["optional_skills"])
}

func TestHandleListEntries_OmittedSkillsAreNull(t *testing.T) {
	e := staffing.Entry{ID: 1, OriginalID: "x", OperatingUnit: "ou", OfficePostalCode: "pc", ClientID: "cl"}
	uc := &mockEntryUsecase{page: usecase.EntryPage{Page: 1, TotalCount: 1, Entries: []staffing.Entry{e}, SkillsOmitted: true}}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/?omit_skills=true", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body := decodeBody(t, resp.Body)
	record := body["data"].([]any)[0].(map[string]any)
	assert.Nil(t, record["required_skills"])
	assert.Nil(t, record["optional_skills"])
	assert.True(t, uc.gotParams.OmitSkills)
}

func TestHandleListEntries_ParsesFilterParams(t *testing.T) {
	uc := &mockEntryUsecase{page: usecase.EntryPage{Page: 2}}
	app := newTestApp(uc)

	url := "/v1/entries/?page=2&page_size=20&order_by=start_date&descending=true" +
		"&talent_name=Ann&date_from=2022-11-01&date_to=2022-12-01" +
		"&required_skills=German&required_skills=French,Dutch"
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := uc.gotParams
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 20, got.PageSize)
	assert.Equal(t, "start_date", got.OrderBy)
	assert.True(t, got.Descending)
	assert.Equal(t, "Ann", got.TalentName)
	require.NotNil(t, got.DateFrom)
	assert.Equal(t, time.Date(2022, 11, 1, 0, 0, 0, 0, time.UTC), *got.DateFrom)
	require.NotNil(t, got.DateTo)
	assert.Equal(t, []string{"German", "French", "Dutch"}, got.RequiredSkills)
}

func TestHandleListEntries_MalformedParamsAreBadRequests(t *testing.T) {
	for _, url := range []string{
		"/v1/entries/?page=abc",
		"/v1/entries/?page_size=many",
		"/v1/entries/?descending=yes-please",
		"/v1/entries/?date_from=01/11/2022",
	} {
		app := newTestApp(&mockEntryUsecase{})
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, url)
		resp.Body.Close()
	}
}

func TestHandleListEntries_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid parameter", usecase.ErrInvalidParameter, fiber.StatusBadRequest},
		{"store unavailable", usecase.ErrStoreUnavailable, fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockEntryUsecase{listErr: tt.err})
			resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandleGetEntry_NotFound(t *testing.T) {
	app := newTestApp(&mockEntryUsecase{getErr: usecase.ErrEntryNotFound})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/999", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.EqualValues(t, fiber.StatusNotFound, body["status"])
	assert.Equal(t, "Entry not found", body["message"])
}

func TestHandleGetEntry_Success(t *testing.T) {
	e := staffing.Entry{
		ID: 5, OriginalID: "abc", OperatingUnit: "ou", OfficePostalCode: "pc", ClientID: "cl",
		RequiredSkills: []staffing.Skill{}, OptionalSkills: []staffing.Skill{},
	}
	uc := &mockEntryUsecase{entry: &e}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/5", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, uc.gotID)
	body := decodeBody(t, resp.Body)
	record := body["data"].(map[string]any)
	assert.EqualValues(t, 5, record["id"])
	assert.Equal(t, []any{}, record["required_skills"])
}

func TestHandleGetEntry_NonNumericID(t *testing.T) {
	app := newTestApp(&mockEntryUsecase{})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/entries/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
