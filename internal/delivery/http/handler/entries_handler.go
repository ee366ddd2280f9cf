package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"staff-planner/internal/delivery/http/dto"
	"staff-planner/internal/delivery/http/middleware"
	"staff-planner/internal/pkg/response"
	"staff-planner/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const queryDateLayout = "2006-01-02"

type EntriesHandler struct {
	uc usecase.EntryUsecase
}

func NewEntriesHandler(uc usecase.EntryUsecase) *EntriesHandler {
	return &EntriesHandler{uc: uc}
}

func (h *EntriesHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.HandleListEntries)
	r.Get("/:id", h.HandleGetEntry)
}

func (h *EntriesHandler) HandleListEntries(c fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid parameter", nil, err)
	}

	page, err := h.uc.ListEntries(c.Context(), params)
	if err != nil {
		return mapEntryUsecaseError(err)
	}

	return c.JSON(dto.NewEntryListEnvelope(page))
}

func (h *EntriesHandler) HandleGetEntry(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid entry id", nil, err)
	}

	entry, err := h.uc.GetEntry(c.Context(), id)
	if err != nil {
		return mapEntryUsecaseError(err)
	}

	return c.JSON(dto.NewEntryEnvelope(*entry))
}

func parseListParams(c fiber.Ctx) (usecase.EntryListParams, error) {
	var params usecase.EntryListParams
	var err error

	if params.Page, err = parseQueryInt(c, "page", 1); err != nil {
		return params, err
	}
	if params.PageSize, err = parseQueryInt(c, "page_size", 10); err != nil {
		return params, err
	}
	if params.Descending, err = parseQueryBool(c, "descending"); err != nil {
		return params, err
	}
	if params.OmitSkills, err = parseQueryBool(c, "omit_skills"); err != nil {
		return params, err
	}
	if params.DateFrom, err = parseQueryDate(c, "date_from"); err != nil {
		return params, err
	}
	if params.DateTo, err = parseQueryDate(c, "date_to"); err != nil {
		return params, err
	}

	params.OrderBy = c.Query("order_by")
	params.TalentName = c.Query("talent_name")
	params.JobManagerName = c.Query("job_manager_name")
	params.ClientName = c.Query("client_name")
	params.RequiredSkills = parseRequiredSkills(c)

	return params, nil
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseQueryBool(c fiber.Ctx, key string) (bool, error) {
	s := c.Query(key)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseQueryDate(c fiber.Ctx, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRequiredSkills accepts the parameter repeated and/or comma-separated.
func parseRequiredSkills(c fiber.Ctx) []string {
	raw := c.RequestCtx().QueryArgs().PeekMulti("required_skills")
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(string(v), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func mapEntryUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidParameter):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Entry not found", nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
