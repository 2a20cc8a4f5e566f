package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nordvik/inkwell/internal/services"
)

// GetWorkLog returns everything the work-log view needs for the owner's
// active cycle: the cycle window, the entries inside it, the aggregated
// stats, and the 42-cell calendar grid for the reference month. Passing
// month and year query parameters previews another reference month without
// touching the persisted cycle.
func (handler *Handler) GetWorkLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, cycle, err := handler.settingsService.ActiveCycle(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}

	if month, year := c.QueryInt("month"), c.QueryInt("year"); month >= 1 && month <= 12 && year >= 1 {
		cycle = services.DefaultCycle(time.Month(month), year, handler.location)
		settings.StartDate = cycle.Start
		settings.EndDate = cycle.End
		settings.ReferenceMonth = month
		settings.ReferenceYear = year
	}

	entries, err := handler.workLogService.FetchEntriesForCycle(user.ID, cycle)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}

	stats := services.AggregateStats(entries, cycle)
	grid := services.BuildMonthGrid(
		time.Month(settings.ReferenceMonth),
		settings.ReferenceYear,
		entries,
		handler.location,
	)

	return c.JSON(fiber.Map{
		"cycle":    cycle,
		"settings": settings,
		"entries":  entries,
		"stats":    stats,
		"calendar": grid,
	})
}

// SelectCycle switches the owner's active cycle, either to the default
// 24th-to-24th window of a reference month or to an explicit custom range.
// An invalid custom range is rejected and the previous cycle stays active.
func (handler *Handler) SelectCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := cyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if payload.StartDate != "" || payload.EndDate != "" {
		start, err := parseDateParam(payload.StartDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start date")
		}
		end, err := parseDateParam(payload.EndDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end date")
		}

		settings, cycle, err := handler.settingsService.SelectCustomRange(user.ID, start, end)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCycleRange) {
				return apiError(c, fiber.StatusBadRequest, err.Error())
			}
			return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
		}
		return c.JSON(fiber.Map{"cycle": cycle, "settings": settings})
	}

	if payload.Month < 1 || payload.Month > 12 || payload.Year < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid month or year")
	}

	settings, cycle, err := handler.settingsService.SelectMonth(user.ID, time.Month(payload.Month), payload.Year)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
	return c.JSON(fiber.Map{"cycle": cycle, "settings": settings})
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseEntryPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.workLogService.CreateEntry(user.ID, input)
	if err != nil {
		return handler.respondEntryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseEntryPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.workLogService.UpdateEntry(user.ID, c.Params("id"), input)
	if err != nil {
		return handler.respondEntryError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.workLogService.DeleteEntry(user.ID, c.Params("id")); err != nil {
		return handler.respondEntryError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) parseEntryPayload(c *fiber.Ctx) (services.EntryInput, error) {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.EntryInput{}, err
	}

	date, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return services.EntryInput{}, err
	}

	return services.EntryInput{
		Date:          date,
		ProjectCode:   payload.ProjectCode,
		Description:   payload.Description,
		ContactPerson: payload.ContactPerson,
		Duration:      payload.Duration,
		LogTime:       payload.LogTime,
		IsLeaveDay:    payload.IsLeaveDay,
	}, nil
}

func (handler *Handler) respondEntryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrMissingProjectCode):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEntryNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEntryNotOwned):
		return apiError(c, fiber.StatusForbidden, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
}
