package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nordvik/inkwell/internal/models"
	"github.com/nordvik/inkwell/internal/services"
	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Work Log"

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	rows, filename, status, message := handler.buildReport(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ReportHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", filename+".csv")
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	rows, filename, status, message := handler.buildReport(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet, err := workbook.NewSheet(reportSheetName)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	workbook.SetActiveSheet(sheet)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	header := make([]any, len(services.ReportHeaders))
	for index, column := range services.ReportHeaders {
		header[index] = column
	}
	if err := workbook.SetSheetRow(reportSheetName, "A1", &header); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for index, row := range rows {
		columns := row.Columns()
		values := make([]any, len(columns))
		for position, column := range columns {
			values[position] = column
		}
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
		if err := workbook.SetSheetRow(reportSheetName, cell, &values); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	var output bytes.Buffer
	if err := workbook.Write(&output); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(
		c,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		filename+".xlsx",
	)
	return c.Send(output.Bytes())
}

// buildReport loads the active cycle and its entries and flattens them into
// report rows. A non-zero status short-circuits the calling handler; an
// empty cycle reports 409 and produces no artifact.
func (handler *Handler) buildReport(c *fiber.Ctx) ([]services.ReportRow, string, int, string) {
	user, ok := currentUser(c)
	if !ok {
		return nil, "", fiber.StatusUnauthorized, "unauthorized"
	}

	_, cycle, err := handler.settingsService.ActiveCycle(user.ID, time.Now().In(handler.location))
	if err != nil {
		return nil, "", fiber.StatusInternalServerError, "store unavailable, try again"
	}

	entries, err := handler.workLogService.FetchEntriesForCycle(user.ID, cycle)
	if err != nil {
		return nil, "", fiber.StatusInternalServerError, "store unavailable, try again"
	}

	rows, err := services.BuildReportRows(entries, ownerReportName(user))
	if err != nil {
		if errors.Is(err, services.ErrEmptyReport) {
			return nil, "", fiber.StatusConflict, err.Error()
		}
		return nil, "", fiber.StatusInternalServerError, "failed to build export"
	}

	return rows, services.ReportFilename(ownerReportName(user), cycle), 0, ""
}

func ownerReportName(user *models.User) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Email
}
