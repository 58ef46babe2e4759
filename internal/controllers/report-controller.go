package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// Monthly returns the per-team statistics for one month. With format=xlsx the
// same numbers come back as a spreadsheet download instead of JSON.
func (c *ReportController) Monthly(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if raw := ctx.QueryParam("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid year %q", raw))
		}
	}
	if raw := ctx.QueryParam("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid month %q", raw))
		}
	}

	report, err := c.reportService.MonthlyReport(ctx.Request().Context(), actor, year, month)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if ctx.QueryParam("format") == "xlsx" {
		return c.writeXLSX(ctx, report)
	}
	return utils.SuccessResponse(ctx, report, "", http.StatusOK)
}

func (c *ReportController) writeXLSX(ctx echo.Context, report *dto.MonthlyReportDTO) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.logger.Warn("closing workbook failed", zap.Error(err))
		}
	}()

	sheet := f.GetSheetName(0)
	headers := []string{"Team", "Total Requests", "Completed", "Total Hours"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return utils.ErrorResponse(ctx, err)
		}
	}

	row := 2
	for _, team := range report.TeamReports {
		values := []interface{}{team.TeamName, team.TotalRequests, team.Completed, team.TotalHours}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return utils.ErrorResponse(ctx, err)
			}
		}
		row++
	}

	totals := []interface{}{"Total", report.TotalRequests, report.CompletedRequests, report.TotalDuration}
	for i, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return utils.ErrorResponse(ctx, err)
		}
	}

	filename := fmt.Sprintf("maintenance-report-%d-%02d.xlsx", report.Year, report.Month)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
