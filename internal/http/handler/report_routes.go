package handler

import (
	"net/http"

	"bud35/internal/contract"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ReportService interface {
	Summary() (*contract.SummaryReport, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
}

func NewReportDefault(reportService ReportService) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService}
}

func (r *DefaultReportRoute) GetSummary(c echo.Context) error {
	report, apierr := r.ReportService.Summary()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, report)
}
